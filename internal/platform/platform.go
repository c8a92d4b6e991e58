// Package platform provides executable-resolution helpers for callers
// that verify a matched call before running it.
package platform

import (
	"os/exec"
	"slices"
)

// Resolve returns the absolute path the host would execute for program,
// using the current PATH.
func Resolve(program string) (string, error) {
	return exec.LookPath(program)
}

// Trusted reports whether resolved is one of the executable locations the
// policy declared acceptable. An empty systemPath means the policy pins no
// locations; callers decide whether to accept that.
func Trusted(resolved string, systemPath []string) bool {
	return slices.Contains(systemPath, resolved)
}
