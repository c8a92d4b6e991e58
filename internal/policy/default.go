package policy

import (
	_ "embed"
	"sync"
)

//go:embed default.policy
var defaultSource string

var (
	defaultOnce   sync.Once
	defaultPolicy *Policy
	defaultErr    error
)

// Default returns the built-in policy set for common low-risk utilities.
// The embedded source is parsed once and the result cached process-wide;
// a parse failure means the shipped policy data itself is broken and is
// returned on every call.
func Default() (*Policy, error) {
	defaultOnce.Do(func() {
		defaultPolicy, defaultErr = NewParser("default.policy", defaultSource).Parse()
	})
	return defaultPolicy, defaultErr
}
