// Package decision interprets policy-engine outcomes for callers. The
// engine itself never enforces anything; this package maps its three
// possible results onto the action the surrounding tool should take:
// run directly, sandbox, or ask the user.
package decision

import (
	"errors"

	"github.com/hpkotak/execgate/internal/policy"
)

// Mode is the action a caller should take for a command.
type Mode int

const (
	// Allow means the call fully matched its policy and may run directly.
	Allow Mode = iota
	// AskUser means the program is known but the call violated its policy;
	// running it needs explicit approval.
	AskUser
	// Sandbox means no policy covers the program. Absence of a policy is
	// never treated as safe.
	Sandbox
)

func (m Mode) String() string {
	switch m {
	case Allow:
		return "allow"
	case AskUser:
		return "ask-user"
	case Sandbox:
		return "sandbox"
	default:
		return "unknown"
	}
}

// Verdict is the interpreted outcome for one call. Match is set only for
// Allow; Reason explains AskUser and Sandbox verdicts.
type Verdict struct {
	Mode   Mode
	Match  *policy.MatchedExec
	Reason string
}

// Evaluate checks call against p and interprets the result. It is as pure
// and deterministic as Check itself.
func Evaluate(p *policy.Policy, call policy.ExecCall) Verdict {
	matched, err := p.Check(call)
	if err == nil {
		return Verdict{Mode: Allow, Match: matched}
	}

	var noPolicy *policy.NoPolicyError
	if errors.As(err, &noPolicy) {
		return Verdict{Mode: Sandbox, Reason: err.Error()}
	}
	return Verdict{Mode: AskUser, Reason: err.Error()}
}
