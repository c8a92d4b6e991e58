package policy

import (
	"fmt"
	"strings"
)

// NoPolicyError reports that the policy has no entry for a program. It is
// an outcome, not a violation: absence of a policy must never be read as
// "safe", so callers route it to sandboxing or approval. Distinguish it
// from the violation types with errors.As.
type NoPolicyError struct {
	Program string
}

func (e *NoPolicyError) Error() string {
	return fmt.Sprintf("no policy for program %q", e.Program)
}

// NotEnoughArgsError reports that the call supplied fewer arguments than
// the pattern requires at the point the walk reached. Remaining holds the
// unmatched tail of the pattern so callers can render what was expected.
type NotEnoughArgsError struct {
	Program   string
	Args      []string
	Remaining []ArgMatcher
}

func (e *NotEnoughArgsError) Error() string {
	expected := make([]string, len(e.Remaining))
	for i, m := range e.Remaining {
		expected[i] = m.String()
	}
	return fmt.Sprintf("%s: not enough arguments: got %d, still expecting %s",
		e.Program, len(e.Args), strings.Join(expected, ", "))
}

// VarargMatchError reports that a vararg matcher had zero arguments left to
// bind after reserving the trailing slots. A vararg matcher must bind at
// least one argument.
type VarargMatchError struct {
	Program string
	Matcher ArgMatcher
}

func (e *VarargMatchError) Error() string {
	return fmt.Sprintf("%s: %s matched nothing", e.Program, e.Matcher)
}

// LiteralMismatchError reports the first literal pattern position whose
// expected value differed from the supplied argument.
type LiteralMismatchError struct {
	Expected string
	Actual   string
}

func (e *LiteralMismatchError) Error() string {
	return fmt.Sprintf("expected literal %q, got %q", e.Expected, e.Actual)
}

// UnexpectedArgsError reports arguments the policy cannot accept, each with
// its zero-based index in the original call. This covers trailing arguments
// beyond the pattern as well as values a file matcher reached but rejected,
// such as an empty string offered where a path is required. Extra arguments
// are never silently ignored.
type UnexpectedArgsError struct {
	Program string
	Args    []PositionalArg
}

func (e *UnexpectedArgsError) Error() string {
	extras := make([]string, len(e.Args))
	for i, a := range e.Args {
		extras[i] = fmt.Sprintf("%q (position %d)", a.Value, a.Index)
	}
	return fmt.Sprintf("%s: unexpected arguments: %s", e.Program, strings.Join(extras, ", "))
}
