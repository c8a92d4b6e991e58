package policy

// ExecCall is a candidate invocation: the program name plus its argument
// vector as it would appear on the command line, excluding argv[0].
// Callers build one per invocation they intend to run; the engine never
// mutates it.
type ExecCall struct {
	Program string
	Args    []string
}

// NewExecCall builds an ExecCall for program with the given arguments.
func NewExecCall(program string, args ...string) ExecCall {
	return ExecCall{Program: program, Args: args}
}

// PositionalArg pairs an argument value with its zero-based index in the
// original ExecCall argument list.
type PositionalArg struct {
	Index int
	Value string
}

// MatchedArg is one successfully matched positional argument: its original
// index, the role the policy resolved for it, and the original value.
type MatchedArg struct {
	Index int
	Type  ArgType
	Value string
}

// NewMatchedArg builds a MatchedArg.
func NewMatchedArg(index int, typ ArgType, value string) MatchedArg {
	return MatchedArg{Index: index, Type: typ, Value: value}
}

// MatchedFlag is a recognized flag token as it appeared in the call.
type MatchedFlag struct {
	Flag string
}

// NewMatchedFlag builds a MatchedFlag for the given token.
func NewMatchedFlag(flag string) MatchedFlag {
	return MatchedFlag{Flag: flag}
}

// ValidExec is a fully attributed safe call: every argument of the original
// ExecCall is accounted for either as a MatchedArg or a MatchedFlag, in
// order of appearance. SystemPath carries the program's acceptable resolved
// executable locations so the caller can verify the binary it is about to
// run; an empty SystemPath means the policy pins no locations.
//
// The zero value represents a zero-argument safe call.
type ValidExec struct {
	Program    string
	Args       []MatchedArg
	Flags      []MatchedFlag
	SystemPath []string
}

// MatchedExec is the success envelope returned by Check. It wraps ValidExec
// so qualified outcomes (e.g. match-with-caveats) can be added later without
// changing the Check signature.
type MatchedExec struct {
	Exec ValidExec
}
