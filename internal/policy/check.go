package policy

import (
	"fmt"
	"slices"
	"sort"
)

// ProgramPolicy describes the acceptable argument shape for one program:
// the ordered positional pattern, the recognized flag tokens, and the
// absolute executable paths considered valid resolutions of the program
// name on the host. At most one vararg matcher may appear in ArgPatterns;
// everything declared after it forms the reserved tail.
type ProgramPolicy struct {
	Program     string
	ArgPatterns []ArgMatcher
	Flags       []string
	SystemPath  []string
}

// Policy maps program names to their policies. It is built once by the
// parser, read-only thereafter, and safe to share across concurrent Check
// calls without synchronization.
type Policy struct {
	programs map[string]*ProgramPolicy
}

func newPolicy() *Policy {
	return &Policy{programs: make(map[string]*ProgramPolicy)}
}

func (p *Policy) add(pp *ProgramPolicy) error {
	if _, ok := p.programs[pp.Program]; ok {
		return fmt.Errorf("program %q declared more than once", pp.Program)
	}
	p.programs[pp.Program] = pp
	return nil
}

// Get returns the policy for program, if one is declared.
func (p *Policy) Get(program string) (*ProgramPolicy, bool) {
	pp, ok := p.programs[program]
	return pp, ok
}

// Programs returns the declared program names in sorted order.
func (p *Policy) Programs() []string {
	names := make([]string, 0, len(p.programs))
	for name := range p.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Combine merges policies into a single new Policy. The inputs are left
// untouched. A program declared in more than one input is an error: policy
// sources must not silently override each other.
func Combine(policies ...*Policy) (*Policy, error) {
	combined := newPolicy()
	for _, p := range policies {
		for _, name := range p.Programs() {
			if err := combined.add(p.programs[name]); err != nil {
				return nil, err
			}
		}
	}
	return combined, nil
}

// Check decides whether call is provably covered by this policy. It returns
// a fully attributed MatchedExec when every argument is accounted for, a
// *NoPolicyError when the program has no entry, or one of the typed
// violation errors otherwise. Check is pure: it performs no I/O, and
// identical inputs always produce identical results.
func (p *Policy) Check(call ExecCall) (*MatchedExec, error) {
	pp, ok := p.programs[call.Program]
	if !ok {
		return nil, &NoPolicyError{Program: call.Program}
	}
	return pp.match(call)
}

// match walks the positional pattern against the call. Flags are extracted
// up front: any argument equal to a declared flag token is recorded in
// order of appearance and never seen by the positional cursor, so a flag
// may appear anywhere, including between two vararg-matched files.
func (pp *ProgramPolicy) match(call ExecCall) (*MatchedExec, error) {
	var flags []MatchedFlag
	var positional []PositionalArg
	for i, a := range call.Args {
		if slices.Contains(pp.Flags, a) {
			flags = append(flags, NewMatchedFlag(a))
			continue
		}
		positional = append(positional, PositionalArg{Index: i, Value: a})
	}

	var matched []MatchedArg
	cur := 0
	for pi, m := range pp.ArgPatterns {
		if m.Kind == MatcherReadableFiles {
			remaining := len(positional) - cur
			if remaining == 0 {
				return nil, &NotEnoughArgsError{
					Program:   pp.Program,
					Args:      call.Args,
					Remaining: slices.Clone(pp.ArgPatterns[pi:]),
				}
			}
			// Reserve one slot per matcher declared after the vararg.
			n := remaining - (len(pp.ArgPatterns) - pi - 1)
			if n < 1 {
				return nil, &VarargMatchError{Program: pp.Program, Matcher: m}
			}
			for ; n > 0; n-- {
				a := positional[cur]
				if a.Value == "" {
					return nil, &UnexpectedArgsError{Program: pp.Program, Args: []PositionalArg{a}}
				}
				matched = append(matched, NewMatchedArg(a.Index, ReadableFileType(), a.Value))
				cur++
			}
			continue
		}

		if cur >= len(positional) {
			return nil, &NotEnoughArgsError{
				Program:   pp.Program,
				Args:      call.Args,
				Remaining: slices.Clone(pp.ArgPatterns[pi:]),
			}
		}
		a := positional[cur]
		switch m.Kind {
		case MatcherLiteral:
			if a.Value != m.Value {
				return nil, &LiteralMismatchError{Expected: m.Value, Actual: a.Value}
			}
			matched = append(matched, NewMatchedArg(a.Index, LiteralType(m.Value), a.Value))
		case MatcherReadableFile:
			if a.Value == "" {
				return nil, &UnexpectedArgsError{Program: pp.Program, Args: []PositionalArg{a}}
			}
			matched = append(matched, NewMatchedArg(a.Index, ReadableFileType(), a.Value))
		case MatcherWriteableFile:
			if a.Value == "" {
				return nil, &UnexpectedArgsError{Program: pp.Program, Args: []PositionalArg{a}}
			}
			matched = append(matched, NewMatchedArg(a.Index, WriteableFileType(), a.Value))
		case MatcherFlag:
			if a.Value != m.Value {
				return nil, &LiteralMismatchError{Expected: m.Value, Actual: a.Value}
			}
			flags = append(flags, NewMatchedFlag(a.Value))
		default:
			panic(fmt.Sprintf("unhandled matcher kind %d", m.Kind))
		}
		cur++
	}

	if cur < len(positional) {
		return nil, &UnexpectedArgsError{
			Program: pp.Program,
			Args:    slices.Clone(positional[cur:]),
		}
	}

	return &MatchedExec{Exec: ValidExec{
		Program:    pp.Program,
		Args:       matched,
		Flags:      flags,
		SystemPath: pp.SystemPath,
	}}, nil
}
