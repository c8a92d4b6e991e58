package policy

import (
	"fmt"
	"os"

	"go.starlark.net/starlark"
)

// ParseError reports a malformed policy source. Source is the identifier
// the parser was given for the source (a file path or a caller-chosen
// name); the wrapped error carries the offending position.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("policy source %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parser turns policy definition source text into a Policy. The source
// language is a Starlark dialect with a single relevant production:
//
//	define_program(
//	    program = "cp",
//	    args = [ARG_RFILES, ARG_WFILE],
//	    flags = ["-v"],
//	    system_path = ["/bin/cp", "/usr/bin/cp"],
//	)
//
// Entries in args are either quoted literals, one of the matcher
// identifiers ARG_RFILE, ARG_WFILE, ARG_RFILES, or flag("-x") for a flag
// required at a fixed position. The parser checks syntax and types only;
// matcher-semantic mistakes (say, two vararg matchers) are an authoring
// concern, since policy sources are curated.
type Parser struct {
	source string
	src    string
}

// NewParser returns a parser for src, identified as source in errors.
func NewParser(source, src string) *Parser {
	return &Parser{source: source, src: src}
}

// Parse evaluates the source and returns the resulting Policy. Declaring
// the same program twice is a *ParseError, as is any syntax or type error.
func (p *Parser) Parse() (*Policy, error) {
	pol := newPolicy()
	predeclared := starlark.StringDict{
		"ARG_RFILE":      matcherValue{matcher: ReadableFile()},
		"ARG_WFILE":      matcherValue{matcher: WriteableFile()},
		"ARG_RFILES":     matcherValue{matcher: ReadableFiles()},
		"flag":           starlark.NewBuiltin("flag", flagMatcher),
		"define_program": starlark.NewBuiltin("define_program", defineProgram(pol)),
	}
	thread := &starlark.Thread{Name: "policy:" + p.source}
	if _, err := starlark.ExecFile(thread, p.source, p.src, predeclared); err != nil {
		return nil, &ParseError{Source: p.source, Err: err}
	}
	return pol, nil
}

// LoadPolicyFile parses the policy source at path, which also serves as
// the source identifier in errors.
func LoadPolicyFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy file: %w", err)
	}
	return NewParser(path, string(data)).Parse()
}

// matcherValue exposes an ArgMatcher as a Starlark value so policy sources
// can reference the matcher identifiers directly.
type matcherValue struct {
	matcher ArgMatcher
}

func (v matcherValue) String() string        { return v.matcher.String() }
func (v matcherValue) Type() string          { return "arg_matcher" }
func (v matcherValue) Freeze()               {}
func (v matcherValue) Truth() starlark.Bool  { return starlark.True }
func (v matcherValue) Hash() (uint32, error) { return starlark.String(v.matcher.String()).Hash() }

func flagMatcher(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%s: name must not be empty", b.Name())
	}
	return matcherValue{matcher: Flag(name)}, nil
}

func defineProgram(pol *Policy) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var program string
		var argList, flagList, pathList *starlark.List
		if err := starlark.UnpackArgs(b.Name(), args, kwargs,
			"program", &program,
			"args?", &argList,
			"flags?", &flagList,
			"system_path?", &pathList,
		); err != nil {
			return nil, err
		}
		if program == "" {
			return nil, fmt.Errorf("%s: program must not be empty", b.Name())
		}

		pp := &ProgramPolicy{Program: program}
		for i := 0; i < listLen(argList); i++ {
			switch item := argList.Index(i).(type) {
			case starlark.String:
				pp.ArgPatterns = append(pp.ArgPatterns, Literal(string(item)))
			case matcherValue:
				pp.ArgPatterns = append(pp.ArgPatterns, item.matcher)
			default:
				return nil, fmt.Errorf("%s: args[%d]: want string or arg matcher, got %s",
					b.Name(), i, item.Type())
			}
		}

		var err error
		if pp.Flags, err = stringList(flagList, "flags"); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		if pp.SystemPath, err = stringList(pathList, "system_path"); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}

		if err := pol.add(pp); err != nil {
			return nil, err
		}
		return starlark.None, nil
	}
}

func listLen(l *starlark.List) int {
	if l == nil {
		return 0
	}
	return l.Len()
}

func stringList(l *starlark.List, what string) ([]string, error) {
	if listLen(l) == 0 {
		return nil, nil
	}
	out := make([]string, l.Len())
	for i := 0; i < l.Len(); i++ {
		s, ok := starlark.AsString(l.Index(i))
		if !ok {
			return nil, fmt.Errorf("%s[%d]: want string, got %s", what, i, l.Index(i).Type())
		}
		out[i] = s
	}
	return out, nil
}
