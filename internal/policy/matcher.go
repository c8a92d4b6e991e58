// Package policy implements the execution-policy engine: a declarative,
// per-program description of acceptable argument shapes (the policy
// definition language) and the matching engine that decides whether a
// concrete invocation is provably covered by it. The engine is a pure
// decision function: it never touches the filesystem and never enforces
// anything; callers interpret its outcomes to run, sandbox, or ask.
package policy

import "fmt"

// MatcherKind identifies one of the closed set of argument matchers.
type MatcherKind int

const (
	// MatcherLiteral matches a single argument byte-for-byte equal to a
	// stored value. No case folding, no path normalization.
	MatcherLiteral MatcherKind = iota
	// MatcherReadableFile matches a single non-empty argument and records
	// it as a path the program intends to read.
	MatcherReadableFile
	// MatcherWriteableFile matches a single non-empty argument and records
	// it as a path the program intends to write.
	MatcherWriteableFile
	// MatcherReadableFiles is the vararg form of MatcherReadableFile: it
	// greedily matches one or more consecutive arguments, reserving one
	// slot for each matcher declared after it.
	MatcherReadableFiles
	// MatcherFlag matches a single argument equal to a flag token.
	MatcherFlag
)

// ArgMatcher is one positional-validation rule inside a program policy.
// Matchers are immutable values compared by structural equality; Value is
// only meaningful for MatcherLiteral and MatcherFlag.
type ArgMatcher struct {
	Kind  MatcherKind
	Value string
}

// Literal returns a matcher requiring an argument exactly equal to value.
func Literal(value string) ArgMatcher {
	return ArgMatcher{Kind: MatcherLiteral, Value: value}
}

// ReadableFile returns a matcher for a single path the program will read.
func ReadableFile() ArgMatcher {
	return ArgMatcher{Kind: MatcherReadableFile}
}

// WriteableFile returns a matcher for a single path the program will write.
func WriteableFile() ArgMatcher {
	return ArgMatcher{Kind: MatcherWriteableFile}
}

// ReadableFiles returns the vararg matcher for one or more readable paths.
func ReadableFiles() ArgMatcher {
	return ArgMatcher{Kind: MatcherReadableFiles}
}

// Flag returns a matcher for the flag token name (e.g. "-L").
func Flag(name string) ArgMatcher {
	return ArgMatcher{Kind: MatcherFlag, Value: name}
}

func (m ArgMatcher) String() string {
	switch m.Kind {
	case MatcherLiteral:
		return fmt.Sprintf("literal %q", m.Value)
	case MatcherReadableFile:
		return "readable file"
	case MatcherWriteableFile:
		return "writeable file"
	case MatcherReadableFiles:
		return "readable files..."
	case MatcherFlag:
		return fmt.Sprintf("flag %q", m.Value)
	default:
		panic(fmt.Sprintf("unhandled matcher kind %d", m.Kind))
	}
}

// ArgTypeKind identifies the resolved role of a matched argument.
type ArgTypeKind int

const (
	ArgTypeLiteral ArgTypeKind = iota
	ArgTypeReadableFile
	ArgTypeWriteableFile
)

// ArgType is the resolved role attributed to one matched positional
// argument. Literal carries the expected literal value for ArgTypeLiteral
// and is empty otherwise.
type ArgType struct {
	Kind    ArgTypeKind
	Literal string
}

// LiteralType returns the resolved type for an argument matched literally.
func LiteralType(value string) ArgType {
	return ArgType{Kind: ArgTypeLiteral, Literal: value}
}

// ReadableFileType is the resolved type for a read-role path argument.
func ReadableFileType() ArgType {
	return ArgType{Kind: ArgTypeReadableFile}
}

// WriteableFileType is the resolved type for a write-role path argument.
func WriteableFileType() ArgType {
	return ArgType{Kind: ArgTypeWriteableFile}
}

func (t ArgType) String() string {
	switch t.Kind {
	case ArgTypeLiteral:
		return fmt.Sprintf("literal %q", t.Literal)
	case ArgTypeReadableFile:
		return "readable file"
	case ArgTypeWriteableFile:
		return "writeable file"
	default:
		panic(fmt.Sprintf("unhandled arg type kind %d", t.Kind))
	}
}
