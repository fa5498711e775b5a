// Package fmtparse implements the format-string mini language described by
// the scanning model: literal runs, whitespace skips and replacement
// fields, each with its raw specifier slice handed off to the relevant
// value reader.
//
// The scanner here keeps the teacher pattern of a state machine expressed
// as a chain of functions (a parseFn returning the next parseFn), but runs
// it synchronously to completion rather than over a channel: format
// strings are short-lived, call-scoped values, so there is no benefit to
// the goroutine-per-parse concurrency the original .http file scanner
// used for a long-lived token stream, and avoiding it sidesteps having to
// drain the channel on an early parser error.
package fmtparse

import "fmt"

// Kind identifies what a [Segment] represents.
type Kind int

// Segment kinds.
const (
	Literal    Kind = iota // A run of literal code points that must match the input exactly
	Whitespace             // A run of one or more whitespace code points in the format
	Field                  // A replacement field, "{...}"
)

// String implements [fmt.Stringer] for a [Kind].
func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Whitespace:
		return "Whitespace"
	case Field:
		return "Field"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Segment is one parsed piece of a format string.
type Segment struct {
	Kind Kind // What this segment represents

	// Text is the literal text for a [Literal] segment. Unused otherwise.
	Text string

	// Index is the argument index for a [Field] segment: the explicit
	// index if one was given, or the next auto-numbered index otherwise.
	// Unused for non-field segments.
	Index int

	// Explicit reports whether Index came from an explicit arg-id in the
	// format string, as opposed to auto-numbering. Unused for non-field
	// segments.
	Explicit bool

	// Spec is the raw specifier slice between ':' and '}' for a [Field]
	// segment, or empty if the field had no specifier (e.g. "{}"or "{0}").
	Spec string

	// Start and End are byte offsets into the format string, used to
	// report the position of a format error.
	Start int
	End   int
}

// String implements [fmt.Stringer] for a [Segment].
func (s Segment) String() string {
	switch s.Kind {
	case Literal:
		return fmt.Sprintf("<Segment::Literal %q>", s.Text)
	case Whitespace:
		return "<Segment::Whitespace>"
	case Field:
		return fmt.Sprintf("<Segment::Field index=%d explicit=%t spec=%q>", s.Index, s.Explicit, s.Spec)
	default:
		return fmt.Sprintf("<Segment::%s>", s.Kind)
	}
}
