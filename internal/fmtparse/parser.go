package fmtparse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const eof = rune(-1)

// parseFn represents the state of the parser as a function that does the
// work associated with the current state, then returns the next state.
type parseFn func(*Parser) parseFn

// Parser parses a format string into a sequence of [Segment]s.
type Parser struct {
	src      string
	start    int // Byte offset of the start of the segment under construction
	pos      int // Current byte offset
	segments []Segment
	nextAuto int  // Next implicit argument index to hand out
	explicit bool // Whether any field so far used an explicit arg-id
	implicit bool // Whether any field so far used implicit numbering
	err      error
}

// Parse parses format into its segments. It is a pure function of the
// format string: the same format always parses to the same segments,
// regardless of locale or input, so callers with a compile-time-known
// format may cache the result.
func Parse(format string) ([]Segment, error) {
	p := &Parser{src: format}

	for state := parseStart; state != nil; {
		state = state(p)
	}

	if p.err != nil {
		return nil, p.err
	}

	return p.segments, nil
}

// next returns the next rune in the input, or [eof], and advances past it.
func (p *Parser) next() rune {
	if p.pos >= len(p.src) {
		return eof
	}

	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += size

	return r
}

// peek returns the next rune in the input, or [eof], without advancing.
func (p *Parser) peek() rune {
	if p.pos >= len(p.src) {
		return eof
	}

	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])

	return r
}

// peekAt returns the rune n bytes past the current position without
// advancing, or [eof]. Only used for small constant lookaheads.
func (p *Parser) peekAt(byteOffset int) rune {
	if p.pos+byteOffset >= len(p.src) {
		return eof
	}

	r, _ := utf8.DecodeRuneInString(p.src[p.pos+byteOffset:])

	return r
}

// errorf records a parse failure positioned at the start of the segment
// under construction and halts the state machine.
func (p *Parser) errorf(format string, a ...any) parseFn {
	p.err = &SyntaxError{Offset: p.start, Msg: fmt.Sprintf(format, a...)}

	return nil
}

// emitLiteral emits the accumulated text between start and pos as a
// [Literal] segment, if any was accumulated.
func (p *Parser) emitLiteral(text string) {
	if text == "" {
		return
	}

	p.segments = append(p.segments, Segment{Kind: Literal, Text: text, Start: p.start, End: p.pos})
	p.start = p.pos
}

// SyntaxError is returned by [Parse] when the format string is malformed.
type SyntaxError struct {
	Offset int    // Byte offset into the format string of the failure
	Msg    string // Human readable description
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid format string at byte %d: %s", e.Offset, e.Msg)
}

// parseStart is the top level state: it accumulates literal text and
// whitespace runs until it finds the start of a replacement field or runs
// out of input.
func parseStart(p *Parser) parseFn {
	var literal strings.Builder

	for {
		switch p.peek() {
		case eof:
			p.emitLiteral(literal.String())
			return nil
		case '{':
			if p.peekAt(1) == '{' {
				// Escaped literal brace
				p.next()
				p.next()
				literal.WriteByte('{')

				continue
			}

			p.emitLiteral(literal.String())
			p.next() // Consume '{'
			p.start = p.pos

			return parseField
		case '}':
			if p.peekAt(1) == '}' {
				p.next()
				p.next()
				literal.WriteByte('}')

				continue
			}

			return p.errorf("unmatched '}' in format string")
		default:
			if unicode.IsSpace(p.peek()) {
				p.emitLiteral(literal.String())

				return parseWhitespace
			}

			r := p.next()
			literal.WriteRune(r)
		}
	}
}

// parseWhitespace consumes a run of one or more whitespace code points in
// the format string and emits a single [Whitespace] segment for it; at
// scan time this matches zero-or-more whitespace code points in the
// input, per §4.4.
func parseWhitespace(p *Parser) parseFn {
	for unicode.IsSpace(p.peek()) {
		p.next()
	}

	p.segments = append(p.segments, Segment{Kind: Whitespace, Start: p.start, End: p.pos})
	p.start = p.pos

	return parseStart
}

// parseField parses the inside of a "{...}" replacement field: an
// optional argument id, an optional ":spec", then the closing brace.
//
// The opening '{' has already been consumed.
func parseField(p *Parser) parseFn {
	index := -1

	isExplicit := isDigit(p.peek())

	if isExplicit {
		var digits strings.Builder
		for isDigit(p.peek()) {
			digits.WriteRune(p.next())
		}

		n := 0
		for _, d := range digits.String() {
			n = n*10 + int(d-'0')
		}

		index = n
		p.explicit = true

		if p.implicit {
			return p.errorf("cannot mix implicit and explicit argument indices")
		}
	} else {
		index = p.nextAuto
		p.nextAuto++
		p.implicit = true

		if p.explicit {
			return p.errorf("cannot mix implicit and explicit argument indices")
		}
	}

	spec := ""

	switch p.peek() {
	case ':':
		p.next() // Consume ':'

		specStart := p.pos
		if !p.skipToFieldEnd() {
			return p.errorf("unterminated replacement field")
		}

		spec = p.src[specStart:p.pos]
	case '}':
		// No spec, fall through to consume the closing brace below
	default:
		return p.errorf("expected ':' or '}' in replacement field, got %q", p.peek())
	}

	if p.peek() != '}' {
		return p.errorf("unterminated replacement field")
	}

	end := p.pos + 1 // Include the closing brace in the segment span

	p.next() // Consume '}'

	p.segments = append(p.segments, Segment{
		Kind:     Field,
		Index:    index,
		Explicit: isExplicit,
		Spec:     spec,
		Start:    p.start - 1, // Include the opening brace
		End:      end,
	})
	p.start = p.pos

	return parseStart
}

// skipToFieldEnd advances the parser to the first unescaped '}', which
// closes the current field's specifier, and reports whether it found one
// before eof. Brackets are not tracked: an unescaped '}' inside a scanset
// ends the field.
//
// The specifier grammar never itself contains an unescaped '{' or '}'
// outside of a scanset's own escape sequences, which the scanset compiler
// parses separately from its raw text; this function only needs to find
// the matching close brace.
func (p *Parser) skipToFieldEnd() bool {
	for {
		switch p.peek() {
		case eof:
			return false
		case '}':
			return true
		case '\\':
			// An escape inside a scanset spec, e.g. {:[\]]}; consume both
			// the backslash and the escaped character so an escaped '}'
			// does not end the field.
			p.next()
			if p.peek() != eof {
				p.next()
			}
		default:
			p.next()
		}
	}
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
