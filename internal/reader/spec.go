// Package reader implements the value readers of §4.6: one scan function
// per argument type tag, each parsing its own corner of the replacement
// field's specifier text and then consuming code points from a
// [source.Source].
package reader

import (
	"io"

	"go.scanforge.dev/scanfmt/locale"
	"go.scanforge.dev/scanfmt/source"
)

// Align is the fill-and-align portion of a field spec, preceding width.
type Align uint8

const (
	AlignNone Align = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// FieldSpec is the shared prefix of every field specifier: optional
// fill-and-align, optional width. The remainder (TypeOpts) is handed to
// the type-specific option parser.
type FieldSpec struct {
	Fill     rune
	Align    Align
	Width    int // -1 when absent
	TypeOpts string
}

// ParseFieldSpec parses the spec text between ':' and '}' into the shared
// fill/align/width prefix plus the type-specific tail. A scanset spec
// (`[...]`) is left untouched in TypeOpts; [ParseStringOptions] compiles its
// inner grammar separately since it does not share the fill-and-align
// prefix with scalar specifiers.
func ParseFieldSpec(spec string) (FieldSpec, error) {
	fs := FieldSpec{Fill: ' ', Align: AlignNone, Width: -1}

	if len(spec) > 0 && spec[0] == '[' {
		fs.TypeOpts = spec
		return fs, nil
	}

	runes := []rune(spec)
	i := 0

	switch {
	case len(runes) >= 2 && isAlignChar(runes[1]):
		fs.Fill = runes[0]
		fs.Align = alignOf(runes[1])
		i = 2
	case len(runes) >= 1 && isAlignChar(runes[0]):
		fs.Align = alignOf(runes[0])
		i = 1
	}

	start := i
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}

	if i > start {
		width := 0
		for _, r := range runes[start:i] {
			width = width*10 + int(r-'0')
		}

		fs.Width = width
	}

	fs.TypeOpts = string(runes[i:])

	return fs, nil
}

func isAlignChar(r rune) bool {
	return r == '<' || r == '>' || r == '^'
}

func alignOf(r rune) Align {
	switch r {
	case '<':
		return AlignLeft
	case '>':
		return AlignRight
	case '^':
		return AlignCenter
	default:
		return AlignNone
	}
}

// skipWhitespace advances src past zero or more locale-whitespace code
// points, per the driver's whitespace-segment rule of §4.4. End of range
// while skipping is not an error: it simply means there was nothing left
// to skip.
func skipWhitespace(src source.Source, loc locale.Facet) error {
	for {
		r, err := src.Peek()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if !loc.IsSpace(r) {
			return nil
		}

		if err := src.Advance(1); err != nil {
			return err
		}
	}
}
