package reader

import (
	"io"
	"math"
	"strconv"
	"strings"

	"go.scanforge.dev/scanfmt/internal/scanerr"
	"go.scanforge.dev/scanfmt/locale"
	"go.scanforge.dev/scanfmt/source"
)

// FloatOptions is the parsed float-opts tail of a field spec (§4.4).
type FloatOptions struct {
	AllowHex     bool
	AllowDecimal bool
	Localized    bool
	restricted   bool
}

// ParseFloatOptions parses the float-opts grammar of §4.4. Absent any
// notation flag, all notations are accepted.
func ParseFloatOptions(opts string) (FloatOptions, error) {
	var o FloatOptions

	for _, r := range opts {
		switch r {
		case 'a', 'A':
			o.AllowHex = true
			o.restricted = true
		case 'e', 'E', 'f', 'F', 'g', 'G':
			o.AllowDecimal = true
			o.restricted = true
		case 'L':
			o.Localized = true
		default:
			return o, scanerr.New(scanerr.InvalidFormatString, "unknown float specifier %q in %q", string(r), opts)
		}
	}

	if !o.restricted {
		o.AllowHex = true
		o.AllowDecimal = true
	}

	return o, nil
}

// ScanFloat reads a floating-point value from src per §4.6.2 and writes
// it into dst (*float32 or *float64).
func ScanFloat(src source.Source, loc locale.Facet, opts FloatOptions, width int, dst any) error {
	src.SetRollbackPoint()

	if err := skipWhitespace(src, loc); err != nil {
		return err
	}

	if _, perr := src.Peek(); perr == io.EOF {
		return scanerr.New(scanerr.EndOfRange, "unexpected end of input")
	}

	decimalPoint := '.'
	if opts.Localized {
		decimalPoint = loc.DecimalPoint()
	}

	token, consumed, err := collectFloatToken(src, width, decimalPoint)
	if err != nil {
		_ = src.Rollback()
		return err
	}

	if token == "" {
		_ = src.Rollback()
		return scanerr.New(scanerr.InvalidScannedValue, "no floating-point literal found")
	}

	if opts.Localized {
		token = delocalize(token, loc)
	}

	if isHexFloatLiteral(token) && !opts.AllowHex {
		_ = src.Rollback()
		return scanerr.New(scanerr.InvalidScannedValue, "hex float not accepted by this field's notation")
	}

	if !isHexFloatLiteral(token) && !isSpecialFloatLiteral(token) && !opts.AllowDecimal {
		_ = src.Rollback()
		return scanerr.New(scanerr.InvalidScannedValue, "decimal float not accepted by this field's notation")
	}

	bitSize := 64
	if _, ok := dst.(*float32); ok {
		bitSize = 32
	}

	value, perr := strconv.ParseFloat(token, bitSize)
	if perr != nil {
		numErr, ok := perr.(*strconv.NumError)
		if ok && numErr.Err == strconv.ErrRange {
			// Overflow to infinity is ValueOutOfRange per §4.6.2. Underflow
			// to 0 is not an error: ParseFloat returns a signed zero with a
			// nil error for it, so it never reaches this branch.
			if math.IsInf(value, 0) {
				assignFloat(dst, value)
				_ = consumed

				return scanerr.New(scanerr.ValueOutOfRange, "%q overflows to infinity", token)
			}
		} else {
			_ = src.Rollback()
			return scanerr.New(scanerr.InvalidScannedValue, "%q is not a valid floating-point literal", token)
		}
	}

	assignFloat(dst, value)

	return nil
}

// collectFloatToken greedily consumes the longest prefix of the input
// that could plausibly be a floating-point literal (sign, digits, one
// decimal point, one exponent marker with its own sign, hex digits and
// `p`/`P` exponent, or one of the inf/infinity/nan spellings), deferring
// the actual validity check to strconv.ParseFloat. It never errors on
// its own; an unparsable token is reported by the caller.
func collectFloatToken(src source.Source, width int, decimalPoint rune) (string, int, error) {
	var b strings.Builder

	consumed := 0

	peekAdvance := func() (rune, bool, error) {
		if width >= 0 && consumed >= width {
			return 0, false, nil
		}

		r, err := src.Peek()
		if err == io.EOF {
			return 0, false, nil
		}

		if err != nil {
			return 0, false, err
		}

		return r, true, nil
	}

	take := func() error {
		if err := src.Advance(1); err != nil {
			return err
		}

		consumed++

		return nil
	}

	r, ok, err := peekAdvance()
	if err != nil {
		return "", consumed, err
	}

	if ok && (r == '+' || r == '-') {
		b.WriteRune(r)

		if err := take(); err != nil {
			return "", consumed, err
		}
	}

	// inf/infinity/nan(...) special spellings.
	if word, n, werr := tryWordLiteral(src, width-consumed); werr != nil {
		return "", consumed, werr
	} else if n > 0 {
		b.WriteString(word)
		consumed += n

		return b.String(), consumed, nil
	}

	isHex := false

	r, ok, err = peekAdvance()
	if err != nil {
		return "", consumed, err
	}

	if ok && r == '0' {
		b.WriteRune(r)

		if err := take(); err != nil {
			return "", consumed, err
		}

		r2, ok2, err2 := peekAdvance()
		if err2 != nil {
			return "", consumed, err2
		}

		if ok2 && (r2 == 'x' || r2 == 'X') {
			isHex = true

			b.WriteRune(r2)

			if err := take(); err != nil {
				return "", consumed, err
			}
		}
	}

	digit := func(r rune) bool {
		if isHex {
			return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
		}

		return r >= '0' && r <= '9'
	}

	expMarkers := "eE"
	if isHex {
		expMarkers = "pP"
	}

	sawDot := false
	sawExp := false

	for {
		r, ok, err := peekAdvance()
		if err != nil {
			return "", consumed, err
		}

		if !ok {
			break
		}

		switch {
		case digit(r):
			b.WriteRune(r)

			if err := take(); err != nil {
				return "", consumed, err
			}
		case r == decimalPoint && !sawDot && !sawExp:
			sawDot = true

			b.WriteRune(r)

			if err := take(); err != nil {
				return "", consumed, err
			}
		case strings.ContainsRune(expMarkers, r) && !sawExp:
			sawExp = true

			b.WriteRune(r)

			if err := take(); err != nil {
				return "", consumed, err
			}

			sr, sok, serr := peekAdvance()
			if serr != nil {
				return "", consumed, serr
			}

			if sok && (sr == '+' || sr == '-') {
				b.WriteRune(sr)

				if err := take(); err != nil {
					return "", consumed, err
				}
			}
		default:
			goto done
		}
	}

done:
	return b.String(), consumed, nil
}

// tryWordLiteral consumes one of the case-insensitive spellings
// "infinity", "inf", or "nan" optionally followed by a parenthesized
// payload, per §4.6.2.
func tryWordLiteral(src source.Source, width int) (string, int, error) {
	for _, word := range []string{"infinity", "inf", "nan"} {
		matched, n, err := matchFold(src, word, width)
		if err != nil {
			return "", 0, err
		}

		if matched {
			if word == "nan" {
				payload, pn, perr := tryNanPayload(src, width-n)
				if perr != nil {
					return "", 0, perr
				}

				return word + payload, n + pn, nil
			}

			return word, n, nil
		}
	}

	return "", 0, nil
}

func tryNanPayload(src source.Source, width int) (string, int, error) {
	r, err := src.Peek()
	if err == io.EOF || err != nil || r != '(' {
		return "", 0, nil
	}

	var b strings.Builder

	consumed := 0

	for {
		if width >= 0 && consumed >= width {
			break
		}

		r, err := src.Peek()
		if err == io.EOF {
			break
		}

		if err != nil {
			return "", 0, err
		}

		if err := src.Advance(1); err != nil {
			return "", 0, err
		}

		b.WriteRune(r)
		consumed++

		if r == ')' {
			break
		}
	}

	return b.String(), consumed, nil
}

// matchFold reports whether word matches the next len(word) code points
// of src case-insensitively (ASCII only; the special spellings are all
// ASCII), consuming them if so and putting them back otherwise.
func matchFold(src source.Source, word string, width int) (bool, int, error) {
	if width >= 0 && width < len(word) {
		return false, 0, nil
	}

	matched := 0

	for _, want := range word {
		r, err := src.Peek()
		if err == io.EOF {
			break
		}

		if err != nil {
			return false, 0, err
		}

		if asciiLowerRune(r) != asciiLowerRune(want) {
			break
		}

		if err := src.Advance(1); err != nil {
			return false, 0, err
		}

		matched++
	}

	if matched == len(word) {
		return true, matched, nil
	}

	if matched > 0 {
		if err := src.PutbackN(matched); err != nil {
			return false, 0, err
		}
	}

	return false, 0, nil
}

func asciiLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}

	return r
}

func isHexFloatLiteral(token string) bool {
	t := strings.TrimPrefix(strings.TrimPrefix(token, "+"), "-")
	return strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X")
}

func isSpecialFloatLiteral(token string) bool {
	t := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(token, "+"), "-"))
	return strings.HasPrefix(t, "inf") || strings.HasPrefix(t, "nan")
}

// delocalize rewrites the locale's decimal point and thousands separator
// to their classic ',' '.'-free Go equivalents so strconv.ParseFloat can
// parse the result.
func delocalize(token string, loc locale.Facet) string {
	var b strings.Builder

	for _, r := range token {
		switch r {
		case loc.ThousandsSeparator():
			continue
		case loc.DecimalPoint():
			b.WriteByte('.')
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func assignFloat(dst any, value float64) {
	switch p := dst.(type) {
	case *float32:
		*p = float32(value)
	case *float64:
		*p = value
	}
}
