package reader

import (
	"io"

	"go.scanforge.dev/scanfmt/internal/scanerr"
	"go.scanforge.dev/scanfmt/locale"
	"go.scanforge.dev/scanfmt/source"
)

// IntOptions is the parsed integer-opts tail of a field spec (§4.4).
type IntOptions struct {
	Base       int // 0 means "detect from prefix", per §4.6.1
	Unsigned   bool
	Thousands  bool // `'`
	Localized  bool // `L` or `n`
	Numeric    bool // `n`: localized thousands + localized parse path
	CharMode   bool // `c`: read one code point into the integer (same as `U`)
	CodePoint  bool // `U`: read one decoded code point into the integer
	baseForced bool
}

// ParseIntOptions parses the integer-opts grammar of §4.4.
func ParseIntOptions(opts string) (IntOptions, error) {
	var o IntOptions

	runes := []rune(opts)

	setBase := func(b int) error {
		if o.baseForced {
			return scanerr.New(scanerr.InvalidFormatString, "conflicting base modifiers in %q", opts)
		}

		o.Base = b
		o.baseForced = true

		return nil
	}

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case 'd':
			if err := setBase(10); err != nil {
				return o, err
			}
		case 'x', 'X':
			if err := setBase(16); err != nil {
				return o, err
			}
		case 'o':
			if err := setBase(8); err != nil {
				return o, err
			}
		case 'b':
			if err := setBase(2); err != nil {
				return o, err
			}
		case 'i':
			if err := setBase(0); err != nil {
				return o, err
			}
		case 'B':
			n := 0
			j := i + 1

			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				n = n*10 + int(runes[j]-'0')
				j++
			}

			if j == i+1 || n < 2 || n > 36 {
				return o, scanerr.New(scanerr.InvalidFormatString, "invalid custom base in %q", opts)
			}

			if err := setBase(n); err != nil {
				return o, err
			}

			i = j - 1
		case 'u':
			o.Unsigned = true
		case '\'':
			o.Thousands = true
		case 'L':
			o.Localized = true
		case 'n':
			o.Localized = true
			o.Numeric = true
			o.Thousands = true
		case 'c':
			o.CharMode = true
		case 'U':
			o.CodePoint = true
		default:
			return o, scanerr.New(scanerr.InvalidFormatString, "unknown integer specifier %q in %q", string(runes[i]), opts)
		}
	}

	return o, nil
}

// ScanInt reads an integer value from src per §4.6.1 and writes it into
// dst, which must be one of the pointer types tagOf recognizes as an
// integer tag. width is the maximum number of code points to consume, or
// -1 for unbounded.
func ScanInt(src source.Source, loc locale.Facet, opts IntOptions, width int, dst any) error {
	if opts.CharMode {
		return scanCharIntoInt(src, dst)
	}

	if opts.CodePoint {
		return scanCodePointIntoInt(src, dst)
	}

	src.SetRollbackPoint()

	if err := skipWhitespace(src, loc); err != nil {
		return err
	}

	if _, err := src.Peek(); err == io.EOF {
		return scanerr.New(scanerr.EndOfRange, "unexpected end of input")
	}

	negative, consumed, failErr := readSign(src)
	if failErr != nil {
		return failErr
	}

	base := opts.Base

	switch {
	case base == 0:
		detected, n, err := detectBase(src, width-consumed)
		if err != nil {
			_ = src.Rollback()
			return err
		}

		base = detected
		consumed += n
	case base == 16 || base == 8 || base == 2:
		n, err := skipBasePrefix(src, base, width-consumed)
		if err != nil {
			_ = src.Rollback()
			return err
		}

		consumed += n
	}

	magnitude, n, err := readDigits(src, loc, base, opts.Thousands || opts.Numeric, width-consumed)
	if err != nil {
		_ = src.Rollback()
		return err
	}

	consumed += n

	if n == 0 {
		_ = src.Rollback()
		return scanerr.New(scanerr.InvalidScannedValue, "no digits found")
	}

	if negative && opts.Unsigned {
		_ = src.Rollback()
		return scanerr.New(scanerr.ValueOutOfRange, "unsigned field cannot accept a negative value")
	}

	if err := assignInt(dst, magnitude, negative); err != nil {
		_ = src.Rollback()
		return err
	}

	return nil
}

// readSign consumes an optional leading '+' or '-'. A '+' is only
// consumed, never rejected, even for unsigned targets; rejection of a
// leading '-' on unsigned targets happens after the full value is known
// so that the already-scanned digits are available for a precise error.
func readSign(src source.Source) (negative bool, consumed int, err error) {
	r, perr := src.Peek()
	if perr == io.EOF {
		return false, 0, nil
	}

	if perr != nil {
		return false, 0, perr
	}

	switch r {
	case '-':
		if err := src.Advance(1); err != nil {
			return false, 0, err
		}

		return true, 1, nil
	case '+':
		if err := src.Advance(1); err != nil {
			return false, 0, err
		}

		return false, 1, nil
	default:
		return false, 0, nil
	}
}

// detectBase inspects the next one or two code points for a `0x`/`0o`/
// `0b` prefix or a bare leading `0` followed by a digit (octal), per
// §4.6.1, consuming the prefix when recognized.
func detectBase(src source.Source, remainingWidth int) (base int, consumed int, err error) {
	first, ferr := src.Peek()
	if ferr == io.EOF {
		return 10, 0, nil
	}

	if ferr != nil {
		return 0, 0, ferr
	}

	if first != '0' || remainingWidth == 0 {
		return 10, 0, nil
	}

	if err := src.Advance(1); err != nil {
		return 0, 0, err
	}

	// notPrefix puts the leading '0' back so it is read as a digit.
	notPrefix := func() (int, int, error) {
		if err := src.PutbackN(1); err != nil {
			return 0, 0, err
		}

		return 10, 0, nil
	}

	second, serr := src.Peek()
	if serr == io.EOF {
		return notPrefix()
	}

	if serr != nil {
		return 0, 0, serr
	}

	switch second {
	case 'x', 'X':
		if remainingWidth >= 0 && remainingWidth < 2 {
			return notPrefix()
		}

		if err := src.Advance(1); err != nil {
			return 0, 0, err
		}

		return 16, 2, nil
	case 'o', 'O':
		if remainingWidth >= 0 && remainingWidth < 2 {
			return notPrefix()
		}

		if err := src.Advance(1); err != nil {
			return 0, 0, err
		}

		return 8, 2, nil
	case 'b', 'B':
		if remainingWidth >= 0 && remainingWidth < 2 {
			return notPrefix()
		}

		if err := src.Advance(1); err != nil {
			return 0, 0, err
		}

		return 2, 2, nil
	default:
		if second >= '0' && second <= '9' {
			return 8, 1, nil
		}

		return notPrefix()
	}
}

// skipBasePrefix consumes an explicit base's own prefix (`0x`/`0X` for
// 16, `0o`/`0O` for 8, `0b`/`0B` for 2) if present, since §4.4 notes each
// explicit base modifier "accepts" its prefix rather than requiring it.
func skipBasePrefix(src source.Source, base int, remainingWidth int) (int, error) {
	if remainingWidth >= 0 && remainingWidth < 2 {
		return 0, nil
	}

	first, err := src.Peek()
	if err == io.EOF {
		return 0, nil
	}

	if err != nil {
		return 0, err
	}

	if first != '0' {
		return 0, nil
	}

	want := map[int][2]rune{16: {'x', 'X'}, 8: {'o', 'O'}, 2: {'b', 'B'}}[base]

	if err := src.Advance(1); err != nil {
		return 0, err
	}

	second, serr := src.Peek()
	if serr == io.EOF {
		if err := src.PutbackN(1); err != nil {
			return 0, err
		}

		return 0, nil
	}

	if serr != nil {
		return 0, serr
	}

	if second != want[0] && second != want[1] {
		if err := src.PutbackN(1); err != nil {
			return 0, err
		}

		return 0, nil
	}

	if err := src.Advance(1); err != nil {
		return 0, err
	}

	return 2, nil
}

// digitValue returns the value of r as a digit in the given base, or -1
// if it is not a valid digit in that base.
func digitValue(r rune, base int) int {
	var v int

	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'z':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		v = int(r-'A') + 10
	default:
		return -1
	}

	if v >= base {
		return -1
	}

	return v
}

// readDigits performs the Horner-with-cutoff accumulation of §4.6.1,
// stopping (without error) at the first non-digit, non-separator code
// point, at end of range, or at width exhaustion. It reports
// ValueOutOfRange as soon as one more digit would overflow a 64-bit
// unsigned accumulator; the target-width-specific bound is checked
// afterwards in assignInt.
func readDigits(src source.Source, loc locale.Facet, base int, thousands bool, width int) (uint64, int, error) {
	var (
		value    uint64
		consumed int
	)

	cutoffValue := ^uint64(0) / uint64(base)
	cutoffDigit := int(^uint64(0) % uint64(base))

	for width < 0 || consumed < width {
		r, err := src.Peek()
		if err == io.EOF {
			break
		}

		if err != nil {
			return 0, consumed, err
		}

		if thousands && isThousandsSeparator(r, loc) {
			if err := src.Advance(1); err != nil {
				return 0, consumed, err
			}

			consumed++
			continue
		}

		d := digitValue(r, base)
		if d < 0 {
			break
		}

		if value > cutoffValue || (value == cutoffValue && d > cutoffDigit) {
			return 0, consumed, scanerr.New(scanerr.ValueOutOfRange, "integer literal overflows 64 bits")
		}

		value = value*uint64(base) + uint64(d)

		if err := src.Advance(1); err != nil {
			return 0, consumed, err
		}

		consumed++
	}

	return value, consumed, nil
}

func isThousandsSeparator(r rune, loc locale.Facet) bool {
	return r == loc.ThousandsSeparator()
}

// boundsFor reports the unsigned magnitude ceiling for a positive value
// and for a negative value (i.e. the absolute value of the minimum) of
// the integer type dst points to.
func boundsFor(dst any) (maxPos, maxNeg uint64, err error) {
	switch dst.(type) {
	case *int8:
		return 1<<7 - 1, 1 << 7, nil
	case *int16:
		return 1<<15 - 1, 1 << 15, nil
	case *int32:
		return 1<<31 - 1, 1 << 31, nil
	case *int64, *int:
		return 1<<63 - 1, 1 << 63, nil
	case *uint8:
		return 1<<8 - 1, 0, nil
	case *uint16:
		return 1<<16 - 1, 0, nil
	case *uint32:
		return 1<<32 - 1, 0, nil
	case *uint64, *uint:
		return ^uint64(0), 0, nil
	default:
		return 0, 0, scanerr.New(scanerr.UnrecoverableInternalError, "%T is not an integer argument", dst)
	}
}

func assignInt(dst any, magnitude uint64, negative bool) error {
	maxPos, maxNeg, err := boundsFor(dst)
	if err != nil {
		return err
	}

	if negative {
		if magnitude > maxNeg {
			return scanerr.New(scanerr.ValueOutOfRange, "magnitude %d exceeds minimum for %T", magnitude, dst)
		}
	} else if magnitude > maxPos {
		return scanerr.New(scanerr.ValueOutOfRange, "magnitude %d exceeds maximum for %T", magnitude, dst)
	}

	signed := int64(magnitude)
	if negative {
		signed = -signed
	}

	switch p := dst.(type) {
	case *int8:
		*p = int8(signed)
	case *int16:
		*p = int16(signed)
	case *int32:
		*p = int32(signed)
	case *int64:
		*p = signed
	case *int:
		*p = int(signed)
	case *uint8:
		*p = uint8(magnitude)
	case *uint16:
		*p = uint16(magnitude)
	case *uint32:
		*p = uint32(magnitude)
	case *uint64:
		*p = magnitude
	case *uint:
		*p = uint(magnitude)
	default:
		return scanerr.New(scanerr.UnrecoverableInternalError, "%T is not an integer argument", dst)
	}

	return nil
}

// scanCharIntoInt implements the `c` integer option of §4.4: read exactly
// one decoded code point and assign its scalar value. The source yields
// code points only, so a multi-byte UTF-8 sequence is read whole, not as
// its first byte.
func scanCharIntoInt(src source.Source, dst any) error {
	src.SetRollbackPoint()

	r, err := src.ReadRune(true)
	if err != nil {
		return wrapEndOfRange(err)
	}

	if err := assignInt(dst, uint64(r), false); err != nil {
		_ = src.Rollback()
		return err
	}

	return nil
}

// scanCodePointIntoInt implements the `U` integer option: decode exactly
// one code point and assign its scalar value.
func scanCodePointIntoInt(src source.Source, dst any) error {
	src.SetRollbackPoint()

	r, err := src.ReadRune(true)
	if err != nil {
		return wrapEndOfRange(err)
	}

	if err := assignInt(dst, uint64(r), false); err != nil {
		_ = src.Rollback()
		return err
	}

	return nil
}

func wrapEndOfRange(err error) error {
	if err == io.EOF {
		return scanerr.New(scanerr.EndOfRange, "unexpected end of input")
	}

	return scanerr.New(scanerr.UnrecoverableSourceError, "%v", err)
}
