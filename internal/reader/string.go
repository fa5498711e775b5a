package reader

import (
	"io"
	"strings"

	"go.scanforge.dev/scanfmt/internal/scanerr"
	"go.scanforge.dev/scanfmt/internal/scanset"
	"go.scanforge.dev/scanfmt/locale"
	"go.scanforge.dev/scanfmt/source"
)

// StringOptions is the parsed string-opts tail of a field spec (§4.4).
type StringOptions struct {
	ExactWidth bool // `c`: copy exactly Width code points, no whitespace trim
	Localized  bool
	Scanset    *scanset.Set
}

// ParseStringOptions parses the string-opts grammar of §4.4, compiling a
// scanset when opts is a bracketed `[...]` specifier.
func ParseStringOptions(opts string) (StringOptions, error) {
	var o StringOptions

	if strings.HasPrefix(opts, "[") {
		if !strings.HasSuffix(opts, "]") {
			return o, scanerr.New(scanerr.InvalidFormatString, "unterminated scanset %q", opts)
		}

		set, err := scanset.Compile(opts[1 : len(opts)-1])
		if err != nil {
			return o, scanerr.New(scanerr.InvalidFormatString, "%v", err)
		}

		o.Scanset = &set

		return o, nil
	}

	for _, r := range opts {
		switch r {
		case 's':
			// default, explicit spelling
		case 'c':
			o.ExactWidth = true
		case 'L':
			o.Localized = true
		default:
			return o, scanerr.New(scanerr.InvalidFormatString, "unknown string specifier %q in %q", string(r), opts)
		}
	}

	return o, nil
}

// ScanString reads a string value from src per §4.6.5 and writes it into
// dst (*string).
func ScanString(src source.Source, loc locale.Facet, opts StringOptions, width int, dst *string) error {
	switch {
	case opts.Scanset != nil:
		return scanScansetString(src, loc, *opts.Scanset, width, dst)
	case opts.ExactWidth:
		return scanExactWidthString(src, width, dst)
	default:
		return scanDefaultString(src, loc, width, dst)
	}
}

// ScanStringView reads the default (`{}`/`{:s}`) string form from src and
// writes a non-owning view into dst (*[]byte), sharing src's backing
// array instead of copying, per the string-view reader of §4.6.5. Only
// available over a contiguous source; reports InvalidOperation otherwise.
// A scanset or exact-width specifier with a []byte argument is rejected:
// the view form is only defined for the default string grammar.
func ScanStringView(src source.Source, loc locale.Facet, opts StringOptions, width int, dst *[]byte) error {
	if opts.Scanset != nil || opts.ExactWidth {
		return scanerr.New(scanerr.InvalidFormatString, "string-view reader only supports the default string form")
	}

	src.SetRollbackPoint()

	if err := skipWhitespace(src, loc); err != nil {
		return err
	}

	if _, perr := src.Peek(); perr == io.EOF {
		return scanerr.New(scanerr.EndOfRange, "unexpected end of input")
	}

	if !src.Capabilities().Contiguous {
		_ = src.Rollback()
		return scanerr.New(scanerr.InvalidOperation, "zero-copy string view requires a contiguous source")
	}

	return scanDefaultStringView(src, loc, width, dst)
}

// scanDefaultString implements the default `{}`/`{:s}` behavior: skip
// leading whitespace, then consume up to the next whitespace or end.
func scanDefaultString(src source.Source, loc locale.Facet, width int, dst *string) error {
	src.SetRollbackPoint()

	if err := skipWhitespace(src, loc); err != nil {
		return err
	}

	if _, perr := src.Peek(); perr == io.EOF {
		return scanerr.New(scanerr.EndOfRange, "unexpected end of input")
	}

	var b strings.Builder

	n := 0

	for width < 0 || n < width {
		r, err := src.Peek()
		if err == io.EOF {
			break
		}

		if err != nil {
			return err
		}

		if loc.IsSpace(r) {
			break
		}

		b.WriteRune(r)

		if err := src.Advance(1); err != nil {
			return err
		}

		n++
	}

	if n == 0 {
		_ = src.Rollback()
		return scanerr.New(scanerr.InvalidScannedValue, "empty string")
	}

	*dst = b.String()

	return nil
}

func scanDefaultStringView(src source.Source, loc locale.Facet, width int, dst *[]byte) error {
	n := 0

	for width < 0 || n < width {
		r, err := src.Peek()
		if err == io.EOF {
			break
		}

		if err != nil {
			return err
		}

		if loc.IsSpace(r) {
			break
		}

		n++

		if err := src.Advance(1); err != nil {
			return err
		}
	}

	if n == 0 {
		_ = src.Rollback()
		return scanerr.New(scanerr.InvalidScannedValue, "empty string")
	}

	// Rewind over the code points just consumed above so ZeroCopy can
	// take the identical span as a single non-copying slice.
	if err := src.PutbackN(n); err != nil {
		return err
	}

	view, ok := src.ZeroCopy(n)
	if !ok {
		return scanerr.New(scanerr.InvalidOperation, "zero-copy string view requires a contiguous source")
	}

	*dst = view

	return nil
}

// scanExactWidthString implements `{:c}` with required width W: read
// exactly W code points, no whitespace trimming; width 0 is legal and
// returns an empty string.
func scanExactWidthString(src source.Source, width int, dst *string) error {
	if width < 0 {
		return scanerr.New(scanerr.InvalidFormatString, "{:c} string field requires an explicit width")
	}

	src.SetRollbackPoint()

	var b strings.Builder

	for i := 0; i < width; i++ {
		r, err := src.Peek()
		if err == io.EOF {
			_ = src.Rollback()
			return scanerr.New(scanerr.EndOfRange, "unexpected end of input")
		}

		if err != nil {
			return err
		}

		b.WriteRune(r)

		if err := src.Advance(1); err != nil {
			return err
		}
	}

	*dst = b.String()

	return nil
}

// scanScansetString runs the compiled predicate over successive code
// points, stopping at the first non-member or end of input.
func scanScansetString(src source.Source, loc locale.Facet, set scanset.Set, width int, dst *string) error {
	src.SetRollbackPoint()

	var b strings.Builder

	n := 0

	for width < 0 || n < width {
		r, err := src.Peek()
		if err == io.EOF {
			break
		}

		if err != nil {
			return err
		}

		if !set.Contains(r, loc) {
			break
		}

		b.WriteRune(r)

		if err := src.Advance(1); err != nil {
			return err
		}

		n++
	}

	if n == 0 {
		_ = src.Rollback()
		return scanerr.New(scanerr.InvalidScannedValue, "no code points matched the scanset")
	}

	*dst = b.String()

	return nil
}
