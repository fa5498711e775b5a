package reader

import (
	"io"
	"sort"

	"go.scanforge.dev/scanfmt/internal/scanerr"
	"go.scanforge.dev/scanfmt/locale"
	"go.scanforge.dev/scanfmt/source"
)

// BoolOptions is the parsed bool-opts tail of a field spec (§4.4).
type BoolOptions struct {
	Alphabetic bool
	Numeric    bool
	Localized  bool
	restricted bool
}

// ParseBoolOptions parses the bool-opts grammar of §4.4. Absent any mode
// flag, both alphabetic and numeric forms are accepted. `l`/`L` without
// alphabetic mode is InvalidFormatString.
func ParseBoolOptions(opts string) (BoolOptions, error) {
	var o BoolOptions

	for _, r := range opts {
		switch r {
		case 'a':
			o.Alphabetic = true
			o.restricted = true
		case 'n':
			o.Numeric = true
			o.restricted = true
		case 'l', 'L':
			o.Localized = true
		default:
			return o, scanerr.New(scanerr.InvalidFormatString, "unknown bool specifier %q in %q", string(r), opts)
		}
	}

	if !o.restricted {
		o.Alphabetic = true
		o.Numeric = true
	}

	if o.Localized && !o.Alphabetic {
		return o, scanerr.New(scanerr.InvalidFormatString, "localized bool names require alphabetic mode")
	}

	return o, nil
}

// ScanBool reads a boolean value from src per §4.6.3 and writes it into
// dst (*bool).
func ScanBool(src source.Source, loc locale.Facet, opts BoolOptions, dst *bool) error {
	src.SetRollbackPoint()

	if err := skipWhitespace(src, loc); err != nil {
		return err
	}

	if _, perr := src.Peek(); perr == io.EOF {
		return scanerr.New(scanerr.EndOfRange, "unexpected end of input")
	}

	if opts.Alphabetic {
		value, matched, err := scanAlphabeticBool(src, loc, opts)
		if err != nil {
			return err
		}

		if matched {
			*dst = value
			return nil
		}
	}

	if opts.Numeric {
		value, matched, err := scanNumericBool(src)
		if err != nil {
			return err
		}

		if matched {
			*dst = value
			return nil
		}
	}

	_ = src.Rollback()

	return scanerr.New(scanerr.InvalidScannedValue, "no valid boolean spelling found")
}

// scanAlphabeticBool consumes a maximal run of non-space code units, then
// matches the *prefix* of that run against the longest matching truename
// then falsename, per §4.6.3 (so "truex" against "true" matches, putting
// back only the trailing "x").
func scanAlphabeticBool(src source.Source, loc locale.Facet, opts BoolOptions) (value bool, matched bool, err error) {
	names := append(append([]string{}, loc.TrueNames()...), loc.FalseNames()...)
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	var run []rune

	for {
		r, perr := src.Peek()
		if perr == io.EOF {
			break
		}

		if perr != nil {
			return false, false, perr
		}

		if loc.IsSpace(r) {
			break
		}

		run = append(run, r)

		if err := src.Advance(1); err != nil {
			return false, false, err
		}

		if runLongerThanAllNames(run, names) {
			break
		}
	}

	if matchLen, ok := matchBoolPrefix(run, loc.TrueNames(), opts.Localized, loc); ok {
		if err := src.PutbackN(len(run) - matchLen); err != nil {
			return false, false, err
		}

		return true, true, nil
	}

	if matchLen, ok := matchBoolPrefix(run, loc.FalseNames(), opts.Localized, loc); ok {
		if err := src.PutbackN(len(run) - matchLen); err != nil {
			return false, false, err
		}

		return false, true, nil
	}

	if err := src.PutbackN(len(run)); err != nil {
		return false, false, err
	}

	return false, false, nil
}

// matchBoolPrefix tries each name, longest first (the order [locale.Facet]'s
// TrueNames/FalseNames are documented to return them in), against the
// leading len(name) runes of run. Returns the rune length of the first
// name that matches and true, or (0, false) if none do.
func matchBoolPrefix(run []rune, names []string, localized bool, loc locale.Facet) (int, bool) {
	for _, name := range names {
		nameRunes := []rune(name)
		if len(run) < len(nameRunes) {
			continue
		}

		candidate := string(run[:len(nameRunes)])
		if matchesBoolName(candidate, name, localized, loc) {
			return len(nameRunes), true
		}
	}

	return 0, false
}

func matchesBoolName(word, name string, localized bool, loc locale.Facet) bool {
	if localized {
		return loc.EqualFold(word, name)
	}

	return word == name
}

func runLongerThanAllNames(run []rune, names []string) bool {
	for _, n := range names {
		if len(run) < len([]rune(n)) {
			return false
		}
	}

	return true
}

// scanNumericBool reads exactly one code unit: '0' -> false, '1' -> true,
// anything else is a failed, non-consuming match.
func scanNumericBool(src source.Source) (value bool, matched bool, err error) {
	r, perr := src.Peek()
	if perr == io.EOF {
		return false, false, nil
	}

	if perr != nil {
		return false, false, perr
	}

	switch r {
	case '0':
		if err := src.Advance(1); err != nil {
			return false, false, err
		}

		return false, true, nil
	case '1':
		if err := src.Advance(1); err != nil {
			return false, false, err
		}

		return true, true, nil
	default:
		return false, false, nil
	}
}
