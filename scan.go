// Package scanfmt is a type-safe, format-string-directed scanner: the
// read-side counterpart to Go's fmt.Sprintf, built around an explicit
// Source Range rather than an io.Reader, so the same format string can
// drive a scan over an in-memory buffer or a streamed reader with
// identical semantics.
package scanfmt

import (
	"go.scanforge.dev/scanfmt/internal/driver"
	"go.scanforge.dev/scanfmt/locale"
	"go.scanforge.dev/scanfmt/source"
)

// Scan parses format against src, populating args in left-to-right
// field order. args must be pointers to one of the types the library
// recognizes (integers, floats, bool, string, or []byte for a
// non-copying string view over a contiguous src) or implement
// [CustomScanner]. Uses the classic, locale-independent facet; see
// [ScanLocalized] to supply a different one.
func Scan(src source.Source, format string, args ...any) Result {
	return ScanLocalized(locale.Classic(), src, format, args...)
}

// ScanLocalized is [Scan] with an explicit locale facet, used by fields
// whose specifier requests localized digits, decimal point, thousands
// separator, or boolean names (`L`/`n`/`l`).
func ScanLocalized(loc locale.Facet, src source.Source, format string, args ...any) Result {
	res := driver.Run(src, loc, format, args...)
	return Result{Count: res.Count, Err: res.Err}
}

// ScanValue is a convenience for the common case of reading a single
// value with the default format for its type (equivalent to
// Scan(src, "{}", &value)).
func ScanValue[T any](src source.Source) (T, Result) {
	var value T

	res := Scan(src, "{}", &value)

	return value, res
}
