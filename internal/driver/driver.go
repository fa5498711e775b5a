// Package driver implements the scan driver of §4.8: given a format
// string and a set of output arguments, it walks the parsed format
// segments in order, matching literals, skipping whitespace, and
// dispatching each replacement field to the reader package.
package driver

import (
	"io"

	"go.scanforge.dev/scanfmt/internal/argstore"
	"go.scanforge.dev/scanfmt/internal/fmtparse"
	"go.scanforge.dev/scanfmt/internal/reader"
	"go.scanforge.dev/scanfmt/internal/scanerr"
	"go.scanforge.dev/scanfmt/locale"
	"go.scanforge.dev/scanfmt/source"
)

// Result is what a scan call returns: how many arguments were
// successfully populated, and the error kind that stopped the scan, if
// any.
type Result struct {
	Count int
	Err   *scanerr.Error
}

// Run executes one scan call against src, consuming code points to
// satisfy format, in order, against args.
func Run(src source.Source, loc locale.Facet, format string, args ...any) Result {
	segments, perr := fmtparse.Parse(format)
	if perr != nil {
		return Result{Err: scanerr.New(scanerr.InvalidFormatString, "%v", perr)}
	}

	store, serr := argstore.New(args...)
	if serr != nil {
		return Result{Err: scanerr.New(scanerr.InvalidArgument, "%v", serr)}
	}

	d := &driver{src: src, loc: loc}

	count := 0

	for _, seg := range segments {
		switch seg.Kind {
		case fmtparse.Literal:
			if err := d.matchLiteral(seg.Text); err != nil {
				return Result{Count: count, Err: err}
			}
		case fmtparse.Whitespace:
			if err := skipWhitespace(src, loc); err != nil {
				return Result{Count: count, Err: toScanErr(err)}
			}
		case fmtparse.Field:
			if seg.Index < 0 || seg.Index >= store.Len() {
				return Result{
					Count: count,
					Err: scanerr.New(
						scanerr.InvalidFormatString,
						"field index %d has no corresponding argument (have %d)",
						seg.Index,
						store.Len(),
					),
				}
			}

			arg := store.At(seg.Index)

			fs, ferr := reader.ParseFieldSpec(seg.Spec)
			if ferr != nil {
				return Result{Count: count, Err: toScanErr(ferr)}
			}

			if err := reader.Read(src, loc, arg.Tag, fs, arg.Value, d); err != nil {
				return Result{Count: count, Err: toScanErr(err)}
			}

			count++
		}
	}

	return Result{Count: count}
}

// driver is the [reader.CustomContext] implementation passed to a
// [argstore.CustomScanner], letting it recurse back into the library's
// own readers without reader or argstore importing this package.
type driver struct {
	src source.Source
	loc locale.Facet
}

func (d *driver) ScanInto(fmtSpec string, dst any) error {
	tag, err := argstore.TagFor(dst)
	if err != nil {
		return scanerr.New(scanerr.InvalidArgument, "%v", err)
	}

	fs, err := reader.ParseFieldSpec(fmtSpec)
	if err != nil {
		return toScanErr(err)
	}

	return reader.Read(d.src, d.loc, tag, fs, dst, d)
}

// matchLiteral compares text, code unit for code unit, against the
// input, per §4.8: any mismatch is a recoverable InvalidScannedValue.
func (d *driver) matchLiteral(text string) *scanerr.Error {
	for _, want := range text {
		got, err := d.src.Peek()
		if err == io.EOF {
			return scanerr.New(scanerr.EndOfRange, "expected %q, reached end of input", want)
		}

		if err != nil {
			return scanerr.New(scanerr.UnrecoverableSourceError, "%v", err)
		}

		if got != want {
			return scanerr.New(scanerr.InvalidScannedValue, "expected %q, got %q", want, got)
		}

		if err := d.src.Advance(1); err != nil {
			return scanerr.New(scanerr.UnrecoverableSourceError, "%v", err)
		}
	}

	return nil
}

// skipWhitespace consumes zero or more locale-whitespace code points, per
// the whitespace-segment rule of §4.4.
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

// toScanErr normalizes any error returned by a reader into a
// [*scanerr.Error], wrapping a foreign error as an unrecoverable one.
func toScanErr(err error) *scanerr.Error {
	if err == nil {
		return nil
	}

	if se, ok := err.(*scanerr.Error); ok {
		return se
	}

	return scanerr.New(scanerr.UnrecoverableInternalError, "%v", err)
}
