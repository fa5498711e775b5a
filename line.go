package scanfmt

import (
	"io"
	"strings"

	"go.scanforge.dev/scanfmt/internal/scanerr"
	"go.scanforge.dev/scanfmt/source"
)

// GetLine reads code points up to and including a newline, returning
// everything before it (the newline itself is consumed but not
// included). Equivalent to GetLineUntil(src, '\n').
func GetLine(src source.Source) (string, Result) {
	return GetLineUntil(src, '\n')
}

// GetLineUntil reads code points up to and including delimiter, per §6.
// Reaching end of input before delimiter is not an error: the collected
// text is returned with a [Success] result, mirroring a final line with
// no trailing newline.
func GetLineUntil(src source.Source, delimiter rune) (string, Result) {
	var b strings.Builder

	for {
		r, err := src.Peek()
		if err == io.EOF {
			return b.String(), Result{Count: 1}
		}

		if err != nil {
			return b.String(), Result{Err: scanerr.New(scanerr.UnrecoverableSourceError, "%v", err)}
		}

		if err := src.Advance(1); err != nil {
			return b.String(), Result{Err: scanerr.New(scanerr.UnrecoverableSourceError, "%v", err)}
		}

		if r == delimiter {
			return b.String(), Result{Count: 1}
		}

		b.WriteRune(r)
	}
}

// IgnoreUntil skips input up to and including the first occurrence of
// delimiter. Reaching end of input before finding it yields an
// [EndOfRange] result; everything up to end of input has still been
// consumed.
func IgnoreUntil(src source.Source, delimiter rune) Result {
	for {
		r, err := src.Peek()
		if err == io.EOF {
			return Result{Err: scanerr.New(scanerr.EndOfRange, "delimiter %q not found", delimiter)}
		}

		if err != nil {
			return Result{Err: scanerr.New(scanerr.UnrecoverableSourceError, "%v", err)}
		}

		if err := src.Advance(1); err != nil {
			return Result{Err: scanerr.New(scanerr.UnrecoverableSourceError, "%v", err)}
		}

		if r == delimiter {
			return Result{Count: 1}
		}
	}
}
