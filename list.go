package scanfmt

import "go.scanforge.dev/scanfmt/source"

// ScanList scans zero or more values of type T from src, each read with
// the default format for T (so whitespace-separated by default, per
// §6), stopping at end of input or, if untilSet, at the first code
// point equal to until (left unconsumed).
//
// A value read failure other than running out of input (EndOfRange) is
// reported immediately; the values read so far are still returned.
func ScanList[T any](src source.Source, until rune, untilSet bool) ([]T, Result) {
	var values []T

	count := 0

	for {
		if untilSet {
			r, err := src.Peek()
			if err == nil && r == until {
				break
			}
		}

		value, res := ScanValue[T](src)
		if res.Err != nil {
			if res.Err.Kind == EndOfRange {
				break
			}

			return values, Result{Count: count, Err: res.Err}
		}

		values = append(values, value)
		count++
	}

	return values, Result{Count: count}
}
