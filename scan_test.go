package scanfmt_test

import (
	"testing"

	"go.followtheprocess.codes/test"
	"go.scanforge.dev/scanfmt"
	"go.scanforge.dev/scanfmt/source"
)

func TestScanThreeFields(t *testing.T) {
	src := source.String("42 foo 3.14")

	var (
		i int
		s string
		f float64
	)

	result := scanfmt.Scan(src, "{} {} {}", &i, &s, &f)

	test.True(t, result.Ok())
	test.Equal(t, result.Count, 3)
	test.Equal(t, i, 42)
	test.Equal(t, s, "foo")
	test.Equal(t, f, 3.14)
}

func TestScanValueString(t *testing.T) {
	src := source.String("   \t hello")

	value, result := scanfmt.ScanValue[string](src)
	test.True(t, result.Ok())
	test.Equal(t, value, "hello")
}

func TestScanBytesView(t *testing.T) {
	src := source.String("hello world")

	var b []byte

	result := scanfmt.Scan(src, "{}", &b)
	test.True(t, result.Ok())
	test.Equal(t, string(b), "hello")
}

func TestScanOverflowReportsValueOutOfRange(t *testing.T) {
	src := source.String("2147483648")

	var i32 int32

	result := scanfmt.Scan(src, "{}", &i32)
	test.False(t, result.Ok())
	test.Equal(t, result.Err.Kind, scanfmt.ValueOutOfRange)
}

func TestScanListWhitespaceSeparated(t *testing.T) {
	src := source.String("1 2 3 4")

	values, result := scanfmt.ScanList[int](src, 0, false)
	test.True(t, result.Ok())
	test.EqualFunc(t, values, []int{1, 2, 3, 4}, func(a, b []int) bool {
		if len(a) != len(b) {
			return false
		}

		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}

		return true
	})
}

func TestGetLine(t *testing.T) {
	src := source.String("first\nsecond")

	line, result := scanfmt.GetLine(src)
	test.True(t, result.Ok())
	test.Equal(t, line, "first")

	rest, result2 := scanfmt.GetLine(src)
	test.True(t, result2.Ok())
	test.Equal(t, rest, "second")
}

func TestIgnoreUntil(t *testing.T) {
	src := source.String("skip,keep")

	result := scanfmt.IgnoreUntil(src, ',')
	test.True(t, result.Ok())

	var s string

	rest := scanfmt.Scan(src, "{}", &s)
	test.True(t, rest.Ok())
	test.Equal(t, s, "keep")
}
