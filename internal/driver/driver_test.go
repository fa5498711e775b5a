package driver_test

import (
	"testing"

	"go.followtheprocess.codes/test"
	"go.scanforge.dev/scanfmt/internal/driver"
	"go.scanforge.dev/scanfmt/internal/scanerr"
	"go.scanforge.dev/scanfmt/locale"
	"go.scanforge.dev/scanfmt/source"
	"golang.org/x/text/language"
)

func TestRunBasicFields(t *testing.T) {
	src := source.String("42 foo 3.14")

	var (
		i int
		s string
		f float64
	)

	result := driver.Run(src, locale.Classic(), "{} {} {}", &i, &s, &f)

	test.Ok(t, checkErr(result))
	test.Equal(t, result.Count, 3)
	test.Equal(t, i, 42)
	test.Equal(t, s, "foo")
	test.Equal(t, f, 3.14)

	_, perr := src.Peek()
	test.Err(t, perr) // EOF: tail is empty
}

func TestRunLeadingWhitespaceString(t *testing.T) {
	src := source.String("   \t hello")

	var s string

	result := driver.Run(src, locale.Classic(), "{}", &s)

	test.Ok(t, checkErr(result))
	test.Equal(t, result.Count, 1)
	test.Equal(t, s, "hello")
}

func TestRunHexUint32(t *testing.T) {
	src := source.String("0xBAD1DEA")

	var u uint32

	result := driver.Run(src, locale.Classic(), "{}", &u)

	test.Ok(t, checkErr(result))
	test.Equal(t, result.Count, 1)
	test.Equal(t, u, uint32(0xBAD1DEA))
}

func TestRunOverflowInt32(t *testing.T) {
	src := source.String("2147483648")

	var i32 int32

	result := driver.Run(src, locale.Classic(), "{}", &i32)

	test.Equal(t, result.Count, 0)
	test.Equal(t, result.Err.Kind, scanerr.ValueOutOfRange)

	r, perr := src.Peek()
	test.Ok(t, perr)
	test.Equal(t, r, '2') // nothing consumed, per the reference choice
}

func TestRunAlphabeticBool(t *testing.T) {
	src := source.String("truex")

	var b bool

	result := driver.Run(src, locale.Classic(), "{:a}", &b)

	test.Ok(t, checkErr(result))
	test.Equal(t, result.Count, 1)
	test.Equal(t, b, true)

	r, perr := src.Peek()
	test.Ok(t, perr)
	test.Equal(t, r, 'x')
}

func TestRunScansetRejectsFirstChar(t *testing.T) {
	src := source.String("aÄO")

	var s string

	result := driver.Run(src, locale.Classic(), "{:[ÅÄÖ]}", &s)

	test.Equal(t, result.Count, 0)
	test.Equal(t, result.Err.Kind, scanerr.InvalidScannedValue)
}

func TestRunScansetMatchesPrefix(t *testing.T) {
	src := source.String("ÅÄO")

	var s string

	result := driver.Run(src, locale.Classic(), "{:[ÅÄÖ]}", &s)

	test.Ok(t, checkErr(result))
	test.Equal(t, result.Count, 1)
	test.Equal(t, s, "ÅÄ")

	r, perr := src.Peek()
	test.Ok(t, perr)
	test.Equal(t, r, 'O')
}

func TestRunThousandsSeparator(t *testing.T) {
	src := source.String("1,000,000")

	var i32 int32

	result := driver.Run(src, locale.Classic(), "{:'}", &i32)

	test.Ok(t, checkErr(result))
	test.Equal(t, result.Count, 1)
	test.Equal(t, i32, int32(1000000))
}

func TestRunLocalizedFloat(t *testing.T) {
	src := source.String("3,14")

	var f float64

	result := driver.Run(src, locale.ForTag(language.Finnish), "{:L}", &f)

	test.Ok(t, checkErr(result))
	test.Equal(t, result.Count, 1)
	test.Equal(t, f, 3.14)
}

func TestRunLiteralMismatch(t *testing.T) {
	src := source.String("xyz")

	var s string

	result := driver.Run(src, locale.Classic(), "abc{}", &s)

	test.Equal(t, result.Count, 0)
	test.Equal(t, result.Err.Kind, scanerr.InvalidScannedValue)
}

func TestRunArgCountMismatch(t *testing.T) {
	src := source.String("1 2")

	var i int

	result := driver.Run(src, locale.Classic(), "{} {}", &i)

	test.Equal(t, result.Err.Kind, scanerr.InvalidFormatString)
}

func TestRunStringViewBorrowsFromSource(t *testing.T) {
	src := source.String("hello world")

	var b []byte

	result := driver.Run(src, locale.Classic(), "{}", &b)

	test.Ok(t, checkErr(result))
	test.Equal(t, result.Count, 1)
	test.Equal(t, string(b), "hello")

	rest, perr := src.Peek()
	test.Ok(t, perr)
	test.Equal(t, rest, ' ')
}

func checkErr(r driver.Result) error {
	if r.Err == nil {
		return nil
	}

	return r.Err
}
