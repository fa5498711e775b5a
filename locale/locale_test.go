package locale_test

import (
	"slices"
	"testing"

	"go.followtheprocess.codes/test"
	"go.scanforge.dev/scanfmt/locale"
	"golang.org/x/text/language"
)

func TestClassic(t *testing.T) {
	c := locale.Classic()

	test.True(t, c.IsDefault())
	test.Equal(t, c.DecimalPoint(), '.')
	test.Equal(t, c.ThousandsSeparator(), ',')
	test.EqualFunc(t, c.TrueNames(), []string{"true"}, slices.Equal)
	test.EqualFunc(t, c.FalseNames(), []string{"false"}, slices.Equal)
}

func TestForTagFinnish(t *testing.T) {
	fi := locale.ForTag(language.MustParse("fi"))

	test.Equal(t, fi.IsDefault(), false)
	test.Equal(t, fi.DecimalPoint(), ',')
	test.Equal(t, fi.ThousandsSeparator(), '.')
	test.True(t, fi.EqualFold("TOSI", "tosi"))
}

func TestForTagUnrecognizedFallsBackToClassicConventions(t *testing.T) {
	ja := locale.ForTag(language.MustParse("ja"))

	test.Equal(t, ja.IsDefault(), false)
	test.Equal(t, ja.DecimalPoint(), '.')
	test.Equal(t, ja.ThousandsSeparator(), ',')
}

func TestEqualFoldClassicIsASCIIOnly(t *testing.T) {
	c := locale.Classic()

	test.True(t, c.EqualFold("TRUE", "true"))
	test.Equal(t, c.EqualFold("true", "false"), false)
}

func TestClassifiers(t *testing.T) {
	c := locale.Classic()

	test.True(t, c.IsSpace(' '))
	test.True(t, c.IsSpace('\t'))
	test.Equal(t, c.IsSpace('a'), false)

	test.True(t, c.IsDigit('5'))
	test.Equal(t, c.IsDigit('x'), false)

	test.True(t, c.IsAlpha('z'))
	test.Equal(t, c.IsAlpha('5'), false)

	test.True(t, c.IsPunct('.'))
	test.Equal(t, c.IsPunct('a'), false)
}

func TestHostFacetUsesUnicodeClassifiers(t *testing.T) {
	de := locale.ForTag(language.MustParse("de"))

	// ü is a Unicode letter but not an ASCII one; the host facet must
	// recognise it where the classic facet would not.
	test.True(t, de.IsAlpha('ü'))
}

func TestASCIIHelpers(t *testing.T) {
	test.True(t, locale.IsASCIISpace(' '))
	test.True(t, locale.IsASCIISpace('\n'))
	test.Equal(t, locale.IsASCIISpace('a'), false)

	test.True(t, locale.IsASCIIDigit('0'))
	test.Equal(t, locale.IsASCIIDigit('a'), false)

	test.True(t, locale.IsASCIIAlpha('Q'))
	test.Equal(t, locale.IsASCIIAlpha('5'), false)
}

func TestTagReturnsZeroForClassic(t *testing.T) {
	c := locale.Classic()
	test.Equal(t, c.Tag().String(), language.Tag{}.String())
}

func TestTagReturnsBackingTagForHostFacet(t *testing.T) {
	tag := language.MustParse("fr")
	fr := locale.ForTag(tag)
	test.Equal(t, fr.Tag().String(), tag.String())
}
