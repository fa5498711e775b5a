package fmtparse_test

import (
	"slices"
	"testing"

	"go.followtheprocess.codes/test"
	"go.scanforge.dev/scanfmt/internal/fmtparse"
)

func TestParseBasics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []fmtparse.Segment
	}{
		{
			name: "empty",
			src:  "",
			want: nil,
		},
		{
			name: "literal only",
			src:  "hello",
			want: []fmtparse.Segment{
				{Kind: fmtparse.Literal, Text: "hello", Start: 0, End: 5},
			},
		},
		{
			name: "escaped braces",
			src:  "{{x}}",
			want: []fmtparse.Segment{
				{Kind: fmtparse.Literal, Text: "{x}", Start: 0, End: 5},
			},
		},
		{
			name: "implicit fields",
			src:  "{} {}",
			want: []fmtparse.Segment{
				{Kind: fmtparse.Field, Index: 0, Start: 0, End: 2},
				{Kind: fmtparse.Whitespace, Start: 2, End: 3},
				{Kind: fmtparse.Field, Index: 1, Start: 3, End: 5},
			},
		},
		{
			name: "explicit fields",
			src:  "{1} {0}",
			want: []fmtparse.Segment{
				{Kind: fmtparse.Field, Index: 1, Explicit: true, Start: 0, End: 3},
				{Kind: fmtparse.Whitespace, Start: 3, End: 4},
				{Kind: fmtparse.Field, Index: 0, Explicit: true, Start: 4, End: 7},
			},
		},
		{
			name: "field with spec",
			src:  "{:d}",
			want: []fmtparse.Segment{
				{Kind: fmtparse.Field, Index: 0, Spec: "d", Start: 0, End: 4},
			},
		},
		{
			name: "scanset spec with escaped bracket",
			src:  `{:[\]abc]}`,
			want: []fmtparse.Segment{
				{Kind: fmtparse.Field, Index: 0, Spec: `[\]abc]`, Start: 0, End: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fmtparse.Parse(tt.src)
			test.Ok(t, err)
			test.EqualFunc(t, got, tt.want, slices.Equal)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "unterminated field", src: "{"},
		{name: "unmatched close brace", src: "}"},
		{name: "mixed implicit then explicit", src: "{} {0}"},
		{name: "mixed explicit then implicit", src: "{0} {}"},
		{name: "bad field start", src: "{x}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fmtparse.Parse(tt.src)
			test.Err(t, err)
		})
	}
}
