package fmtparse_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.followtheprocess.codes/test"
	"go.followtheprocess.codes/txtar"
	"go.scanforge.dev/scanfmt/internal/fmtparse"
)

var update = flag.Bool("update", false, "Update golden testdata")

// TestParseValidGolden runs every testdata/valid/*.txtar fixture: each
// archive holds a format string and the segments it should parse into,
// rendered with [fmtparse.Segment.String].
func TestParseValidGolden(t *testing.T) {
	pattern := filepath.Join("testdata", "valid", "*.txtar")
	files, err := filepath.Glob(pattern)
	test.Ok(t, err)

	for _, file := range files {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			archive, err := txtar.ParseFile(file)
			test.Ok(t, err)

			format, ok := archive.Read("format.txt")
			test.True(t, ok, test.Context("%s missing format.txt", file))
			format = strings.TrimSuffix(format, "\n")

			want, ok := archive.Read("segments.txt")
			test.True(t, ok, test.Context("%s missing segments.txt", file))

			segments, err := fmtparse.Parse(format)
			test.Ok(t, err)

			var got strings.Builder
			for _, seg := range segments {
				got.WriteString(seg.String())
				got.WriteByte('\n')
			}

			if *update {
				err := archive.Write("segments.txt", got.String())
				test.Ok(t, err)

				err = txtar.DumpFile(file, archive)
				test.Ok(t, err)

				return
			}

			test.Diff(t, got.String(), want)
		})
	}
}

// TestParseInvalidGolden runs every testdata/invalid/*.txtar fixture:
// each archive holds a malformed format string and the exact
// [fmtparse.SyntaxError] message it should produce.
func TestParseInvalidGolden(t *testing.T) {
	test.ColorEnabled(os.Getenv("CI") == "")

	pattern := filepath.Join("testdata", "invalid", "*.txtar")
	files, err := filepath.Glob(pattern)
	test.Ok(t, err)

	for _, file := range files {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			archive, err := txtar.ParseFile(file)
			test.Ok(t, err)

			format, ok := archive.Read("format.txt")
			test.True(t, ok, test.Context("%s missing format.txt", file))
			format = strings.TrimSuffix(format, "\n")

			want, ok := archive.Read("error.txt")
			test.True(t, ok, test.Context("%s missing error.txt", file))
			want = strings.TrimSuffix(want, "\n")

			_, err = fmtparse.Parse(format)
			test.Err(t, err)
			test.Equal(t, err.Error(), want)
		})
	}
}
