package app_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.followtheprocess.codes/test"
	"go.scanforge.dev/scanfmt/internal/app"
	"go.scanforge.dev/scanfmt/internal/diag"
	"go.uber.org/goleak"
)

func TestCheckValid(t *testing.T) {
	pattern := filepath.Join("testdata", "check", "valid", "*.scanfmt")
	files, err := filepath.Glob(pattern)
	test.Ok(t, err)

	for _, file := range files {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			a := app.New(false, "test", os.Stdin, stdout, stderr)

			err := a.CheckPath(t.Context(), file, simpleErrorHandler(stderr), app.CheckOptions{})
			test.Ok(t, err)

			test.Diff(t, stdout.String(), fmt.Sprintf("Success: %s is valid\n", file))
			test.Diff(t, stderr.String(), "")
		})
	}
}

func TestCheckValidDir(t *testing.T) {
	path := filepath.Join("testdata", "check", "valid")
	pattern := filepath.Join(path, "*.scanfmt")

	files, err := filepath.Glob(pattern)
	test.Ok(t, err)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	a := app.New(false, "test", os.Stdin, stdout, stderr)

	err = a.CheckPath(t.Context(), path, simpleErrorHandler(stderr), app.CheckOptions{})
	test.Ok(t, err)

	s := &strings.Builder{}

	for _, file := range files {
		fmt.Fprintf(s, "Success: %s is valid\n", file)
	}

	test.Diff(t, stdout.String(), s.String())
	test.Diff(t, stderr.String(), "")
}

func TestCheckInvalid(t *testing.T) {
	pattern := filepath.Join("testdata", "check", "invalid", "*.scanfmt")
	files, err := filepath.Glob(pattern)
	test.Ok(t, err)

	for _, file := range files {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			a := app.New(false, "test", os.Stdin, stdout, stderr)

			err := a.CheckPath(t.Context(), file, simpleErrorHandler(stderr), app.CheckOptions{})
			test.Err(t, err)

			test.Equal(t, stdout.String(), "")

			// The actual error format is down to the handler; parse errors
			// are tested extensively in internal/fmtparse, so all we care
			// about here is that something resembling an error was printed.
			test.True(t, strings.Contains(stderr.String(), file))
		})
	}
}

// simpleErrorHandler returns a [diag.ErrorHandler] that writes a simple,
// unstyled string representation of the error.
func simpleErrorHandler(w io.Writer) diag.ErrorHandler {
	return func(pos diag.Position, message string) {
		fmt.Fprintf(w, "%s: %s\n", pos, message)
	}
}
