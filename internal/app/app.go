// Package app implements the functionality of the program, the CLI in
// package cmd is simply the entrypoint to exported functions and methods
// in this package.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/msg"
	"go.scanforge.dev/scanfmt"
	"go.scanforge.dev/scanfmt/internal/diag"
	"go.scanforge.dev/scanfmt/internal/fmtparse"
	"go.scanforge.dev/scanfmt/locale"
	"go.scanforge.dev/scanfmt/source"
)

// App represents the scanfmt program.
type App struct {
	stdin   io.Reader    // Program input comes from here
	stdout  io.Writer    // Normal program output is written here
	stderr  io.Writer    // Logs and errors are written here
	logger  *log.Logger  // The logger for the application
	version string       // The app version
	loc     locale.Facet // Locale used by Run, classic unless overridden
}

// New returns a new [App], using the classic locale until [App.WithLocale]
// is called.
func New(debug bool, version string, stdin io.Reader, stdout, stderr io.Writer) App {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	logger := log.New(
		stderr,
		log.WithLevel(level),
		log.Prefix("scanfmt"),
	)

	return App{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
		version: version,
		loc:     locale.Classic(),
	}
}

// WithLocale returns a copy of a using loc in place of the classic locale,
// as configured by --config's default_locale.
func (a App) WithLocale(loc locale.Facet) App {
	a.loc = loc
	return a
}

// Hello prints a short greeting, used as the root command's default
// action when no subcommand is given.
func (a App) Hello(ctx context.Context) {
	fmt.Fprintf(a.stdout, "scanfmt %s: type-safe, format-string-directed text scanning\n", a.version)
	fmt.Fprintln(a.stdout, "Run 'scanfmt --help' to see available commands.")
	a.logger.Debug("printed greeting", slog.String("version", a.version))
}

// Check validates a single format string, reporting any syntax error it
// finds through handler.
//
// It returns nil if format is valid, and the underlying parse error
// (already reported to handler) otherwise.
func (a App) Check(ctx context.Context, format string, handler diag.ErrorHandler) error {
	a.logger.Debug("checking format string", slog.String("format", format))

	_, err := fmtparse.Parse(format)
	if err == nil {
		return nil
	}

	var syntaxErr *fmtparse.SyntaxError
	if errors.As(err, &syntaxErr) {
		if handler != nil {
			handler(diag.Position{Format: format, Offset: syntaxErr.Offset}, syntaxErr.Error())
		}

		return err
	}

	if handler != nil {
		handler(diag.Position{Format: format, Offset: -1}, err.Error())
	}

	return err
}

// Run reads lines from the App's stdin, scans each one against format
// treating every field as a string, and writes the scanned values to
// stdout, one line per input line.
//
// It exists to exercise the library end to end from the command line
// without requiring a caller to know Go types up front; typed scanning
// is the library's actual API (see the root package), not this CLI.
func (a App) Run(ctx context.Context, format string) error {
	segments, err := fmtparse.Parse(format)
	if err != nil {
		return fmt.Errorf("invalid format string: %w", err)
	}

	fields := 0

	for _, seg := range segments {
		if seg.Kind == fmtparse.Field {
			fields++
		}
	}

	if fields == 0 {
		return fmt.Errorf("format string %q has no replacement fields", format)
	}

	stdin := source.Reader(a.stdin)

	for {
		if _, err := stdin.Peek(); err == io.EOF {
			return nil
		}

		line, res := scanfmt.GetLine(stdin)
		if !res.Ok() {
			return fmt.Errorf("reading input: %w", res.Err)
		}

		values := make([]string, fields)
		args := make([]any, fields)

		for i := range values {
			args[i] = &values[i]
		}

		result := scanfmt.ScanLocalized(a.loc, source.String(line), format, args...)
		if !result.Ok() {
			msg.Err(fmt.Errorf("%s: %w", line, result.Err))
			continue
		}

		msg.Fsuccess(a.stdout, "%v", values)
	}
}
