// Package diag renders scanfmt format-string errors for display on a
// terminal, the way a compiler points at the offending column of a
// source line.
package diag

import (
	"fmt"
	"io"
	"strings"

	"go.followtheprocess.codes/hue"
)

// An ErrorHandler may be supplied to app.App.Check and other entry points. If a
// format string error is encountered and a non-nil handler was provided,
// it is called with the position info and the error message.
type ErrorHandler func(pos Position, msg string)

// Position locates an error within a format string: the format text
// itself plus a byte offset into it.
//
// Positions with a negative Offset are considered invalid; callers that
// cannot determine a precise offset should use -1 rather than guessing.
type Position struct {
	Format string // The format string the error occurred in
	Offset int    // Byte offset of the position within Format
}

// IsValid reports whether the [Position] describes a valid offset into
// its format string.
func (p Position) IsValid() bool {
	return p.Offset >= 0 && p.Offset <= len(p.Format)
}

// String returns a string representation of a [Position], formatted so
// the offending column reads naturally alongside the format text.
func (p Position) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("BadPosition: {Format: %q, Offset: %d}", p.Format, p.Offset)
	}

	return fmt.Sprintf("%q (offset %d)", p.Format, p.Offset)
}

// PrettyConsoleHandler returns an [ErrorHandler] that formats the error
// for display on the terminal, underlining the offending column of the
// format string.
func PrettyConsoleHandler(w io.Writer) ErrorHandler {
	return func(pos Position, msg string) {
		fmt.Fprintf(w, "%s\n\n", msg)

		if !pos.IsValid() {
			return
		}

		fmt.Fprintf(w, "  %s\n", pos.Format)
		hue.Red.Fprintf(w, "  %s^\n", strings.Repeat(" ", pos.Offset))
	}
}
