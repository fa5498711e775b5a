// Package source implements the scanfmt source-range abstraction: the
// borrowed, forward-readable view over a caller's input that the scan
// driver and value readers consume code units from.
//
// A [Source] is borrowed for the duration of exactly one scan call. End of
// range is reported as [io.EOF], which callers of the driver may treat as
// either success (trailing whitespace after the last field) or a scan
// error depending on context; any other error returned by a [Source]
// method is fatal and the source must not be used again.
package source

import "errors"

// ErrUnrecoverable wraps a fatal error from a [Source] implementation: an
// I/O failure from an adapter, or a request to put back further than the
// source's rollback point supports. Once returned, the source that
// produced it must not be read from again.
var ErrUnrecoverable = errors.New("unrecoverable source error")

// Capabilities describes what operations a [Source] supports.
//
// A contiguous source implies direct and sized: its entire remaining
// window is available as a single slice, element access never fails with
// anything other than end-of-range, and the remaining length is known
// up front.
type Capabilities struct {
	Contiguous bool // Entire remaining input is a live, addressable window
	Direct     bool // Element access is infallible (barring end-of-range)
	Sized      bool // Remaining length is known without consuming
}

// Source is a forward-readable sequence of Unicode code points, borrowed
// by the scan driver and its readers for one scan call.
//
// Implementations must return [io.EOF] from Peek/ReadRune when the
// position is at the end of the range (Advance panics instead, see
// below); any other error is fatal and should be (or wrap)
// [ErrUnrecoverable].
type Source interface {
	// Peek returns the code point at the current position without
	// advancing. Returns io.EOF at the end of the range.
	Peek() (rune, error)

	// Advance moves the position forward by n code points. Advancing
	// past the end of the range is a defect in the caller and panics;
	// readers must Peek first.
	Advance(n int) error

	// ReadRune is a convenience for Peek followed by a conditional
	// Advance. If putbackOnFail is true and the returned error is
	// non-nil, the position is left unchanged (this is always true for
	// Peek-based failures, putbackOnFail only matters for adapters that
	// read further ahead than one code point to decode, e.g. UTF-16
	// surrogate pairs).
	ReadRune(putbackOnFail bool) (rune, error)

	// PutbackN reverses the last n Advance calls. Must succeed back to
	// the most recent rollback point (or the start of the range if none
	// was set); beyond that it returns an error wrapping
	// [ErrUnrecoverable].
	PutbackN(n int) error

	// SetRollbackPoint records the current position as the furthest
	// point PutbackN is guaranteed to be able to reach.
	SetRollbackPoint()

	// Rollback returns the position to the most recently set rollback
	// point, or to the start of the range if none was set. Returns an
	// error wrapping [ErrUnrecoverable] if that point can no longer be
	// honored.
	Rollback() error

	// ZeroCopy returns a subspan covering up to n code points from the
	// current position without copying, advancing by the code points
	// actually returned. Non-contiguous sources always return (nil,
	// false) so callers fall back to copying; this is not an error.
	ZeroCopy(n int) ([]byte, bool)

	// ReadAllZeroCopy is ZeroCopy for the entire remaining window.
	ReadAllZeroCopy() ([]byte, bool)

	// Capabilities reports what this source supports. Queried once by
	// callers that want to pick a fast path.
	Capabilities() Capabilities
}
