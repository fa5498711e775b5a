package source

import (
	"bufio"
	"fmt"
	"io"

	"go.scanforge.dev/scanfmt/internal/decode"
)

// stackBudget is the number of code points the reader-backed source keeps
// in its small pushback window before it would need to grow; this mirrors
// the §5 resource model's "small stack budget (~64 code units)" for
// scratch buffers used while copying non-contiguous input. Growing beyond
// it is not an error, it just means PutbackN/Rollback further back than
// that is unsupported past the rollback point, exactly as §4.1 specifies.
const stackBudget = 64

// readerSource is a non-contiguous [Source] over an [io.Reader]. It keeps a
// ring of the most recently read code points so that PutbackN and Rollback
// can work up to the rollback point without requiring the underlying
// reader itself to support seeking.
type readerSource struct {
	r        *bufio.Reader
	window   []rune // Code points read so far, oldest first
	cursor   int    // Index into window of the current read position
	rollback int    // Index into window of the furthest-back rollback point
	atEOF    bool
}

// Reader returns a non-contiguous [Source] that pulls code points lazily
// from r. Suitable for stdin or any other stream that should not be read
// to completion up front.
func Reader(r io.Reader) Source {
	return &readerSource{
		r:      bufio.NewReader(r),
		window: make([]rune, 0, stackBudget),
	}
}

func (s *readerSource) Capabilities() Capabilities {
	return Capabilities{Contiguous: false, Direct: false, Sized: false}
}

// fill ensures window has at least one unconsumed code point available,
// unless the underlying reader is exhausted.
func (s *readerSource) fill() error {
	if s.cursor < len(s.window) {
		return nil
	}

	if s.atEOF {
		return io.EOF
	}

	r, size, err := s.r.ReadRune()
	if err != nil {
		if err == io.EOF { //nolint:errorlint // bufio.Reader documents a bare io.EOF sentinel
			s.atEOF = true
			return io.EOF
		}

		return fmt.Errorf("%w: %w", ErrUnrecoverable, err)
	}

	// bufio.Reader.ReadRune returns (RuneError, 1, nil) for malformed
	// encoding but (RuneError, 3, nil) for a genuinely encoded U+FFFD; only
	// the former is an encoding error.
	if r == '�' && size == 1 {
		return fmt.Errorf("%w: %w", ErrUnrecoverable, decode.ErrInvalidEncoding)
	}

	s.window = append(s.window, r)

	return nil
}

func (s *readerSource) Peek() (rune, error) {
	if err := s.fill(); err != nil {
		return 0, err
	}

	return s.window[s.cursor], nil
}

func (s *readerSource) Advance(n int) error {
	for range n {
		if err := s.fill(); err != nil {
			panic("source: Advance past end of reader source")
		}

		s.cursor++
	}

	s.compact()

	return nil
}

func (s *readerSource) ReadRune(_ bool) (rune, error) {
	r, err := s.Peek()
	if err != nil {
		return 0, err
	}

	if err := s.Advance(1); err != nil {
		return 0, err
	}

	return r, nil
}

func (s *readerSource) PutbackN(n int) error {
	if s.cursor-n < s.rollback {
		return fmt.Errorf("%w: cannot put back %d code points, rollback point reached", ErrUnrecoverable, n)
	}

	s.cursor -= n

	return nil
}

func (s *readerSource) SetRollbackPoint() {
	s.rollback = s.cursor
}

func (s *readerSource) Rollback() error {
	if s.rollback > s.cursor {
		return fmt.Errorf("%w: no valid rollback point", ErrUnrecoverable)
	}

	s.cursor = s.rollback

	return nil
}

// compact discards code points behind the rollback point once the window
// grows to twice the stack budget, so long-running scans don't retain the
// entire stream in memory.
func (s *readerSource) compact() {
	if s.rollback == 0 || len(s.window) < stackBudget*2 {
		return
	}

	drop := s.rollback
	s.window = append(s.window[:0], s.window[drop:]...)
	s.cursor -= drop
	s.rollback = 0
}

func (s *readerSource) ZeroCopy(int) ([]byte, bool) {
	return nil, false
}

func (s *readerSource) ReadAllZeroCopy() ([]byte, bool) {
	return nil, false
}
