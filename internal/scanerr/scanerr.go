// Package scanerr defines the flat error-kind taxonomy shared by every
// layer of the scanning pipeline (readers, scanset, driver) and
// re-exported by the root package for callers.
package scanerr

import "fmt"

// Kind discriminates the reason a scan operation failed. The zero value,
// [Success], is never attached to a non-nil [Error].
type Kind uint8

const (
	Success Kind = iota
	EndOfRange
	InvalidFormatString
	InvalidScannedValue
	InvalidOperation
	ValueOutOfRange
	InvalidArgument
	InvalidEncoding
	UnrecoverableSourceError
	UnrecoverableInternalError
)

// String implements [fmt.Stringer] for a [Kind].
func (k Kind) String() string {
	switch k {
	case Success:
		return "Success"
	case EndOfRange:
		return "EndOfRange"
	case InvalidFormatString:
		return "InvalidFormatString"
	case InvalidScannedValue:
		return "InvalidScannedValue"
	case InvalidOperation:
		return "InvalidOperation"
	case ValueOutOfRange:
		return "ValueOutOfRange"
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidEncoding:
		return "InvalidEncoding"
	case UnrecoverableSourceError:
		return "UnrecoverableSourceError"
	case UnrecoverableInternalError:
		return "UnrecoverableInternalError"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Recoverable reports whether a scan call that stopped with this kind may
// still be meaningfully continued by the caller (the count of already
// scanned arguments is trustworthy and the source position is
// well-defined). [UnrecoverableSourceError] and [UnrecoverableInternalError]
// are the only two kinds that are not.
func (k Kind) Recoverable() bool {
	return k != UnrecoverableSourceError && k != UnrecoverableInternalError
}

// Error is the concrete error type every scanning layer returns. Position
// is the offset (in code points) into the source at which the error was
// detected, or -1 when not applicable (e.g. format-string errors carry
// their own offset in Msg).
type Error struct {
	Kind     Kind
	Msg      string
	Position int
}

func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Kind, e.Position, e.Msg)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New builds an [Error] with no associated source position.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Position: -1}
}

// At builds an [Error] positioned at pos code points into the source.
func At(kind Kind, pos int, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Position: pos}
}
