package scanfmt

import "go.scanforge.dev/scanfmt/internal/scanerr"

// Kind discriminates why a [Scan] call stopped, per the error taxonomy of
// §7. The zero value, [Success], is never attached to a non-nil [Error].
type Kind = scanerr.Kind

// Error kinds.
const (
	Success                    = scanerr.Success
	EndOfRange                 = scanerr.EndOfRange
	InvalidFormatString        = scanerr.InvalidFormatString
	InvalidScannedValue        = scanerr.InvalidScannedValue
	InvalidOperation           = scanerr.InvalidOperation
	ValueOutOfRange            = scanerr.ValueOutOfRange
	InvalidArgument            = scanerr.InvalidArgument
	InvalidEncoding            = scanerr.InvalidEncoding
	UnrecoverableSourceError   = scanerr.UnrecoverableSourceError
	UnrecoverableInternalError = scanerr.UnrecoverableInternalError
)

// Error is returned by every scanning entry point in this package. It
// always carries a [Kind]; Position is the offset (in code points) into
// the source at which the problem was detected, or -1 when not
// applicable.
type Error = scanerr.Error
