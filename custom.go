package scanfmt

import "go.scanforge.dev/scanfmt/internal/argstore"

// CustomScanner is implemented by a type that wants to drive its own
// scan logic from inside a larger format string (§4.6.6). A pointer to a
// type implementing this interface may be passed directly as a [Scan]
// argument.
type CustomScanner = argstore.CustomScanner

// CustomContext is the narrow interface a [CustomScanner] is given. It
// lets the scanner recurse into the library's own readers for a nested
// field (`scan_usertype` in §4.6.6) without the scanner needing to know
// about the driver or source internals.
type CustomContext = argstore.CustomContext
