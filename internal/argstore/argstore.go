// Package argstore implements the type-erased argument store the scan
// driver indexes into when it resolves a replacement field to its output
// variable.
//
// §9 describes the teacher pattern this replaces: a pointer+flag packed
// enum with deep inheritance between reader wrapper types. Here it is a
// flat tagged union — a single [Tag] byte plus an `any` payload — backed
// by a small fixed-size array for the common case (up to [Packed]
// arguments) with a slice fallback beyond that; the packing is an
// implementation detail invisible to the driver, which only ever calls
// [Store.At].
package argstore

import "fmt"

// Packed is the number of arguments the store keeps inline before
// spilling to a heap-allocated slice. Chosen generously above what a
// typical format string needs so the common case never allocates for the
// store itself (the backing array for Store.packed below is part of the
// Store value).
const Packed = 8

// Tag identifies the concrete type behind an [Arg]'s payload.
type Tag uint8

// Argument type tags.
const (
	TagInt8 Tag = iota
	TagInt16
	TagInt32
	TagInt64
	TagInt
	TagUint8
	TagUint16
	TagUint32
	TagUint64
	TagUint
	TagFloat32
	TagFloat64
	TagBool
	TagString

	// TagBytesView is requested by a *[]byte argument: the non-owning
	// string-view reader of §4.6.5, which borrows directly from a
	// contiguous source instead of copying into a new string.
	TagBytesView

	TagCustom
)

// String implements [fmt.Stringer] for a [Tag].
func (t Tag) String() string {
	switch t {
	case TagInt8:
		return "Int8"
	case TagInt16:
		return "Int16"
	case TagInt32:
		return "Int32"
	case TagInt64:
		return "Int64"
	case TagInt:
		return "Int"
	case TagUint8:
		return "Uint8"
	case TagUint16:
		return "Uint16"
	case TagUint32:
		return "Uint32"
	case TagUint64:
		return "Uint64"
	case TagUint:
		return "Uint"
	case TagFloat32:
		return "Float32"
	case TagFloat64:
		return "Float64"
	case TagBool:
		return "Bool"
	case TagString:
		return "String"
	case TagBytesView:
		return "BytesView"
	case TagCustom:
		return "Custom"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// CustomScanner is implemented by a user type that wants to drive its own
// scan from inside a larger format string. See §4.6.6.
type CustomScanner interface {
	ScanFrom(ctx CustomContext) error
}

// CustomContext is the narrow interface a [CustomScanner] is given; the
// driver package implements it so custom scanners can recurse into the
// library's own readers (e.g. `scan_usertype`) without importing driver
// or reader directly and creating an import cycle.
type CustomContext interface {
	// ScanInto parses fmtSpec (the text between ':' and '}' that would
	// normally drive a single field) against the remaining input and
	// writes into dst, which must be a pointer the driver recognizes
	// (same types as top-level Scan arguments).
	ScanInto(fmtSpec string, dst any) error
}

// Arg is one type-erased reference to a caller's output variable.
type Arg struct {
	Tag   Tag
	Value any // Always a pointer to the caller's variable
}

// Store is a packed, type-erased vector of [Arg]s.
type Store struct {
	packed  [Packed]Arg
	n       int
	overflow []Arg
}

// New builds a [Store] from args, tagging each by its concrete type.
// Returns an error wrapping [ErrUnsupportedType] if any argument is not a
// pointer to a supported type and does not implement [CustomScanner].
func New(args ...any) (Store, error) {
	var s Store

	for _, a := range args {
		tag, err := tagOf(a)
		if err != nil {
			return Store{}, err
		}

		s.append(Arg{Tag: tag, Value: a})
	}

	return s, nil
}

func (s *Store) append(a Arg) {
	if s.n < Packed {
		s.packed[s.n] = a
		s.n++

		return
	}

	s.overflow = append(s.overflow, a)
	s.n++
}

// Len returns the number of arguments in the store.
func (s Store) Len() int {
	return s.n
}

// At returns the argument at index i. Panics if i is out of range; the
// driver always checks [Store.Len] against the field count before
// indexing.
func (s Store) At(i int) Arg {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("argstore: index %d out of range [0, %d)", i, s.n))
	}

	if i < Packed {
		return s.packed[i]
	}

	return s.overflow[i-Packed]
}

// ErrUnsupportedType is returned by [New] when an argument is neither a
// pointer to a supported primitive type nor a [CustomScanner].
var ErrUnsupportedType = fmt.Errorf("unsupported scan argument type")

// TagFor reports the [Tag] that [New] would assign to a, without adding
// it to a [Store]. Used by the driver to resolve the target type of a
// nested scan performed from inside a [CustomScanner].
func TagFor(a any) (Tag, error) {
	return tagOf(a)
}

func tagOf(a any) (Tag, error) {
	switch a.(type) {
	case *int8:
		return TagInt8, nil
	case *int16:
		return TagInt16, nil
	case *int32:
		return TagInt32, nil
	case *int64:
		return TagInt64, nil
	case *int:
		return TagInt, nil
	case *uint8:
		return TagUint8, nil
	case *uint16:
		return TagUint16, nil
	case *uint32:
		return TagUint32, nil
	case *uint64:
		return TagUint64, nil
	case *uint:
		return TagUint, nil
	case *float32:
		return TagFloat32, nil
	case *float64:
		return TagFloat64, nil
	case *bool:
		return TagBool, nil
	case *string:
		return TagString, nil
	case *[]byte:
		return TagBytesView, nil
	case CustomScanner:
		return TagCustom, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedType, a)
	}
}
