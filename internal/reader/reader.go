package reader

import (
	"go.scanforge.dev/scanfmt/internal/argstore"
	"go.scanforge.dev/scanfmt/internal/scanerr"
	"go.scanforge.dev/scanfmt/locale"
	"go.scanforge.dev/scanfmt/source"
)

// CustomContext is implemented by the driver so a [argstore.CustomScanner]
// can recurse back into the library's own readers.
type CustomContext = argstore.CustomContext

// Read resolves fs against tag and dispatches to the matching reader,
// writing the scanned value into arg.Value. It is the single entry point
// the driver calls for every Field segment.
func Read(src source.Source, loc locale.Facet, tag argstore.Tag, fs FieldSpec, arg any, ctx CustomContext) error {
	switch tag {
	case argstore.TagInt8, argstore.TagInt16, argstore.TagInt32, argstore.TagInt64, argstore.TagInt,
		argstore.TagUint8, argstore.TagUint16, argstore.TagUint32, argstore.TagUint64, argstore.TagUint:
		opts, err := ParseIntOptions(fs.TypeOpts)
		if err != nil {
			return err
		}

		return ScanInt(src, loc, opts, fs.Width, arg)

	case argstore.TagFloat32, argstore.TagFloat64:
		opts, err := ParseFloatOptions(fs.TypeOpts)
		if err != nil {
			return err
		}

		return ScanFloat(src, loc, opts, fs.Width, arg)

	case argstore.TagBool:
		opts, err := ParseBoolOptions(fs.TypeOpts)
		if err != nil {
			return err
		}

		b, ok := arg.(*bool)
		if !ok {
			return scanerr.New(scanerr.UnrecoverableInternalError, "bool tag with non-*bool argument %T", arg)
		}

		return ScanBool(src, loc, opts, b)

	case argstore.TagString:
		opts, err := ParseStringOptions(fs.TypeOpts)
		if err != nil {
			return err
		}

		s, ok := arg.(*string)
		if !ok {
			return scanerr.New(scanerr.UnrecoverableInternalError, "string tag with non-*string argument %T", arg)
		}

		return ScanString(src, loc, opts, fs.Width, s)

	case argstore.TagBytesView:
		opts, err := ParseStringOptions(fs.TypeOpts)
		if err != nil {
			return err
		}

		b, ok := arg.(*[]byte)
		if !ok {
			return scanerr.New(scanerr.UnrecoverableInternalError, "bytes-view tag with non-*[]byte argument %T", arg)
		}

		return ScanStringView(src, loc, opts, fs.Width, b)

	case argstore.TagCustom:
		scanner, ok := arg.(argstore.CustomScanner)
		if !ok {
			return scanerr.New(scanerr.UnrecoverableInternalError, "custom tag with non-CustomScanner argument %T", arg)
		}

		if err := scanner.ScanFrom(ctx); err != nil {
			return err
		}

		return nil

	default:
		return scanerr.New(scanerr.UnrecoverableInternalError, "unhandled argument tag %s", tag)
	}
}
