package argstore_test

import (
	"testing"

	"go.followtheprocess.codes/test"
	"go.scanforge.dev/scanfmt/internal/argstore"
)

func TestNewAndAt(t *testing.T) {
	var (
		i int
		s string
		f float64
		b bool
	)

	store, err := argstore.New(&i, &s, &f, &b)
	test.Ok(t, err)
	test.Equal(t, store.Len(), 4)

	test.Equal(t, store.At(0).Tag, argstore.TagInt)
	test.Equal(t, store.At(1).Tag, argstore.TagString)
	test.Equal(t, store.At(2).Tag, argstore.TagFloat64)
	test.Equal(t, store.At(3).Tag, argstore.TagBool)
}

func TestNewOverflowsPackedCapacity(t *testing.T) {
	var ints [argstore.Packed + 3]int

	args := make([]any, len(ints))
	for i := range ints {
		args[i] = &ints[i]
	}

	store, err := argstore.New(args...)
	test.Ok(t, err)
	test.Equal(t, store.Len(), len(ints))

	for i := range ints {
		test.Equal(t, store.At(i).Tag, argstore.TagInt)
	}
}

func TestNewUnsupportedType(t *testing.T) {
	var ch chan int

	_, err := argstore.New(&ch)
	test.Err(t, err)
}
