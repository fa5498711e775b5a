package decode_test

import (
	"testing"

	"go.followtheprocess.codes/test"
	"go.scanforge.dev/scanfmt/internal/decode"
)

func TestUTF8(t *testing.T) {
	tests := []struct {
		name    string
		src     []byte
		wantR   rune
		wantN   int
		wantErr bool
	}{
		{name: "ascii", src: []byte("A"), wantR: 'A', wantN: 1},
		{name: "two byte", src: []byte("é"), wantR: 'é', wantN: 2},
		{name: "three byte", src: []byte("€"), wantR: '€', wantN: 3},
		{name: "four byte", src: []byte("🎉"), wantR: '🎉', wantN: 4},
		{name: "empty", src: nil, wantErr: true},
		{name: "truncated two byte lead", src: []byte{0xC2}, wantErr: true},
		{name: "lone continuation byte", src: []byte{0x80}, wantErr: true},
		{name: "overlong two byte encoding of NUL", src: []byte{0xC0, 0x80}, wantErr: true},
		{name: "overlong three byte encoding of ascii", src: []byte{0xE0, 0x80, 0x80}, wantErr: true},
		{name: "lone high surrogate", src: []byte{0xED, 0xA0, 0x80}, wantErr: true},
		{name: "value beyond U+10FFFF", src: []byte{0xF4, 0x90, 0x80, 0x80}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, n, err := decode.UTF8(tt.src)
			if tt.wantErr {
				test.Err(t, err)
				return
			}

			test.Ok(t, err)
			test.Equal(t, r, tt.wantR)
			test.Equal(t, n, tt.wantN)
		})
	}
}

func TestUTF16(t *testing.T) {
	tests := []struct {
		name    string
		src     []uint16
		wantR   rune
		wantN   int
		wantErr bool
	}{
		{name: "bmp code unit", src: []uint16{'A'}, wantR: 'A', wantN: 1},
		{name: "surrogate pair", src: []uint16{0xD83C, 0xDF89}, wantR: '🎉', wantN: 2},
		{name: "empty", src: nil, wantErr: true},
		{name: "lone high surrogate", src: []uint16{0xD800}, wantErr: true},
		{name: "lone low surrogate", src: []uint16{0xDC00}, wantErr: true},
		{name: "high surrogate without trailing unit", src: []uint16{0xD83C}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, n, err := decode.UTF16(tt.src)
			if tt.wantErr {
				test.Err(t, err)
				return
			}

			test.Ok(t, err)
			test.Equal(t, r, tt.wantR)
			test.Equal(t, n, tt.wantN)
		})
	}
}

func TestUTF32(t *testing.T) {
	tests := []struct {
		name    string
		unit    rune
		wantErr bool
	}{
		{name: "ascii", unit: 'A'},
		{name: "max valid scalar", unit: 0x10FFFF},
		{name: "lone surrogate", unit: 0xD800, wantErr: true},
		{name: "beyond max scalar", unit: 0x110000, wantErr: true},
		{name: "negative", unit: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := decode.UTF32(tt.unit)
			if tt.wantErr {
				test.Err(t, err)
				return
			}

			test.Ok(t, err)
			test.Equal(t, r, tt.unit)
		})
	}
}

func TestLen(t *testing.T) {
	test.Equal(t, decode.Len('A'), 1)
	test.Equal(t, decode.Len('é'), 2)
	test.Equal(t, decode.Len('€'), 3)
	test.Equal(t, decode.Len('🎉'), 4)
}

func FuzzUTF8RoundTrip(f *testing.F) {
	f.Add("hello")
	f.Add("héllo wörld")
	f.Add("🎉🎊")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		src := []byte(s)

		var consumed int

		for consumed < len(src) {
			r, n, err := decode.UTF8(src[consumed:])
			if err != nil {
				// Only a genuinely malformed sequence may fail; valid UTF-8
				// from the fuzzer's string corpus always decodes.
				t.Fatalf("UTF8(%q) at offset %d: %v", src[consumed:], consumed, err)
			}

			if n != decode.Len(r) {
				t.Fatalf("UTF8 consumed %d bytes for %U, Len reports %d", n, r, decode.Len(r))
			}

			consumed += n
		}
	})
}
