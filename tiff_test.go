package tiffpad

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	for _, l := range []Layout{
		Default,
		{Width: 3, Height: 5, BitsPerSample: 8, ByteOrder: binary.LittleEndian},
		{Width: 70000, Height: 1000, BitsPerSample: 8, ByteOrder: binary.BigEndian},
	} {
		padding, err := l.Padding()
		if err != nil {
			t.Fatal(err)
		}
		got, err := Parse(padding)
		if err != nil {
			t.Fatalf("%+v: %v", l, err)
		}
		if got != l {
			t.Errorf("Parse = %+v, want %+v", got, l)
		}
	}
}

func TestParseRejects(t *testing.T) {
	entryAt := func(i int) int { return headerLen + ifdCountLen + i*ifdLen }
	for _, tc := range []struct {
		name   string
		mangle func(b []byte) []byte
		want   interface{}
	}{
		{"bad magic", func(b []byte) []byte { b[0] = 'X'; return b }, FormatError("")},
		{"short", func(b []byte) []byte { return b[:50] }, nil},
		{"unsorted tags", func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[entryAt(1):], 255)
			return b
		}, FormatError("")},
		{"compressed", func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[entryAt(3)+8:], 5)
			return b
		}, UnsupportedError("")},
		{"strip offset", func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[entryAt(5)+8:], 200)
			return b
		}, FormatError("")},
		{"byte count", func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[entryAt(7)+8:], 7)
			return b
		}, FormatError("")},
		{"next IFD", func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[PaddingLen-4:], 300)
			return b
		}, UnsupportedError("")},
		{"long bits per sample", func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[entryAt(2)+2:], dtLong)
			binary.LittleEndian.PutUint32(b[entryAt(2)+8:], 0x10010)
			return b
		}, UnsupportedError("")},
		{"rows per strip", func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[entryAt(6)+8:], 16)
			return b
		}, UnsupportedError("")},
	} {
		padding, err := Default.Padding()
		if err != nil {
			t.Fatal(err)
		}
		_, err = Parse(tc.mangle(padding))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		switch tc.want.(type) {
		case FormatError:
			var fe FormatError
			if !errors.As(err, &fe) {
				t.Errorf("%s: got %v, want FormatError", tc.name, err)
			}
		case UnsupportedError:
			var ue UnsupportedError
			if !errors.As(err, &ue) {
				t.Errorf("%s: got %v, want UnsupportedError", tc.name, err)
			}
		}
	}
}
