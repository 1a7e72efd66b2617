// Package tiffpad builds the header and image file directory that precede
// the pixel strip of a minimal uncompressed grayscale TIFF.
//
// The prefix for Default is 110 bytes long. Appending 131072 bytes of raw
// little-endian uint16 samples (256 rows of 256 pixels) to it yields a
// complete single-strip TIFF file.
package tiffpad

import (
	"encoding/binary"
	"math"
)

// FormatError reports that a layout or prefix does not describe a valid TIFF.
type FormatError string

func (e FormatError) Error() string {
	return "tiff: invalid format: " + string(e)
}

// UnsupportedError reports that a layout or prefix uses a valid but
// unimplemented feature.
type UnsupportedError string

func (e UnsupportedError) Error() string {
	return "tiff: unsupported feature: " + string(e)
}

// Layout describes the image a prefix is built for.
type Layout struct {
	Width         uint32
	Height        uint32
	BitsPerSample uint16
	// ByteOrder of the header, the IFD and the pixel samples.
	// Nil means little-endian.
	ByteOrder binary.ByteOrder
}

// Default is the 256x256, 16-bit, little-endian grayscale layout.
var Default = Layout{
	Width:         256,
	Height:        256,
	BitsPerSample: 16,
	ByteOrder:     binary.LittleEndian,
}

func (l Layout) order() binary.ByteOrder {
	if l.ByteOrder == nil {
		return binary.LittleEndian
	}
	return l.ByteOrder
}

func (l Layout) bigEndian() bool {
	return l.order() == binary.BigEndian
}

func (l Layout) stripBytes() uint64 {
	return uint64(l.Width) * uint64(l.Height) * uint64(l.BitsPerSample/8)
}

// StripByteCount returns the size of the single pixel strip. It saturates
// at math.MaxUint32 for layouts that Validate rejects.
func (l Layout) StripByteCount() uint32 {
	n := l.stripBytes()
	if n > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}

// Validate checks that l can be encoded with 32-bit strip offsets.
func (l Layout) Validate() error {
	if l.Width == 0 || l.Height == 0 {
		return FormatError("image dimensions must not be 0")
	}
	switch l.BitsPerSample {
	case 8, 16:
	default:
		return UnsupportedError("bits per sample")
	}
	switch l.order() {
	case binary.LittleEndian, binary.BigEndian:
	default:
		return UnsupportedError("byte order")
	}
	if l.stripBytes()+PaddingLen > math.MaxUint32 {
		return FormatError("strip does not fit 32-bit offsets")
	}
	return nil
}

// Header returns the 8-byte file header: byte order mark, version 42 and
// the offset of the first IFD, which directly follows the header.
// Header does not validate l; Padding does.
func (l Layout) Header() []byte {
	b := make([]byte, headerLen)
	if l.bigEndian() {
		copy(b, beHeader)
	} else {
		copy(b, leHeader)
	}
	l.order().PutUint32(b[4:], headerLen)
	return b
}

type ifdEntry struct {
	tag      uint16
	dataType uint16
	value    uint32
}

// dimType picks SHORT for values that fit 16 bits and LONG otherwise.
// Both are allowed for the dimension and RowsPerStrip fields.
func dimType(v uint32) uint16 {
	if v > math.MaxUint16 {
		return dtLong
	}
	return dtShort
}

// entries lists the directory in ascending tag order.
func (l Layout) entries() []ifdEntry {
	return []ifdEntry{
		{tImageWidth, dimType(l.Width), l.Width},
		{tImageLength, dimType(l.Height), l.Height},
		{tBitsPerSample, dtShort, uint32(l.BitsPerSample)},
		{tCompression, dtShort, cNone},
		{tPhotometricInterpretation, dtShort, pBlackIsZero},
		{tStripOffsets, dtLong, PaddingLen},
		{tRowsPerStrip, dimType(l.Height), l.Height},
		{tStripByteCounts, dtLong, l.StripByteCount()},
	}
}

// PutEntry writes a single-valued 12-byte IFD entry into b in the given
// byte order. A SHORT value is left-justified in the value field, as
// big-endian readers expect, so only its low 16 bits are kept; any other
// type stores value as a LONG.
func PutEntry(b []byte, order binary.ByteOrder, tag, typ uint16, count, value uint32) {
	_ = b[ifdLen-1] // early bounds check
	order.PutUint16(b[0:2], tag)
	order.PutUint16(b[2:4], typ)
	order.PutUint32(b[4:8], count)
	if typ == dtShort {
		order.PutUint16(b[8:10], uint16(value))
		b[10], b[11] = 0, 0
		return
	}
	order.PutUint32(b[8:12], value)
}

// Entry returns the little-endian encoding of one IFD entry with value
// stored as a full uint32 whatever its type. For a SHORT value that fits
// 16 bits this is the same as left-justifying it.
func Entry(tag, typ uint16, count, value uint32) []byte {
	b := make([]byte, ifdLen)
	binary.LittleEndian.PutUint16(b[0:2], tag)
	binary.LittleEndian.PutUint16(b[2:4], typ)
	binary.LittleEndian.PutUint32(b[4:8], count)
	binary.LittleEndian.PutUint32(b[8:12], value)
	return b
}

// IFD returns the entry count, the entries and a zero next-IFD offset.
// It does not validate l: call Validate first, or use Padding.
func (l Layout) IFD() []byte {
	order := l.order()
	ents := l.entries()
	b := make([]byte, ifdCountLen+len(ents)*ifdLen+ifdNextLen)
	order.PutUint16(b[0:ifdCountLen], uint16(len(ents)))
	p := b[ifdCountLen:]
	for _, e := range ents {
		PutEntry(p, order, e.tag, e.dataType, 1, e.value)
		p = p[ifdLen:]
	}
	// The IFD ends with the offset of the next IFD in the file,
	// or zero if it is the last one (TIFF 6.0, page 14).
	order.PutUint32(p, 0)
	return b
}

// Padding returns the header followed by the IFD. Its length is always
// PaddingLen, which is also the value of the StripOffsets entry.
func (l Layout) Padding() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	b := make([]byte, 0, PaddingLen)
	b = append(b, l.Header()...)
	b = append(b, l.IFD()...)
	return b, nil
}
