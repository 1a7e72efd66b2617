// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tiffpad

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

type prefixDecoder struct {
	r         io.ReaderAt
	byteOrder binary.ByteOrder
	features  map[int][]uint
}

// firstVal returns the first uint of the features entry with the given tag,
// or 0 if the tag does not exist.
func (d *prefixDecoder) firstVal(tag int) uint {
	f := d.features[tag]
	if len(f) == 0 {
		return 0
	}
	return f[0]
}

// ifdUint decodes the IFD entry in p, which must be of the Byte, Short
// or Long type, and returns the decoded uint values. Values that do not
// fit inline are rejected, since a prefix carries no data area.
func (d *prefixDecoder) ifdUint(p []byte) (u []uint, err error) {
	if len(p) < ifdLen {
		return nil, FormatError("bad IFD entry")
	}

	datatype := d.byteOrder.Uint16(p[2:4])
	if dt := int(datatype); dt <= 0 || dt >= len(lengths) {
		return nil, UnsupportedError("IFD entry datatype")
	}

	count := d.byteOrder.Uint32(p[4:8])
	if count > math.MaxInt32/lengths[datatype] {
		return nil, FormatError("IFD data too large")
	}
	datalen := lengths[datatype] * count
	if datalen > 4 {
		return nil, UnsupportedError("IFD entry value outside the directory")
	}
	raw := p[8 : 8+datalen]

	u = make([]uint, count)
	switch datatype {
	case dtByte:
		for i := uint32(0); i < count; i++ {
			u[i] = uint(raw[i])
		}
	case dtShort:
		for i := uint32(0); i < count; i++ {
			u[i] = uint(d.byteOrder.Uint16(raw[2*i : 2*(i+1)]))
		}
	case dtLong:
		for i := uint32(0); i < count; i++ {
			u[i] = uint(d.byteOrder.Uint32(raw[4*i : 4*(i+1)]))
		}
	default:
		return nil, UnsupportedError("data type")
	}
	return u, nil
}

// parseIFD decides whether the IFD entry in p is "interesting" and
// stows away the data in the decoder. It returns the tag number of the
// entry and an error, if any.
func (d *prefixDecoder) parseIFD(p []byte) (int, error) {
	tag := d.byteOrder.Uint16(p[0:2])
	switch tag {
	case tImageWidth,
		tImageLength,
		tBitsPerSample,
		tCompression,
		tPhotometricInterpretation,
		tStripOffsets,
		tSamplesPerPixel,
		tRowsPerStrip,
		tStripByteCounts:
		val, err := d.ifdUint(p)
		if err != nil {
			return 0, err
		}
		if len(val) != 1 {
			return 0, UnsupportedError("multi-valued entry")
		}
		d.features[int(tag)] = val
	}
	return int(tag), nil
}

func newPrefixDecoder(r io.ReaderAt) (*prefixDecoder, error) {
	d := &prefixDecoder{
		r:        r,
		features: make(map[int][]uint),
	}

	p := make([]byte, headerLen)
	if _, err := d.r.ReadAt(p, 0); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch string(p[0:4]) {
	case leHeader:
		d.byteOrder = binary.LittleEndian
	case beHeader:
		d.byteOrder = binary.BigEndian
	default:
		return nil, FormatError("malformed header")
	}

	ifdOffset := int64(d.byteOrder.Uint32(p[4:8]))
	if ifdOffset != headerLen {
		return nil, FormatError("IFD does not follow the header")
	}

	// The first two bytes contain the number of entries (12 bytes each).
	if _, err := d.r.ReadAt(p[0:2], ifdOffset); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	numItems := int(d.byteOrder.Uint16(p[0:2]))
	if numItems != NumEntries {
		return nil, FormatError("unexpected number of IFD entries")
	}

	// All IFD entries and the next IFD offset are read in one chunk.
	p = make([]byte, ifdLen*numItems+ifdNextLen)
	if _, err := d.r.ReadAt(p, ifdOffset+ifdCountLen); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}

	prevTag := -1
	for i := 0; i < ifdLen*numItems; i += ifdLen {
		tag, err := d.parseIFD(p[i : i+ifdLen])
		if err != nil {
			return nil, err
		}
		if tag <= prevTag {
			return nil, FormatError("tags are not sorted in ascending order")
		}
		prevTag = tag
	}
	if d.byteOrder.Uint32(p[ifdLen*numItems:]) != 0 {
		return nil, UnsupportedError("multiple IFDs")
	}
	return d, nil
}

// Parse reads a prefix produced by Layout.Padding back into a Layout.
// It rejects prefixes whose strip does not start at PaddingLen or that
// describe anything other than one uncompressed BlackIsZero strip.
func Parse(prefix []byte) (Layout, error) {
	d, err := newPrefixDecoder(bytes.NewReader(prefix))
	if err != nil {
		return Layout{}, err
	}

	if d.firstVal(tCompression) != cNone {
		return Layout{}, UnsupportedError("compression value")
	}
	if d.firstVal(tPhotometricInterpretation) != pBlackIsZero {
		return Layout{}, UnsupportedError("color model")
	}
	if spp, ok := d.features[tSamplesPerPixel]; ok && spp[0] != 1 {
		return Layout{}, UnsupportedError("samples per pixel")
	}
	if d.firstVal(tStripOffsets) != PaddingLen {
		return Layout{}, FormatError("strip does not start after the IFD")
	}

	bps := d.firstVal(tBitsPerSample)
	if bps > math.MaxUint16 {
		return Layout{}, UnsupportedError("bits per sample")
	}
	l := Layout{
		Width:         uint32(d.firstVal(tImageWidth)),
		Height:        uint32(d.firstVal(tImageLength)),
		BitsPerSample: uint16(bps),
		ByteOrder:     d.byteOrder,
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	if rps := d.firstVal(tRowsPerStrip); rps != 0 && rps < uint(l.Height) {
		return Layout{}, UnsupportedError("multiple strips")
	}
	if d.firstVal(tStripByteCounts) != uint(l.StripByteCount()) {
		return Layout{}, FormatError("strip byte count does not match dimensions")
	}
	return l, nil
}
