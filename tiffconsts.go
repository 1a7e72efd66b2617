// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tiffpad

// A tiff image file contains one or more images. The metadata
// of each image is contained in an Image File Directory (IFD),
// which contains entries of 12 bytes each and is described
// on page 14-16 of TIFF 6.0. An IFD entry consists of
//
//  - a tag, which describes the signification of the entry,
//  - the data type and length of the entry,
//  - the data itself or a pointer to it if it is more than 4 bytes.
//
// The prefix written by this package only uses single-valued SHORT
// and LONG entries, so every value fits inline.

const (
	leHeader = "II\x2A\x00" // Header for little-endian files.
	beHeader = "MM\x00\x2A" // Header for big-endian files.

	headerLen   = 8  // Magic, version and first IFD offset.
	ifdLen      = 12 // Length of an IFD entry in bytes.
	ifdCountLen = 2
	ifdNextLen  = 4
)

// NumEntries is the number of directory entries in the IFD.
const NumEntries = 8

// PaddingLen is the byte length of the header plus the IFD. The pixel
// strip starts right after it.
const PaddingLen = headerLen + ifdCountLen + NumEntries*ifdLen + ifdNextLen

// Data types (p. 14-16 of TIFF 6.0).
const (
	dtByte  = 1
	dtShort = 3
	dtLong  = 4
)

// The length of one instance of each data type in bytes, indexed by
// data type. Slots 2 and 5 are ASCII and RATIONAL.
var lengths = [...]uint32{0, 1, 1, 2, 4, 8}

// Tags (see p. 28-41 of TIFF 6.0).
const (
	tImageWidth                = 256
	tImageLength               = 257
	tBitsPerSample             = 258
	tCompression               = 259
	tPhotometricInterpretation = 262

	tStripOffsets    = 273
	tSamplesPerPixel = 277
	tRowsPerStrip    = 278
	tStripByteCounts = 279
)

// Compression types (defined in various places in TIFF 6.0 and its supplements).
const (
	cNone = 1
)

// Photometric interpretation values (see p. 37 of TIFF 6.0).
const (
	pBlackIsZero = 1
)
