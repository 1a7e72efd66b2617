package tiffpad

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// ErrVerification means the base64 text did not decode back to the bytes
// it was made from.
var ErrVerification = errors.New("tiffpad: decoded bytes do not match original")

// decodeString is swapped in tests to stand in for a broken decoder.
var decodeString = base64.StdEncoding.DecodeString

// EncodeAndVerify returns the standard base64 encoding of padding after
// decoding it again and comparing it with padding. The text is returned
// even when verification fails, with an error wrapping ErrVerification.
func EncodeAndVerify(padding []byte) (string, error) {
	s := base64.StdEncoding.EncodeToString(padding)
	decoded, err := decodeString(s)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrVerification, err)
	}
	if !bytes.Equal(decoded, padding) {
		return s, ErrVerification
	}
	return s, nil
}

// Banner describes the prefix built for l.
func (l Layout) Banner() string {
	order := "little-endian"
	if l.bigEndian() {
		order = "big-endian"
	}
	return fmt.Sprintf("Generating the %d-byte TIFF header and IFD for a %dx%d uint%d, %s, single-strip image.",
		PaddingLen, l.Width, l.Height, l.BitsPerSample, order)
}

// Report builds the prefix for l and writes the banner, its length, its
// base64 text and the verification result to w. A verification failure
// is written to w and returned, but the rest of the report is still
// written first.
func Report(w io.Writer, l Layout) (string, error) {
	padding, err := l.Padding()
	if err != nil {
		return "", err
	}
	s, verr := EncodeAndVerify(padding)
	status := "Verification successful: Decoded string matches original bytes."
	if verr != nil {
		status = "Verification failed: " + verr.Error()
	}
	_, err = fmt.Fprintf(w, "%s\n\nTotal padding length: %d bytes\nBase64 encoded string:\n%s\n\nVerifying the base64 string...\n%s\n",
		l.Banner(), len(padding), s, status)
	if err != nil {
		return s, err
	}
	return s, verr
}
