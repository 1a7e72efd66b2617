package tiffpad

import (
	"bytes"
	"fmt"
	"image/color"

	"golang.org/x/image/tiff"
)

// Image returns a complete TIFF file: the prefix for l followed by pix,
// the raw samples in row-major order and in l's byte order.
func (l Layout) Image(pix []byte) ([]byte, error) {
	padding, err := l.Padding()
	if err != nil {
		return nil, err
	}
	if uint64(len(pix)) != uint64(l.StripByteCount()) {
		return nil, FormatError(fmt.Sprintf("pixel data is %d bytes, want %d", len(pix), l.StripByteCount()))
	}
	return append(padding, pix...), nil
}

// Check decodes the header and IFD in prefix with golang.org/x/image/tiff
// and compares what the reader saw with l. DecodeConfig does not read
// the strip, so none is appended.
func (l Layout) Check(prefix []byte) error {
	if err := l.Validate(); err != nil {
		return err
	}
	cfg, err := tiff.DecodeConfig(bytes.NewReader(prefix))
	if err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if cfg.Width != int(l.Width) || cfg.Height != int(l.Height) {
		return fmt.Errorf("decoded size %dx%d, want %dx%d", cfg.Width, cfg.Height, l.Width, l.Height)
	}
	want := color.Model(color.GrayModel)
	if l.BitsPerSample == 16 {
		want = color.Gray16Model
	}
	if cfg.ColorModel != want {
		return fmt.Errorf("decoded color model does not match %d-bit gray", l.BitsPerSample)
	}
	return nil
}
