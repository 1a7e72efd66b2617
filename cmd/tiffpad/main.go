// tiffpad prints the base64 encoding of the header and image file
// directory of a minimal single-strip grayscale TIFF, after checking
// that the text decodes back to the same bytes.
//
// With no flags it describes a 256x256, 16-bit, little-endian image and
// the prefix is 110 bytes long. Appending the raw pixel strip to the
// decoded prefix yields a valid TIFF file.
package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/fumiama/tiffpad"
)

// version is set via -ldflags at build time.
var version = "0.1.0-dev"

var report = tiffpad.Report

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	layout := tiffpad.Default
	var bigEndian, check, showVersion bool

	flagSet := pflag.NewFlagSet("tiffpad", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Uint32Var(&layout.Width, "width", layout.Width, "image width in pixels")
	flagSet.Uint32Var(&layout.Height, "height", layout.Height, "image height in pixels")
	flagSet.Uint16Var(&layout.BitsPerSample, "bits", layout.BitsPerSample, "bits per sample (8 or 16)")
	flagSet.BoolVar(&bigEndian, "big-endian", false, "write an MM (big-endian) header and directory")
	flagSet.BoolVar(&check, "check", false, "also decode the prefix with golang.org/x/image/tiff")
	flagSet.BoolVar(&showVersion, "version", false, "print version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "tiffpad %s\n", version)
		return nil
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", flagSet.Arg(0))
	}
	if bigEndian {
		layout.ByteOrder = binary.BigEndian
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Verification failures are reported, not fatal.
	encoded, err := report(stdout, layout)
	switch {
	case errors.Is(err, tiffpad.ErrVerification):
		logger.Warn("base64 round trip failed", "error", err, "encoded_len", len(encoded))
	case err != nil:
		return err
	}

	if check {
		padding, err := layout.Padding()
		if err != nil {
			return err
		}
		if err := layout.Check(padding); err != nil {
			logger.Warn("prefix rejected by x/image/tiff", "error", err)
			return err
		}
		logger.Info("prefix accepted by x/image/tiff",
			"width", layout.Width, "height", layout.Height, "bits", layout.BitsPerSample)
	}
	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `tiffpad prints the base64-encoded header and IFD of a minimal
uncompressed grayscale TIFF with a single strip.

Usage:
  tiffpad [flags]

Flags:
%s`, flagSet.FlagUsages())
}
