package tiffpad

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func withDecoder(t *testing.T, f func(string) ([]byte, error)) {
	old := decodeString
	decodeString = f
	t.Cleanup(func() { decodeString = old })
}

func TestEncodeAndVerifyMismatch(t *testing.T) {
	withDecoder(t, func(s string) ([]byte, error) {
		b := make([]byte, PaddingLen)
		b[0] = 'M'
		return b, nil
	})
	padding, err := Default.Padding()
	if err != nil {
		t.Fatal(err)
	}
	s, err := EncodeAndVerify(padding)
	if !errors.Is(err, ErrVerification) {
		t.Fatal(err)
	}
	if s != defaultBase64 {
		t.Fatal(s)
	}
}

func TestEncodeAndVerifyDecodeError(t *testing.T) {
	withDecoder(t, func(string) ([]byte, error) {
		return nil, errors.New("illegal base64 data at input byte 3")
	})
	padding, err := Default.Padding()
	if err != nil {
		t.Fatal(err)
	}
	_, err = EncodeAndVerify(padding)
	if !errors.Is(err, ErrVerification) {
		t.Fatal(err)
	}
	if !strings.Contains(err.Error(), "illegal base64 data") {
		t.Fatal(err)
	}
}

func TestReportVerificationFailed(t *testing.T) {
	withDecoder(t, func(string) ([]byte, error) {
		return []byte("short"), nil
	})
	var buf bytes.Buffer
	s, err := Report(&buf, Default)
	if !errors.Is(err, ErrVerification) {
		t.Fatal(err)
	}
	if s != defaultBase64 {
		t.Fatal(s)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[4] != defaultBase64 {
		t.Fatal(lines[4])
	}
	if want := "Verification failed: " + ErrVerification.Error(); lines[7] != want {
		t.Fatalf("status line %q, want %q", lines[7], want)
	}
}
