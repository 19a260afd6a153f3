// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

import (
	"bytes"
	"testing"
)

func TestAPIContract_UnpackAllowsTrailingBytes(t *testing.T) {
	src := bytes.Repeat([]byte("api-contract"), 64)

	packed, err := Pack(src, nil)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	payload := append(append([]byte{}, packed...), []byte("tail")...)
	out, err := Unpack(payload)
	if err != nil {
		t.Fatalf("Unpack with trailing bytes failed: %v", err)
	}

	if !bytes.Equal(out, src) {
		t.Fatal("decoded output mismatch for trailing-byte input")
	}
}

func TestAPIContract_UnpackNReportsExactConsumption(t *testing.T) {
	src := bytes.Repeat([]byte("consumed-bytes"), 20)

	packed, err := Pack(src, nil)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	payload := append(append([]byte{}, packed...), 0x01, 0x02, 0x03)
	out, n, err := UnpackN(payload)
	if err != nil {
		t.Fatalf("UnpackN failed: %v", err)
	}
	if n != len(packed) {
		t.Fatalf("consumed %d bytes, want %d", n, len(packed))
	}
	if !bytes.Equal(out, src) {
		t.Fatal("decoded output mismatch")
	}
}

func TestAPIContract_PackNilOptionsMatchesDefault(t *testing.T) {
	src := bytes.Repeat([]byte("nil-vs-default"), 30)

	withNil, err := Pack(src, nil)
	if err != nil {
		t.Fatalf("Pack(nil) failed: %v", err)
	}
	withDefault, err := Pack(src, DefaultPackOptions())
	if err != nil {
		t.Fatalf("Pack(default) failed: %v", err)
	}
	if !bytes.Equal(withNil, withDefault) {
		t.Fatal("nil options must behave identically to DefaultPackOptions")
	}
}

func TestAPIContract_CanonicalStream(t *testing.T) {
	// A short-form rle-8 command expanding to 32 zero bytes.
	packed := []byte{0x3F, 0x00, terminator}
	expected := make([]byte, 32)

	out, err := Unpack(packed)
	if err != nil {
		t.Fatalf("Unpack failed for canonical stream: %v", err)
	}
	if !bytes.Equal(out, expected) {
		t.Fatal("canonical stream decoded data mismatch")
	}
}

func TestAPIContract_EmptyInputRoundTrips(t *testing.T) {
	packed, err := Pack(nil, nil)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	out, err := Unpack(packed)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(out))
	}
}
