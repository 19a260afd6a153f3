// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

import "testing"

func TestRotate_Involution(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if got := rotate(rotate(b)); got != b {
			t.Fatalf("rotate(rotate(%#02x)) = %#02x, want %#02x", b, got, b)
		}
	}
}

func TestRotate_KnownValues(t *testing.T) {
	cases := []struct {
		in, want byte
	}{
		{0x00, 0x00},
		{0xFF, 0xFF},
		{0x01, 0x80},
		{0x80, 0x01},
		{0x0F, 0xF0},
		{0xAA, 0x55},
	}
	for _, c := range cases {
		if got := rotate(c.in); got != c.want {
			t.Errorf("rotate(%#02x) = %#02x, want %#02x", c.in, got, c.want)
		}
	}
}
