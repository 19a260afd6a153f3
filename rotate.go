// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

// rotate reverses the bit order of a byte: bit 0 swaps with bit 7, bit 1
// with bit 6, and so on. It is its own inverse. Used by method-5
// back-references on both encode (search) and decode.
func rotate(b byte) byte {
	var r byte
	if b&0x01 != 0 {
		r |= 0x80
	}
	if b&0x02 != 0 {
		r |= 0x40
	}
	if b&0x04 != 0 {
		r |= 0x20
	}
	if b&0x08 != 0 {
		r |= 0x10
	}
	if b&0x10 != 0 {
		r |= 0x08
	}
	if b&0x20 != 0 {
		r |= 0x04
	}
	if b&0x40 != 0 {
		r |= 0x02
	}
	if b&0x80 != 0 {
		r |= 0x01
	}
	return r
}
