// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

// Wire format constants: buffer size ceiling, command length bounds, and
// header-byte bit layout.

// dataSize is the maximum size of either an unpacked or a packed buffer.
const dataSize = 65536

// runSize is the largest length a short-form command header can carry.
// Lengths above this value require the long form.
const runSize = 32

// longRunSize is the largest length a long-form command header can carry,
// and the capacity of the encoder's pending-raw buffer.
const longRunSize = 1024

// terminator ends a packed stream when encountered in command-header position.
const terminator = 0xFF

// longFormMask/longFormMarker identify the long-form header: the top 3 bits
// of byte 0 are all set.
const (
	longFormMask   = 0xE0
	longFormMarker = 0xE0
)

// rleMethod distinguishes the three RLE candidate families. Each value is its
// wire method number minus 1 (rle8 is wire method 1); writeRLE adds that
// offset when shifting the value into the header.
type rleMethod int

const (
	rle8 rleMethod = iota
	rle16
	rleSeq
)

// lzMethod distinguishes the three back-reference candidate families. Each
// value is its wire method number minus 4 (lzNorm is wire method 4);
// writeBackref adds that offset when shifting the value into the header.
type lzMethod int

const (
	lzNorm lzMethod = iota
	lzRot
	lzRev
)

// Wire command numbers, as they appear in the method field of a decoded
// command header.
const (
	wireRaw        = 0
	wireRLE8       = 1
	wireRLE16      = 2
	wireRLESeq     = 3
	wireBackref    = 4
	wireBackrefRot = 5
	wireBackrefRev = 6
	// wireBackrefAlt (method 7) is not a real method number; the decoder
	// treats it as an alias of wireBackref to stay bit-compatible with
	// streams produced by implementations that exercise the quirk.
	wireBackrefAlt = 7
)
