// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

/*
Package halpack implements the "HAL compression" codec used by exhal/inhal
and CoilSnake to pack and unpack graphics and other binary blobs of up to
65536 bytes.

The packed stream is a sequence of short commands selected from seven
method values: raw runs, three flavors of run-length encoding, and three
flavors of back-reference (forward, bit-rotated, and backward), terminated
by a single 0xFF byte. The decoder is a small command interpreter; the
encoder is a greedy longest-match selector backed by a tuple index.

# Unpack

	out, err := halpack.Unpack(packed)

To know how many bytes of the packed stream were consumed (e.g. when
several streams are concatenated, as inside a containing ROM image):

	out, nRead, err := halpack.UnpackN(packed)
	// advance: packed = packed[nRead:]

From an io.Reader:

	out, err := halpack.UnpackFromReader(r)

# Pack

Options may be nil (defaults to full search, fast=false):

	out, err := halpack.Pack(data, nil)
	out, err := halpack.Pack(data, &halpack.PackOptions{Fast: true})
*/
package halpack
