// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

// copyForward reproduces length bytes at out[outpos:] by reading out[offset:],
// one byte at a time. offset+i may still land inside the region being
// written (offset+length can exceed outpos): this lets a short command
// self-extend into a long run, which is why this must not be rewritten as
// a block copy. A block copy that resolves overlap by picking a direction
// (as memmove does) produces the wrong bytes here.
func copyForward(out []byte, outpos, offset, length int) {
	for i := 0; i < length; i++ {
		out[outpos+i] = out[offset+i]
	}
}

// copyForwardRotated is copyForward with each copied byte passed through
// rotate.
func copyForwardRotated(out []byte, outpos, offset, length int) {
	for i := 0; i < length; i++ {
		out[outpos+i] = rotate(out[offset+i])
	}
}

// copyBackward reproduces length bytes at out[outpos:] by walking out[offset],
// out[offset-1], ... backward, one byte at a time. The decoder only calls it
// with offset < outpos, so the reads never reach bytes this call writes.
func copyBackward(out []byte, outpos, offset, length int) {
	for i := 0; i < length; i++ {
		out[outpos+i] = out[offset-i]
	}
}
