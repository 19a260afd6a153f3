// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

import "io"

// Unpack decodes packed until it reaches the 0xFF terminator and returns the
// decoded bytes. Fails if any command would write past the 65536-byte
// output boundary, read past the end of packed, or reference an
// out-of-range offset.
func Unpack(packed []byte) ([]byte, error) {
	out, _, err := unpackCore(packed)
	return out, err
}

// UnpackN is Unpack, plus the number of bytes of packed consumed (the
// position just past the terminator). Useful when several streams are
// concatenated back-to-back, e.g. inside a containing ROM image.
func UnpackN(packed []byte) ([]byte, int, error) {
	return unpackCore(packed)
}

// UnpackFromReader reads all of r, then calls Unpack. It has no decoding
// logic of its own.
func UnpackFromReader(r io.Reader) ([]byte, error) {
	packed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Unpack(packed)
}

// unpackCore runs the command-dispatch loop described in package halpack's
// doc comment. It returns (decoded bytes, input bytes consumed, nil) on
// success, or (nil, 0, err) on any bounds violation — decode never returns
// partial output.
func unpackCore(packed []byte) ([]byte, int, error) {
	if len(packed) == 0 {
		return nil, 0, ErrEmptyInput
	}

	out := make([]byte, dataSize)
	inpos := 0
	outpos := 0

	for {
		if inpos >= len(packed) {
			return nil, 0, ErrUnexpectedEOF
		}
		h := packed[inpos]
		inpos++

		if h == terminator {
			break
		}

		var command, length int
		if h&longFormMask == longFormMarker {
			if inpos >= len(packed) {
				return nil, 0, ErrUnexpectedEOF
			}
			command = int(h>>2) & 7
			length = (int(h&3)<<8 | int(packed[inpos])) + 1
			inpos++
		} else {
			command = int(h >> 5)
			length = int(h&0x1F) + 1
		}

		writeLen := length
		if command == wireRLE16 {
			writeLen = 2 * length
		}
		if outpos+writeLen > dataSize {
			return nil, 0, ErrOutputOverrun
		}

		switch command {
		case wireRaw:
			if inpos+length > len(packed) {
				return nil, 0, ErrUnexpectedEOF
			}
			copy(out[outpos:outpos+length], packed[inpos:inpos+length])
			outpos += length
			inpos += length

		case wireRLE8:
			if inpos >= len(packed) {
				return nil, 0, ErrUnexpectedEOF
			}
			data := packed[inpos]
			for i := 0; i < length; i++ {
				out[outpos] = data
				outpos++
			}
			inpos++

		case wireRLE16:
			if inpos+1 >= len(packed) {
				return nil, 0, ErrUnexpectedEOF
			}
			d0, d1 := packed[inpos], packed[inpos+1]
			for i := 0; i < length; i++ {
				out[outpos] = d0
				out[outpos+1] = d1
				outpos += 2
			}
			inpos += 2

		case wireRLESeq:
			if inpos >= len(packed) {
				return nil, 0, ErrUnexpectedEOF
			}
			data := packed[inpos]
			for i := 0; i < length; i++ {
				out[outpos] = data + byte(i)
				outpos++
			}
			inpos++

		case wireBackref, wireBackrefAlt:
			offset, err := readOffset(packed, &inpos)
			if err != nil {
				return nil, 0, err
			}
			// offset must reference an already-written byte; offset+length
			// may exceed outpos (a forward back-reference is allowed to
			// self-extend, reading bytes this very command is writing).
			if offset < 0 || offset >= outpos {
				return nil, 0, ErrOffsetOutOfRange
			}
			copyForward(out, outpos, offset, length)
			outpos += length

		case wireBackrefRot:
			offset, err := readOffset(packed, &inpos)
			if err != nil {
				return nil, 0, err
			}
			if offset < 0 || offset >= outpos {
				return nil, 0, ErrOffsetOutOfRange
			}
			copyForwardRotated(out, outpos, offset, length)
			outpos += length

		case wireBackrefRev:
			offset, err := readOffset(packed, &inpos)
			if err != nil {
				return nil, 0, err
			}
			if offset < 0 || offset >= outpos || offset-(length-1) < 0 {
				return nil, 0, ErrOffsetOutOfRange
			}
			copyBackward(out, outpos, offset, length)
			outpos += length
		}
	}

	return out[:outpos], inpos, nil
}

// readOffset reads a big-endian 16-bit offset from packed at *inpos and
// advances *inpos by 2.
func readOffset(packed []byte, inpos *int) (int, error) {
	if *inpos+1 >= len(packed) {
		return 0, ErrUnexpectedEOF
	}
	offset := int(packed[*inpos])<<8 | int(packed[*inpos+1])
	*inpos += 2
	return offset, nil
}
