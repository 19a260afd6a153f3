// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

// writeRaw appends a raw-data command for data to out. data must be at most
// longRunSize bytes; an empty data appends nothing.
func writeRaw(out []byte, data []byte) []byte {
	if len(data) == 0 {
		return out
	}
	size := len(data) - 1
	if size >= runSize {
		out = append(out, byte(longFormMarker+(size>>8)), byte(size))
	} else {
		out = append(out, byte(size))
	}
	return append(out, data...)
}

// writeRLE appends a run-length-encoded command for c to out.
func writeRLE(out []byte, c rleCandidate) []byte {
	size := c.size - 1
	if c.method == rle16 {
		size = c.size/2 - 1
	}

	if size >= runSize {
		out = append(out, byte(0xE4+(int(c.method)<<2)+(size>>8)), byte(size))
	} else {
		out = append(out, byte(0x20+(int(c.method)<<5)+size))
	}

	out = append(out, byte(c.data))
	if c.method == rle16 {
		out = append(out, byte(c.data>>8))
	}
	return out
}

// writeBackref appends a back-reference command for c to out. The offset is
// written big-endian.
func writeBackref(out []byte, c backrefCandidate) []byte {
	size := c.size - 1

	if size >= runSize {
		out = append(out, byte(0xF0+(int(c.method)<<2)+(size>>8)), byte(size))
	} else {
		out = append(out, byte(0x80+(int(c.method)<<5)+size))
	}

	return append(out, byte(c.offset>>8), byte(c.offset))
}
