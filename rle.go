// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

// rleCandidate is a candidate run-length encoding of the bytes at some
// input position: size bytes reproduced from a short data template.
type rleCandidate struct {
	size   int
	data   uint16
	method rleMethod
}

// checkRLE finds the best run-length encoding of in[pos:], trying rle8,
// rle16, and (unless fast) rleSeq in that order. Later checks only replace
// the candidate on a strictly larger size, so ties favor the
// first-considered method.
func checkRLE(in []byte, pos int, fast bool) rleCandidate {
	var best rleCandidate
	remain := len(in) - pos

	// rle8: in[pos+i] == in[pos] for all i < size.
	size := 0
	for size < longRunSize && size < remain && in[pos+size] == in[pos] {
		size++
	}
	if size > 2 && size > best.size {
		best = rleCandidate{size: size, data: uint16(in[pos]), method: rle8}
	}

	// rle16: in[pos+i] == in[pos + i%2] for all i < size, size even.
	if remain >= 2 {
		first := uint16(in[pos]) | uint16(in[pos+1])<<8
		size = 0
		for size < longRunSize && size+1 < remain {
			next := uint16(in[pos+size]) | uint16(in[pos+size+1])<<8
			if next != first {
				break
			}
			size += 2
		}
		if size > 2 && size > best.size {
			best = rleCandidate{size: size, data: first, method: rle16}
		}
	}

	if fast {
		return best
	}

	// rleSeq: in[pos+i] == (in[pos]+i) mod 256 for all i < size.
	size = 0
	for size < longRunSize && size < remain && in[pos+size] == byte(int(in[pos])+size) {
		size++
	}
	if size > 2 && size > best.size {
		best = rleCandidate{size: size, data: uint16(in[pos]), method: rleSeq}
	}

	return best
}
