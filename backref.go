// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

// backrefCandidate is a candidate back-reference: size bytes reproduced by
// copying from offset (start-of-source for lzNorm/lzRot; end-of-source,
// walked backward, for lzRev).
type backrefCandidate struct {
	size   int
	offset int
	method lzMethod
}

// searchBackref finds the best back-reference for the bytes at in[pos:],
// trying lzNorm, then (unless fast) lzRot and lzRev, in that order. Later
// checks only replace the candidate on a strictly larger size, so ties
// favor the first-considered method. idx indexes 4-byte tuples of in by
// their first occurrence.
func searchBackref(in []byte, pos int, idx tupleIndex, fast bool) backrefCandidate {
	var best backrefCandidate
	remain := len(in) - pos

	matchLen := func(q int) int {
		size := 0
		for size < longRunSize && size < remain && in[q+size] == in[pos+size] {
			size++
		}
		return size
	}

	// lzNorm: forward matches, searched by the tuple's own byte order.
	key := combineTuple(in[pos], in[pos+1], in[pos+2], in[pos+3])
	if first, ok := idx[key]; ok {
		for q := first; q < pos; q++ {
			size := matchLen(q)
			if size > 3 && size > best.size {
				best = backrefCandidate{size: size, offset: q, method: lzNorm}
			}
		}
	}

	if fast {
		return best
	}

	// lzRot: forward matches against the rotated bytes.
	key = combineTuple(rotate(in[pos]), rotate(in[pos+1]), rotate(in[pos+2]), rotate(in[pos+3]))
	if first, ok := idx[key]; ok {
		for q := first; q < pos; q++ {
			size := 0
			for size < longRunSize && size < remain && in[q+size] == rotate(in[pos+size]) {
				size++
			}
			if size > 3 && size > best.size {
				best = backrefCandidate{size: size, offset: q, method: lzRot}
			}
		}
	}

	// lzRev: matches read backward from the end of a reversed-order tuple.
	// q runs over end-of-source positions (a tuple start plus 3), and q is
	// the stored offset, which is what the decoder walks backward from.
	key = combineTuple(in[pos+3], in[pos+2], in[pos+1], in[pos])
	if first, ok := idx[key]; ok {
		for q := first + 3; q < pos; q++ {
			size := 0
			for size < longRunSize && size < remain && q-size >= 0 && in[q-size] == in[pos+size] {
				size++
			}
			if size > 3 && size > best.size {
				best = backrefCandidate{size: size, offset: q, method: lzRev}
			}
		}
	}

	return best
}
