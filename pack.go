// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

// Pack compresses unpacked, which must be at most 65536 bytes, into the
// command format described by package halpack's doc comment. opts may be
// nil (full search). Returns ErrInputTooLarge if unpacked is too big, or
// ErrOutputExhausted if the compressed stream would exceed 65536 bytes.
func Pack(unpacked []byte, opts *PackOptions) ([]byte, error) {
	if len(unpacked) > dataSize {
		return nil, ErrInputTooLarge
	}
	if opts == nil {
		opts = DefaultPackOptions()
	}

	scratch := acquirePackScratch()
	defer releasePackScratch(scratch)
	buildTupleIndex(scratch.tuples, unpacked)

	out := make([]byte, 0, len(unpacked))
	pendingSize := 0
	pending := scratch.pending[:]

	flush := func() {
		out = writeRaw(out, pending[:pendingSize])
		pendingSize = 0
	}

	inpos := 0
	for inpos < len(unpacked) {
		rle := checkRLE(unpacked, inpos, opts.Fast)

		var backref backrefCandidate
		if rle.size < longRunSize && inpos < len(unpacked)-3 {
			backref = searchBackref(unpacked, inpos, scratch.tuples, opts.Fast)
		}

		switch {
		case backref.size > 3 && backref.size > rle.size:
			flush()
			out = writeBackref(out, backref)
			inpos += backref.size

		case rle.size > 2:
			flush()
			out = writeRLE(out, rle)
			inpos += rle.size

		default:
			pending[pendingSize] = unpacked[inpos]
			pendingSize++
			inpos++

			if pendingSize == longRunSize {
				flush()
			}
		}

		if len(out)+pendingSize > dataSize-1 {
			return nil, ErrOutputExhausted
		}
	}

	flush()
	if len(out) >= dataSize {
		return nil, ErrOutputExhausted
	}
	out = append(out, terminator)

	return out, nil
}
