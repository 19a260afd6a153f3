// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

// tupleIndex maps a 4-byte tuple (packed big-endian into a uint32) to the
// smallest input offset at which it occurs. It is built once per Pack call
// and never mutated afterward; ref_search in the reference implementation
// walks every later occurrence of a tuple starting from this first offset,
// so storing only the first occurrence is sufficient while keeping the
// index itself O(distinct tuples).
//
// This is the idiomatic Go rendering of the reference implementation's
// uthash-backed tuple_t table: an exact integer key (not a lossy hash of a
// short window) mapping to a single stored offset.
type tupleIndex map[uint32]int

// combineTuple packs four consecutive bytes big-endian into one integer,
// matching the reference implementation's COMBINE macro.
func combineTuple(a, b, c, d byte) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d)
}

// buildTupleIndex indexes every 4-byte tuple in in, including the final one
// starting at len(in)-4, recording the first offset at which each occurs.
func buildTupleIndex(idx tupleIndex, in []byte) {
	if len(in) < 4 {
		return
	}
	for i := 0; i+4 <= len(in); i++ {
		key := combineTuple(in[i], in[i+1], in[i+2], in[i+3])
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
}
