// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

import "sync"

// packScratch holds the per-call scratch state Pack needs: the tuple index
// and the pending-raw buffer. Pooling it avoids reallocating a fresh map
// and a 1024-byte buffer on every call.
type packScratch struct {
	tuples  tupleIndex
	pending [longRunSize]byte
}

var packScratchPool = sync.Pool{
	New: func() any {
		return &packScratch{tuples: make(tupleIndex)}
	},
}

// acquirePackScratch acquires and resets a scratch struct from the pool.
func acquirePackScratch() *packScratch {
	s := packScratchPool.Get().(*packScratch)
	clear(s.tuples)
	return s
}

// releasePackScratch returns a scratch struct to the pool. It is safe to
// call on every exit path of Pack, including early bail-outs.
func releasePackScratch(s *packScratch) {
	if s == nil {
		return
	}
	packScratchPool.Put(s)
}
