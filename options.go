// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

// PackOptions configures Pack.
type PackOptions struct {
	// Fast skips the rle-seq, rotated-backref, and reversed-backref
	// searches. The resulting stream is still valid (any decoder can read
	// it), typically just larger.
	Fast bool
}

// DefaultPackOptions returns options for full search (fast=false), the
// reference encoder's default.
func DefaultPackOptions() *PackOptions {
	return &PackOptions{Fast: false}
}
