// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

import "errors"

// Sentinel errors for packing and unpacking. None of these ever accompany
// partial output: a failing call always returns a nil/empty result.
var (
	// ErrInputTooLarge is returned by Pack when the unpacked input exceeds
	// the 65536-byte buffer ceiling.
	ErrInputTooLarge = errors.New("halpack: input exceeds 65536 bytes")
	// ErrOutputExhausted is returned by Pack when emitting the next command
	// would push the packed stream past the 65536-byte buffer ceiling.
	ErrOutputExhausted = errors.New("halpack: packed output exceeds 65536 bytes")
	// ErrOutputOverrun is returned by Unpack when a command would write
	// past the 65536-byte output boundary.
	ErrOutputOverrun = errors.New("halpack: command would overrun 65536-byte output")
	// ErrOffsetOutOfRange is returned by Unpack when a back-reference
	// offset lies outside the bytes written so far, or a backward
	// back-reference would read before output position 0.
	ErrOffsetOutOfRange = errors.New("halpack: back-reference offset out of range")
	// ErrEmptyInput is returned when the packed stream has no bytes to read.
	ErrEmptyInput = errors.New("halpack: empty input")
	// ErrUnexpectedEOF is returned by Unpack when the packed stream ends
	// before a command header, payload, or offset field is complete.
	ErrUnexpectedEOF = errors.New("halpack: unexpected end of packed input")
)
