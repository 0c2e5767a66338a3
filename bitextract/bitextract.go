/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package bitextract reads fixed-width bit fields out of packed byte slices.
//
// Barcode module patterns are sequences of narrow black/white modules; packed
// MSB-first into bytes, every symbol becomes a fixed-width field, and the
// extractors in this package recover those fields without first expanding the
// pattern into individual bits.
package bitextract

import (
	"fmt"
)

const (
	ByteSize = 8

	// MaxFieldBits is the widest field an extractor can return as a uint64.
	// Fields may start at any bit offset, so a 56-bit field spans at most 8
	// bytes.
	MaxFieldBits = 56
)

// BitExtractor extracts a single field of bits from byte slices according to
// the field's bit offset into the slice and its length.
//
// BitExtractors hold no mutable state and are safe for concurrent use.
type BitExtractor struct {
	bitStart, bitLen   int
	byteStart, byteEnd int // byteEnd is inclusive
	rshift             uint
	mask               uint64
}

// New returns a new BitExtractor for the field starting at bit start and
// extending for length bits.
//
// Bit 0 is the highest-order bit of the 0'th byte of the input; later bits are
// found "rightward", in lower-order bits and then at higher byte indexes.
//
// Panics if start is negative or length isn't in [1, MaxFieldBits].
func New(start, length int) BitExtractor {
	if start < 0 || length < 1 || length > MaxFieldBits {
		panic(fmt.Sprintf("illegal start (%d) or length (%d)", start, length))
	}
	if start+length < 0 {
		panic(fmt.Sprintf("cannot handle such a large start (%d) and length (%d)",
			start, length))
	}

	end := start + length
	return BitExtractor{
		bitStart:  start,
		bitLen:    length,
		byteStart: start / ByteSize,
		byteEnd:   (end - 1) / ByteSize,
		rshift:    uint((ByteSize - end%ByteSize) % ByteSize),
		mask:      (1 << uint(length)) - 1,
	}
}

// Uint64 extracts the field from src and returns it as a big-endian value;
// the field's last bit is bit 0 of the result.
//
// Panics if src is too short to hold the field.
func (be BitExtractor) Uint64(src []byte) uint64 {
	if len(src) <= be.byteEnd {
		panic(fmt.Sprintf("cannot extract bits [%d:%d] from a source "+
			"with only %d total bytes",
			be.bitStart, be.bitStart+be.bitLen, len(src)))
	}

	var v uint64
	for _, b := range src[be.byteStart : be.byteEnd+1] {
		v = v<<ByteSize | uint64(b)
	}
	return (v >> be.rshift) & be.mask
}

// Pack packs bits MSB-first into a byte slice, so that bits[0] becomes the
// highest-order bit of the first byte. The final byte is padded with 0s.
func Pack(bits []bool) []byte {
	out := make([]byte, (len(bits)+ByteSize-1)/ByteSize)
	for i, set := range bits {
		if set {
			out[i/ByteSize] |= 0x80 >> uint(i%ByteSize)
		}
	}
	return out
}

// unpack is the inverse of Pack: it returns the first n bits of data.
//
// Panics if data holds fewer than n bits.
func unpack(data []byte, n int) []bool {
	if n < 0 || n > len(data)*ByteSize {
		panic(fmt.Sprintf("cannot unpack %d bits from %d bytes", n, len(data)))
	}
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = data[i/ByteSize]&(0x80>>uint(i%ByteSize)) != 0
	}
	return bits
}
