/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitextract

import (
	"github.com/pkg/errors"
)

// BitExploder breaks a packed bit string into a series of consecutive fields
// of predefined bit widths.
type BitExploder struct {
	bitLength  int // sum of all bit widths
	extractors []BitExtractor
}

// NewBitExploder returns a new BitExploder that explodes byte data into a series
// of consecutive fields according to the given widths.
func NewBitExploder(widths []int) (BitExploder, error) {
	exp := BitExploder{}
	if err := exp.setWidths(widths); err != nil {
		return exp, err
	}
	return exp, nil
}

func (exp *BitExploder) setWidths(widths []int) error {
	if len(widths) == 0 {
		return errors.New("widths slice is empty")
	}

	extractors := make([]BitExtractor, len(widths))
	bitLength := 0
	for i, w := range widths {
		if w <= 0 || w > MaxFieldBits {
			return errors.Errorf("widths must be in [1, %d], but width %d is %d",
				MaxFieldBits, i, w)
		}
		extractors[i] = New(bitLength, w)
		bitLength += w
	}

	exp.extractors = extractors
	exp.bitLength = bitLength
	return nil
}

// Explode returns the value of every field in data, in order.
//
// It returns an error if data has fewer bits than the sum of the widths; extra
// trailing bits are ignored.
func (exp BitExploder) Explode(data []byte) ([]uint64, error) {
	if len(data)*ByteSize < exp.bitLength {
		return nil, errors.Errorf("invalid data length %d; expected %d bits",
			len(data)*ByteSize, exp.bitLength)
	}

	fields := make([]uint64, len(exp.extractors))
	for i, be := range exp.extractors {
		fields[i] = be.Uint64(data)
	}
	return fields, nil
}

// UniformWidths returns n copies of width followed by any trailing widths; it's
// a helper for layouts made of many same-sized fields, e.g. n 11-module
// symbols and a wider terminator.
func UniformWidths(width, n int, trailing ...int) []int {
	widths := make([]int, 0, n+len(trailing))
	for i := 0; i < n; i++ {
		widths = append(widths, width)
	}
	return append(widths, trailing...)
}
