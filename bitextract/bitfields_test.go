/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitextract

import (
	"encoding/hex"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"testing"
)

func TestBitExploder_Explode(t *testing.T) {
	w := expect.WrapT(t)
	//        a    b         c              d   e           f              -
	// data: 0b1_10100110_1101100110111101_10_100100011_10001110111011110_000
	data := w.ShouldHaveResult(hex.DecodeString("d36cded238eef0")).([]byte)
	vals := []uint64{1, 166, 55741, 2, 291, 73182}
	widths := []int{1, 8, 16, 2, 9, 17}

	exp := w.ShouldHaveResult(NewBitExploder(widths)).(BitExploder)
	w.ShouldHaveLength(exp.extractors, len(widths))
	w.ShouldBeEqual(exp.bitLength, 53)

	fields := w.ShouldHaveResult(exp.Explode(data)).([]uint64)
	w.ShouldBeEqual(fields, vals)

	w.As("too short").ShouldHaveError(exp.Explode(data[:6]))
}

func TestBitExploder_invalidWidths(t *testing.T) {
	w := expect.WrapT(t)

	for _, widths := range [][]int{
		nil,
		{},
		{8, 0, 40},
		{-1},
		{11, MaxFieldBits + 1},
	} {
		w.As(widths).ShouldHaveError(NewBitExploder(widths))
	}
}

func TestUniformWidths(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(UniformWidths(11, 3, 13), []int{11, 11, 11, 13})
	w.ShouldBeEqual(UniformWidths(11, 0, 13), []int{13})
	w.ShouldBeEqual(UniformWidths(4, 2), []int{4, 4})
}
