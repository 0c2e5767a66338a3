/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitextract

import (
	"encoding/hex"
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"math/big"
	"math/rand"
	"testing"
)

func TestBitExtractor(t *testing.T) {
	w := expect.WrapT(t)

	be := New(0, 8)
	w.ShouldBeEqual(be.byteStart, 0)
	w.ShouldBeEqual(be.byteEnd, 0)
	w.ShouldBeEqual(be.rshift, uint(0))
	w.ShouldBeEqual(be.mask, uint64(0xFF))

	be = New(0, 2)
	w.ShouldBeEqual(be.byteEnd, 0)
	w.ShouldBeEqual(be.rshift, uint(6))
	w.ShouldBeEqual(be.mask, uint64(0x03))

	be = New(3, 10)
	w.ShouldBeEqual(be.byteStart, 0)
	w.ShouldBeEqual(be.byteEnd, 1)
	w.ShouldBeEqual(be.rshift, uint(3))

	be = New(11, 13)
	w.ShouldBeEqual(be.byteStart, 1)
	w.ShouldBeEqual(be.byteEnd, 2)
	w.ShouldBeEqual(be.rshift, uint(0))
	w.ShouldBeEqual(be.bitStart, 11)
	w.ShouldBeEqual(be.bitLen, 13)
}

func TestBitExtractor_panic(t *testing.T) {
	assertPanics := func(f func()) {
		defer func() {
			recover()
		}()
		f()
		t.Fatal("expected function to panic, but it didn't")
	}

	assertPanics(func() { New(-1, 0) })
	assertPanics(func() { New(1, 0) })
	assertPanics(func() { New(1, -1) })
	assertPanics(func() { New(-1, 1) })
	assertPanics(func() { New(0, MaxFieldBits+1) })
	assertPanics(func() { New(1<<63-1, 8) })

	be := New(5, 9)
	data, _ := hex.DecodeString("FCDF")
	assertPanics(func() { be.Uint64(data[1:]) })
	assertPanics(func() { be.Uint64(data[2:]) })
	assertPanics(func() { unpack(data, 17) })
}

func TestBitExtractor_Uint64(t *testing.T) {
	w := expect.WrapT(t)

	data, _ := hex.DecodeString("00FF")
	w.ShouldBeEqual(New(0, 12).Uint64(data), uint64(0x0F))
	w.ShouldBeEqual(New(2, 12).Uint64(data), uint64(0x3F))
	w.ShouldBeEqual(New(5, 9).Uint64(data), uint64(0x3F))
	w.ShouldBeEqual(New(0, 16).Uint64(data), uint64(0xFF))

	data, _ = hex.DecodeString("FCDF")
	w.ShouldBeEqual(New(5, 9).Uint64(data), uint64(0x137))
	w.ShouldBeEqual(New(5, 2).Uint64(data), uint64(0x02))
	w.ShouldBeEqual(New(5, 1).Uint64(data), uint64(0x01))
	w.ShouldBeEqual(New(11, 2).Uint64(data), uint64(0x03))
}

// extractUsingBitString is a slow but obviously correct alternative to the
// extractor: it formats the data as one large bit string, slices it, and parses
// the result.
func extractUsingBitString(src []byte, start, length int) uint64 {
	bi := new(big.Int).SetBytes(src)
	bitStr := fmt.Sprintf("%0[1]*b", len(src)*8, bi)
	if _, ok := bi.SetString(bitStr[start:start+length], 2); !ok {
		panic("unable to convert from binary to decimal")
	}
	return bi.Uint64()
}

func TestBitExtractor_CompareToString(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()
	buff := make([]byte, 50)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		rng.Read(buff)
		start := rng.Intn((len(buff) - 8) * 8)
		length := rng.Intn(MaxFieldBits) + 1

		fromExtractor := New(start, length).Uint64(buff)
		fromBitString := extractUsingBitString(buff, start, length)

		w.As(fmt.Sprintf("start %d, length %d", start, length)).
			ShouldBeEqual(fromExtractor, fromBitString)
	}
}

func TestPack(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(Pack(nil), []byte{})
	w.ShouldBeEqual(Pack([]bool{true}), []byte{0x80})
	w.ShouldBeEqual(Pack([]bool{true, true, false, true, false, false, true, false, true}),
		[]byte{0xD2, 0x80})

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		bits := make([]bool, rng.Intn(200))
		for j := range bits {
			bits[j] = rng.Intn(2) == 1
		}
		packed := Pack(bits)
		w.ShouldHaveLength(packed, (len(bits)+7)/8)
		w.StopOnMismatch().ShouldBeEqual(unpack(packed, len(bits)), bits)
	}
}

func BenchmarkBitExtractor_Uint64(b *testing.B) {
	buff, _ := hex.DecodeString("85FBE72B6064289004A531FF67898DF5319EE02992FD")
	be := New(13, 11)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if be.Uint64(buff) > 1<<11 {
			b.Errorf("an 11 bit field can't exceed 2^11")
		}
	}
}
