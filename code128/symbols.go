/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package code128

// Symbol values with a fixed meaning, regardless of the active character set.
// CodeA and CodeB double as FNC4 in sets A and B, respectively.
const (
	FNC3   = byte(96)
	FNC2   = byte(97)
	Shift  = byte(98)
	CodeC  = byte(99)
	CodeB  = byte(100)
	CodeA  = byte(101)
	FNC1   = byte(102)
	StartA = byte(103)
	StartB = byte(104)
	StartC = byte(105)
	Stop   = byte(106)

	// MaxData is the largest symbol value allowed between the start code and
	// the check symbol.
	MaxData = FNC1
)

const (
	// SymbolModules is the number of modules in every symbol but Stop.
	SymbolModules = 11
	// StopModules is the number of modules in the stop pattern, which
	// includes the final termination bar.
	StopModules = 13
)

// patterns holds the module pattern of every symbol, MSB first: a 1 bit is a
// black module and a 0 bit is a white one. All symbols are 11 modules wide
// except Stop, which is 13.
var patterns = [Stop + 1]uint16{
	0b11011001100, 0b11001101100, 0b11001100110, 0b10010011000, 0b10010001100, 0b10001001100,
	0b10011001000, 0b10011000100, 0b10001100100, 0b11001001000, 0b11001000100, 0b11000100100,
	0b10110011100, 0b10011011100, 0b10011001110, 0b10111001100, 0b10011101100, 0b10011100110,
	0b11001110010, 0b11001011100, 0b11001001110, 0b11011100100, 0b11001110100, 0b11101101110,
	0b11101001100, 0b11100101100, 0b11100100110, 0b11101100100, 0b11100110100, 0b11100110010,
	0b11011011000, 0b11011000110, 0b11000110110, 0b10100011000, 0b10001011000, 0b10001000110,
	0b10110001000, 0b10001101000, 0b10001100010, 0b11010001000, 0b11000101000, 0b11000100010,
	0b10110111000, 0b10110001110, 0b10001101110, 0b10111011000, 0b10111000110, 0b10001110110,
	0b11101110110, 0b11010001110, 0b11000101110, 0b11011101000, 0b11011100010, 0b11011101110,
	0b11101011000, 0b11101000110, 0b11100010110, 0b11101101000, 0b11101100010, 0b11100011010,
	0b11101111010, 0b11001000010, 0b11110001010, 0b10100110000, 0b10100001100, 0b10010110000,
	0b10010000110, 0b10000101100, 0b10000100110, 0b10110010000, 0b10110000100, 0b10011010000,
	0b10011000010, 0b10000110100, 0b10000110010, 0b11000010010, 0b11001010000, 0b11110111010,
	0b11000010100, 0b10001111010, 0b10100111100, 0b10010111100, 0b10010011110, 0b10111100100,
	0b10011110100, 0b10011110010, 0b11110100100, 0b11110010100, 0b11110010010, 0b11011011110,
	0b11011110110, 0b11110110110, 0b10101111000, 0b10100011110, 0b10001011110, 0b10111101000,
	0b10111100010, 0b11110101000, 0b11110100010, 0b10111011110, 0b10111101110, 0b11101011110,
	0b11110101110, 0b11010000100, 0b11010010000, 0b11010011100, 0b1100011101011,
}

// symbolsByPattern is the reverse lookup of patterns.
var symbolsByPattern = func() map[uint16]byte {
	m := make(map[uint16]byte, len(patterns))
	for sym, p := range patterns {
		m[p] = byte(sym)
	}
	return m
}()

// Pattern returns the module pattern of the symbol and its width in modules.
// Bit width-1 of the pattern is the first (leftmost) module.
//
// Panics if sym isn't a symbol.
func Pattern(sym byte) (pattern uint16, width int) {
	if sym == Stop {
		return patterns[sym], StopModules
	}
	return patterns[sym], SymbolModules
}

// lookupPattern returns the symbol with the given module pattern.
func lookupPattern(pattern uint16, width int) (byte, bool) {
	sym, ok := symbolsByPattern[pattern]
	if !ok {
		return 0, false
	}
	if (sym == Stop) != (width == StopModules) {
		return 0, false
	}
	return sym, true
}

// appendModules appends the symbol's modules to dst; true is black.
func appendModules(dst []bool, sym byte) []bool {
	p, width := Pattern(sym)
	for i := width - 1; i >= 0; i-- {
		dst = append(dst, p&(1<<uint(i)) != 0)
	}
	return dst
}
