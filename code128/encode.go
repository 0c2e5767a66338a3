/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package code128

import (
	"fmt"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

const (
	// digit runs at least this long switch from A or B to C
	minDigitRun = 6
	// ... or this long, if they end the data
	minFinalDigitRun = 4

	// extended runs longer than this switch to sticky FNC4 mode
	maxSingleFNC4Run = 4
	// ... or at least this long, if they end the data
	minFinalStickyRun = 3
)

// Encode returns a barcode that starts in subtype sub and encodes data, which
// is interpreted as ISO-8859-1. Bytes above 127 are carried with FNC4.
//
// The encoder changes character sets as needed: it shifts for single
// characters the current set can't hold, latches for longer runs, and
// switches to set C for long runs of digits. An empty data slice results in a
// barcode with only a start code, check symbol, and stop code.
func Encode(sub Subtype, data []byte) (Code128, error) {
	if !sub.IsValid() {
		return Code128{}, errors.Wrapf(ErrInvalidSubtype, "%d", byte(sub))
	}
	e := newEncoder(sub, len(data))
	e.encode(data)
	return e.finish(), nil
}

// EncodeString converts s to ISO-8859-1 and encodes it with Encode. It returns
// an error if s contains runes outside U+0000-U+00FF.
func EncodeString(sub Subtype, s string) (Code128, error) {
	data, err := toLatin1(s)
	if err != nil {
		return Code128{}, err
	}
	return Encode(sub, data)
}

func toLatin1(s string) ([]byte, error) {
	data := make([]byte, 0, len(s))
	for i, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, errors.Wrapf(ErrUnencodable, "rune %q at byte %d", r, i)
		}
		data = append(data, b)
	}
	return data, nil
}

// EncodeGS1 returns a GS1-128 barcode for a single element string: it starts
// in set C, followed by FNC1, the AI formatted with at least two digits, and
// then the data.
//
// The AI must not be negative. Like EncodeString, the data is converted to
// ISO-8859-1; it isn't checked against the GS1 character sets, which is left
// to gs1.Element.Validate.
func EncodeGS1(ai int, data string) (Code128, error) {
	if ai < 0 {
		return Code128{}, errors.Wrapf(ErrInvalidAI, "AI must be >= 0, but is %d", ai)
	}
	element, err := toLatin1(fmt.Sprintf("%02d", ai) + data)
	if err != nil {
		return Code128{}, err
	}
	return encodeGS1Element(element), nil
}

// EncodeGS1Parts returns a GS1-128 barcode carrying each of the element
// strings, which must already include their AIs. Every part is preceded by an
// FNC1, so each one can be read back as a separate field.
func EncodeGS1Parts(parts ...string) (Code128, error) {
	if len(parts) == 0 {
		return Code128{}, errors.Wrap(ErrEmpty, "no GS1 parts")
	}

	codes := make([]Code128, len(parts))
	for i, part := range parts {
		if part == "" {
			return Code128{}, errors.Wrapf(ErrEmpty, "GS1 part %d is empty", i)
		}
		element, err := toLatin1(part)
		if err != nil {
			return Code128{}, errors.WithMessagef(err, "GS1 part %d", i)
		}
		codes[i] = encodeGS1Element(element)
	}
	return Join(codes...), nil
}

func encodeGS1Element(element []byte) Code128 {
	e := newEncoder(SubtypeC, len(element)+1)
	e.emit(FNC1)
	e.encode(element)
	return e.finish()
}

// encoder builds a symbol sequence; its machine tracks the state of everything
// emitted so far.
type encoder struct {
	machine
	symbols []byte
	// reserved is a digit held back in set C until its pair arrives, or -1.
	reserved int
}

func newEncoder(start Subtype, sizeHint int) *encoder {
	e := &encoder{
		machine:  newMachine(start),
		symbols:  make([]byte, 1, sizeHint+minSymbols+2),
		reserved: -1,
	}
	e.symbols[0] = start.startCode()
	return e
}

func (e *encoder) emit(symbols ...byte) {
	for _, sym := range symbols {
		e.step(sym)
		e.symbols = append(e.symbols, sym)
	}
}

func (e *encoder) emitFNC4() {
	e.emit(e.active.fnc4Code())
}

func (e *encoder) finish() Code128 {
	check := Checksum(e.symbols[0], e.symbols[1:])
	return newCode128(append(e.symbols, check, Stop))
}

func (e *encoder) encode(data []byte) {
	for i := 0; i < len(data); {
		if e.active == SubtypeC {
			i = e.encodeC(data, i)
		} else {
			i = e.encodeAB(data, i)
		}
	}
	e.flushReserved(data, len(data))
}

// encodeC consumes data[i] in set C and returns the index of the next byte to
// encode. Non-digits latch out of C, leaving data[i] to the caller.
func (e *encoder) encodeC(data []byte, i int) int {
	c := data[i]
	if isDigit(c) {
		d := int(c - '0')
		if e.reserved < 0 {
			e.reserved = d
		} else {
			e.emit(byte(e.reserved*10 + d))
			e.reserved = -1
		}
		return i + 1
	}

	if e.reserved >= 0 {
		e.flushReserved(data, i)
	} else {
		e.emit(pickSet(data, i).latchCode())
	}
	return i
}

// flushReserved latches out of C and emits the held digit, if there is one, in
// the set best suited to data[i:].
func (e *encoder) flushReserved(data []byte, i int) {
	if e.reserved < 0 {
		return
	}
	set := pickSet(data, i)
	e.emit(set.latchCode())
	// digits are 16-25 in both A and B
	sym, _ := symbolValue(set, byte('0'+e.reserved))
	e.reserved = -1
	e.emit(sym)
}

// encodeAB consumes data starting at i in set A or B, returning the index of
// the next byte to encode.
func (e *encoder) encodeAB(data []byte, i int) int {
	c := data[i]
	if c >= 128 {
		e.encodeExtended(data, i)
		return i + 1
	}

	if e.highBit {
		// leave sticky extended mode
		e.emitFNC4()
		e.emitFNC4()
	}

	if n := digitRun(data, i); n >= minDigitRun || (n >= minFinalDigitRun && i+n == len(data)) {
		if n%2 == 1 {
			e.encodeChar(data, i)
			i++
		}
		e.emit(CodeC)
		return i
	}

	e.encodeChar(data, i)
	return i + 1
}

// encodeChar emits the 7-bit character data[i], shifting or latching if the
// active set can't represent it.
func (e *encoder) encodeChar(data []byte, i int) {
	c := data[i]
	if sym, ok := symbolValue(e.active, c); ok {
		e.emit(sym)
		return
	}

	other := e.active.other()
	sym, _ := symbolValue(other, c)
	if i+1 < len(data) && classOf(data[i+1]) == e.active {
		e.emit(Shift, sym)
	} else {
		e.emit(other.latchCode(), sym)
	}
}

// encodeExtended emits the character data[i], which is above 127.
func (e *encoder) encodeExtended(data []byte, i int) {
	low := data[i] & 0x7F
	if _, ok := symbolValue(e.active, low); !ok {
		e.emit(e.active.other().latchCode())
	}

	if !e.highBit {
		n := extendedRun(data, i)
		if n > maxSingleFNC4Run || (n >= minFinalStickyRun && i+n == len(data)) {
			e.emitFNC4()
		}
		e.emitFNC4()
	}

	sym, _ := symbolValue(e.active, low)
	e.emit(sym)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// classOf returns the only set that can represent the 7 low bits of c, or 0
// if both A and B can.
func classOf(c byte) Subtype {
	c &= 0x7F
	switch {
	case c < 32:
		return SubtypeA
	case c >= 96:
		return SubtypeB
	}
	return 0
}

// pickSet returns the set to latch to when leaving C before data[i:]: the set
// required by the first character only one set can hold, or A if none do
// before the next digit.
func pickSet(data []byte, i int) Subtype {
	for ; i < len(data) && !isDigit(data[i]); i++ {
		if s := classOf(data[i]); s != 0 {
			return s
		}
	}
	return SubtypeA
}

// digitRun returns the number of consecutive digits starting at data[i].
func digitRun(data []byte, i int) int {
	n := 0
	for i+n < len(data) && isDigit(data[i+n]) {
		n++
	}
	return n
}

// extendedRun returns the number of consecutive bytes above 127 starting at
// data[i].
func extendedRun(data []byte, i int) int {
	n := 0
	for i+n < len(data) && data[i+n] >= 128 {
		n++
	}
	return n
}
