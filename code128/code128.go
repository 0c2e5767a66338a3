/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package code128

import (
	"fmt"
)

// Code128 is an immutable, checksummed sequence of Code 128 symbols: a start
// code, the data symbols, the check symbol, and the stop code.
//
// The zero value holds no symbols; it's only useful as an empty operand to
// Join and Add, and most other methods panic on it.
type Code128 struct {
	symbols []byte
}

// newCode128 takes ownership of symbols, which must already be valid.
func newCode128(symbols []byte) Code128 {
	return Code128{symbols: symbols}
}

// IsZero returns true for the zero value.
func (c Code128) IsZero() bool {
	return len(c.symbols) == 0
}

// Len returns the number of symbols, including start, check and stop.
func (c Code128) Len() int {
	return len(c.symbols)
}

// At returns the symbol at index i.
//
// It'll panic if the index is outside the number of symbols.
func (c Code128) At(i int) byte {
	return c.symbols[i]
}

// Symbols returns a copy of all the symbols.
func (c Code128) Symbols() []byte {
	return append([]byte(nil), c.symbols...)
}

// Data returns a copy of the symbols between the start code and the check
// symbol.
func (c Code128) Data() []byte {
	if c.IsZero() {
		return nil
	}
	return append([]byte(nil), c.data()...)
}

func (c Code128) data() []byte {
	return c.symbols[1 : len(c.symbols)-2]
}

// Subtype returns the character set selected by the start code.
func (c Code128) Subtype() Subtype {
	s, _ := subtypeOf(c.symbols[0])
	return s
}

// Checksum returns the check symbol.
func (c Code128) Checksum() byte {
	return c.symbols[len(c.symbols)-2]
}

// SubtypesUsed returns the character sets the data symbols are read in, in
// order, with consecutive repeats collapsed. A barcode without data symbols
// reports only its start subtype.
func (c Code128) SubtypesUsed() []Subtype {
	if c.IsZero() {
		return nil
	}

	var used []Subtype
	c.walk(func(ev event) bool {
		if ev.kind == evLatch || ev.kind == evShift {
			return true
		}
		if len(used) == 0 || used[len(used)-1] != ev.set {
			used = append(used, ev.set)
		}
		return true
	})
	if len(used) == 0 {
		used = append(used, c.Subtype())
	}
	return used
}

// Equal returns true if both barcodes have identical symbols.
func (c Code128) Equal(other Code128) bool {
	if len(c.symbols) != len(other.symbols) {
		return false
	}
	for i := range c.symbols {
		if c.symbols[i] != other.symbols[i] {
			return false
		}
	}
	return true
}

// GoString formats the barcode as its symbol values, for %#v.
func (c Code128) GoString() string {
	return fmt.Sprintf("code128.Code128%v", c.symbols)
}

// walk replays the state machine over the data symbols, calling f for every
// event until f returns false.
func (c Code128) walk(f func(event) bool) machine {
	if c.IsZero() {
		return machine{}
	}
	m := newMachine(c.Subtype())
	for _, sym := range c.data() {
		if !f(m.step(sym)) {
			break
		}
	}
	return m
}
