/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package code128

type eventKind uint8

const (
	evInvalid eventKind = iota
	evChar              // value holds a decoded character, 0-255
	evDigits            // value holds a digit pair, 0-99
	evFNC1
	evFNC2
	evFNC3
	evFNC4
	evShift
	evLatch // value holds the Subtype latched to
)

// event is the interpretation of a single data symbol.
type event struct {
	kind  eventKind
	value byte
	set   Subtype // character set the symbol was read in
}

// machine tracks the character set state of a symbol stream.
//
// The encoder feeds every symbol it emits through the same machine the decoder
// uses to read them, so both always agree on how a symbol is interpreted.
type machine struct {
	// active is the set the next symbol is read in.
	active Subtype
	// restore is the set to return to after a shifted character; it differs
	// from active only immediately after a Shift.
	restore Subtype
	// highBit is the sticky extended mode toggled by a double FNC4.
	highBit bool
	// fnc4 is set after a single FNC4; the next character is extended unless
	// highBit is also set.
	fnc4 bool
}

func newMachine(start Subtype) machine {
	return machine{active: start, restore: start}
}

func (m *machine) latch(s Subtype) event {
	m.active, m.restore = s, s
	return event{kind: evLatch, value: byte(s), set: s}
}

func (m *machine) toggleFNC4() {
	if m.fnc4 {
		// two in a row
		m.highBit = !m.highBit
		m.fnc4 = false
	} else {
		m.fnc4 = true
	}
}

// extended returns whether the next character is in the upper half of the
// ISO-8859-1 range.
func (m *machine) extended() bool {
	return m.highBit != m.fnc4
}

// step interprets sym in the current state and advances the state.
func (m *machine) step(sym byte) event {
	set := m.active
	if set == SubtypeC {
		switch {
		case sym < 100:
			return event{kind: evDigits, value: sym, set: set}
		case sym == CodeB:
			return m.latch(SubtypeB)
		case sym == CodeA:
			return m.latch(SubtypeA)
		case sym == FNC1:
			return event{kind: evFNC1, set: set}
		}
		return event{kind: evInvalid, value: sym, set: set}
	}

	switch sym {
	case FNC1:
		return event{kind: evFNC1, set: set}
	case FNC2:
		return event{kind: evFNC2, set: set}
	case FNC3:
		return event{kind: evFNC3, set: set}
	case Shift:
		m.active = set.other()
		return event{kind: evShift, set: set}
	case CodeC:
		return m.latch(SubtypeC)
	case CodeB, CodeA:
		if sym == set.fnc4Code() {
			m.toggleFNC4()
			return event{kind: evFNC4, set: set}
		}
		return m.latch(set.other())
	}
	if sym > MaxData {
		return event{kind: evInvalid, value: sym, set: set}
	}

	c := charValue(set, sym)
	if m.extended() {
		c += 128
	}
	m.fnc4 = false
	m.active = m.restore
	return event{kind: evChar, value: c, set: set}
}

// charValue returns the ASCII character that sym (0-95) represents in A or B.
func charValue(set Subtype, sym byte) byte {
	if set == SubtypeA && sym >= 64 {
		return sym - 64
	}
	return sym + 32
}

// symbolValue is the inverse of charValue for a 7-bit character; ok is false
// if the set can't represent it.
func symbolValue(set Subtype, c byte) (sym byte, ok bool) {
	switch {
	case c < 32:
		return c + 64, set == SubtypeA
	case c < 96:
		return c - 32, true
	case c < 128:
		return c - 32, set == SubtypeB
	}
	return 0, false
}
