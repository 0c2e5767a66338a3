/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package code128

// Join returns a single barcode whose data symbols are those of each code, in
// order, with a new check symbol. It starts in the subtype of the first code.
//
// Wherever one code ends in a different state than the next one starts in,
// Join inserts the symbols to get there: it clears any pending FNC4 or sticky
// extended mode and latches to the next code's start subtype. As a result,
// the joined barcode decodes to the concatenation of each code's text and
// function codes.
//
// Zero values are skipped; joining nothing returns the zero value.
func Join(codes ...Code128) Code128 {
	var e *encoder
	for _, c := range codes {
		if c.IsZero() {
			continue
		}
		if e == nil {
			e = &encoder{
				machine:  c.walk(func(event) bool { return true }),
				symbols:  append([]byte(nil), c.symbols[:len(c.symbols)-2]...),
				reserved: -1,
			}
			continue
		}
		e.resetTo(c.Subtype())
		e.emit(c.data()...)
	}

	if e == nil {
		return Code128{}
	}
	return e.finish()
}

// Add returns a barcode with other's data appended to c's; see Join.
func (c Code128) Add(other Code128) Code128 {
	return Join(c, other)
}

// resetTo emits whatever symbols are needed to bring the machine to the state
// a new barcode starting in target begins with.
func (e *encoder) resetTo(target Subtype) {
	if e.fnc4 || e.highBit {
		if e.active == SubtypeC {
			e.emit(CodeA)
		}
		if e.fnc4 {
			e.emitFNC4()
		}
		if e.highBit {
			e.emitFNC4()
			e.emitFNC4()
		}
	}

	if e.active != e.restore && e.active == target {
		// dangling Shift; only a latch clears it
		e.emit(CodeC)
	}
	if e.active != target {
		e.emit(target.latchCode())
	}
}
