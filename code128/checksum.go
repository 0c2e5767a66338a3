/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package code128

import (
	"github.com/pkg/errors"
)

// checksumModulus is the Code 128 check symbol modulus.
const checksumModulus = 103

// minSymbols is the length of a barcode with no data symbols: start, check,
// and stop.
const minSymbols = 3

// Checksum returns the check symbol for a barcode with the given start code
// and data symbols: the start code plus each data symbol weighted by its
// 1-based position, modulo 103.
func Checksum(start byte, data []byte) byte {
	sum := int(start)
	for i, sym := range data {
		sum += int(sym) * (i + 1)
	}
	return byte(sum % checksumModulus)
}

// Validate checks that the barcode has a known start code, data symbols in
// [0, 102], the correct check symbol, and a stop code.
func (c Code128) Validate() error {
	return validate(c.symbols)
}

// IsValid returns true if Validate returns nil.
func (c Code128) IsValid() bool {
	return c.Validate() == nil
}

func validate(symbols []byte) error {
	if len(symbols) == 0 {
		return ErrEmpty
	}
	if _, ok := subtypeOf(symbols[0]); !ok {
		return errors.Wrapf(ErrUnknownStart, "symbol 0 is %d", symbols[0])
	}
	if len(symbols) < minSymbols {
		return errors.Wrapf(ErrMissingStop, "%d symbols can't hold a start, "+
			"check symbol, and stop", len(symbols))
	}
	if last := symbols[len(symbols)-1]; last != Stop {
		return errors.Wrapf(ErrMissingStop, "final symbol is %d", last)
	}

	data := symbols[1 : len(symbols)-2]
	if err := validateData(data, 1); err != nil {
		return err
	}

	check := symbols[len(symbols)-2]
	if check > MaxData {
		return errors.Wrapf(ErrInvalidSymbol, "check symbol is %d", check)
	}
	if expected := Checksum(symbols[0], data); check != expected {
		return errors.Wrapf(ErrChecksum, "check symbol is %d, but should be %d",
			check, expected)
	}
	return nil
}

// validateData checks that every data symbol is in [0, 102]; offset is the
// index of data[0] within the barcode, for error messages.
func validateData(data []byte, offset int) error {
	for i, sym := range data {
		if sym > MaxData {
			return errors.Wrapf(ErrInvalidSymbol, "symbol %d at index %d "+
				"must be in [0, %d]", sym, i+offset, MaxData)
		}
	}
	return nil
}

// Parse returns a barcode from a complete symbol sequence, including its start
// code, check symbol, and stop code. The sequence is fully validated, including
// its check symbol; it is never repaired.
func Parse(symbols []byte) (Code128, error) {
	if err := validate(symbols); err != nil {
		return Code128{}, err
	}
	return newCode128(append([]byte(nil), symbols...)), nil
}

// FromValues returns a barcode starting in subtype sub with the given data
// symbols.
//
// If the final value is Stop, the value before it is taken to be the caller's
// check symbol: it must match the computed checksum, or this returns an
// ErrChecksum error. Otherwise, the check symbol and stop code are appended.
func FromValues(sub Subtype, values []byte) (Code128, error) {
	if !sub.IsValid() {
		return Code128{}, errors.Wrapf(ErrInvalidSubtype, "%d", byte(sub))
	}
	if len(values) == 0 {
		return Code128{}, ErrEmpty
	}

	data := values
	hasCheck := values[len(values)-1] == Stop
	if hasCheck {
		if len(values) < 2 {
			return Code128{}, errors.Wrap(ErrEmpty, "only a stop code")
		}
		data = values[:len(values)-2]
	}
	if err := validateData(data, 1); err != nil {
		return Code128{}, err
	}

	start := sub.startCode()
	check := Checksum(start, data)
	if hasCheck && values[len(values)-2] != check {
		return Code128{}, errors.Wrapf(ErrChecksum, "check symbol is %d, "+
			"but should be %d", values[len(values)-2], check)
	}

	symbols := make([]byte, 0, len(data)+minSymbols)
	symbols = append(symbols, start)
	symbols = append(symbols, data...)
	symbols = append(symbols, check, Stop)
	return newCode128(symbols), nil
}
