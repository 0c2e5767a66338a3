/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package code128

import (
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// Subtype is one of the three Code 128 character sets.
type Subtype byte

const (
	// SubtypeA encodes ASCII control characters, digits, upper case letters
	// and punctuation (values 0-95).
	SubtypeA = Subtype('A')
	// SubtypeB encodes printable ASCII (values 32-127).
	SubtypeB = Subtype('B')
	// SubtypeC encodes pairs of decimal digits.
	SubtypeC = Subtype('C')
)

// IsValid returns true if the Subtype is A, B, or C.
func (s Subtype) IsValid() bool {
	return s == SubtypeA || s == SubtypeB || s == SubtypeC
}

func (s Subtype) String() string {
	if s.IsValid() {
		return string(rune(s))
	}
	return "Unknown subtype: " + strconv.Itoa(int(s))
}

// ParseSubtype returns the Subtype named by s, ignoring case.
func ParseSubtype(s string) (Subtype, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return SubtypeA, nil
	case "B":
		return SubtypeB, nil
	case "C":
		return SubtypeC, nil
	}
	return 0, errors.Wrapf(ErrInvalidSubtype, "%q", s)
}

// startCode returns the start symbol that selects the subtype.
func (s Subtype) startCode() byte {
	switch s {
	case SubtypeA:
		return StartA
	case SubtypeB:
		return StartB
	}
	return StartC
}

// latchCode returns the symbol that latches to the subtype from either of the
// other two subtypes.
func (s Subtype) latchCode() byte {
	switch s {
	case SubtypeA:
		return CodeA
	case SubtypeB:
		return CodeB
	}
	return CodeC
}

// fnc4Code returns the symbol that means FNC4 in the subtype; set C has none.
func (s Subtype) fnc4Code() byte {
	if s == SubtypeA {
		return CodeA
	}
	return CodeB
}

// other returns the shift partner of A or B.
func (s Subtype) other() Subtype {
	if s == SubtypeA {
		return SubtypeB
	}
	return SubtypeA
}

// subtypeOf returns the subtype selected by the start symbol.
func subtypeOf(start byte) (Subtype, bool) {
	switch start {
	case StartA:
		return SubtypeA, true
	case StartB:
		return SubtypeB, true
	case StartC:
		return SubtypeC, true
	}
	return 0, false
}
