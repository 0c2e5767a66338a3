/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"github.com/pkg/errors"
)

// CheckDigit returns the GS1 mod-10 check digit for the digit string body,
// which must not include the check digit itself.
//
// Counting from the rightmost digit of the body as position 1, digits in odd
// positions are weighted by 3 and digits in even positions by 1; the check
// digit is the additive inverse of the weighted sum, mod 10. The same scheme
// covers GTIN-8/12/13/14, SSCC, GLN, and the other fixed-length GS1 keys.
func CheckDigit(body string) (int, error) {
	if !IsNumeric(body) {
		return 0, errors.Errorf("check digit body must be numeric, but is %q", body)
	}

	sum := 0
	for i := 0; i < len(body); i++ {
		d := int(body[len(body)-1-i] - '0')
		// position i+1 is odd when i is even
		sum += d * (((i+1)&1)<<1 | 1)
	}

	// mod 10 additive inverse
	return (10 - (sum % 10)) % 10, nil
}

// ValidateCheckDigit returns an error unless the final digit of s is the
// correct GS1 check digit for the digits preceding it.
func ValidateCheckDigit(s string) error {
	if len(s) < 2 {
		return errors.Errorf("%q is too short to carry a check digit", s)
	}
	expected, err := CheckDigit(s[:len(s)-1])
	if err != nil {
		return err
	}
	if !IsNumeric(s[len(s)-1:]) || int(s[len(s)-1]-'0') != expected {
		return errors.Errorf("check digit of %q should be %d, but is %q",
			s, expected, s[len(s)-1])
	}
	return nil
}
