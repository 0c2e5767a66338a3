/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

var (
	// valid characters for GS1 Application Identifier data (character set 82)
	aiCharSet = [128]bool{
		'!': true, '"': true, '%': true, '&': true, '\'': true, '(': true, ')': true,
		'*': true, '+': true, ',': true, '-': true, '.': true, '/': true,
		':': true, ';': true, '<': true, '=': true, '>': true, '?': true, '_': true,
		'0': true, '1': true, '2': true, '3': true, '4': true, '5': true, '6': true, '7': true, '8': true, '9': true,
		'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true, 'H': true, 'I': true,
		'J': true, 'K': true, 'L': true, 'M': true, 'N': true, 'O': true, 'P': true, 'Q': true, 'R': true,
		'S': true, 'T': true, 'U': true, 'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
		'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true, 'h': true, 'i': true,
		'j': true, 'k': true, 'l': true, 'm': true, 'n': true, 'o': true, 'p': true, 'q': true, 'r': true,
		's': true, 't': true, 'u': true, 'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
	}

	// valid characters for the Component and Parts AIs (character set 39)
	compPartCharSet = [128]bool{
		'#': true, '-': true, '/': true,
		'0': true, '1': true, '2': true, '3': true, '4': true, '5': true, '6': true, '7': true, '8': true, '9': true,
		'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true, 'H': true, 'I': true,
		'J': true, 'K': true, 'L': true, 'M': true, 'N': true, 'O': true, 'P': true, 'Q': true, 'R': true,
		'S': true, 'T': true, 'U': true, 'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	}
)

// IsAIEncodable returns true if the string contains only characters allowed
// in the GS1 Application Identifier character set 82.
func IsAIEncodable(s string) bool {
	return inCharSet(s, &aiCharSet)
}

// IsCompPartEncodable returns true if the string contains only characters
// allowed in the character set 39 used by the Component and Parts AIs.
func IsCompPartEncodable(s string) bool {
	return inCharSet(s, &compPartCharSet)
}

// IsNumeric returns true if s is non-empty and consists only of digits 0-9.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func inCharSet(s string, set *[128]bool) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 || !set[s[i]] {
			return false
		}
	}
	return true
}
