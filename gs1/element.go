/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"github.com/pkg/errors"
	"strings"
)

// maxDataLength is the longest data field any AI permits.
const maxDataLength = 90

// Element is a single GS1 element string: an Application Identifier and the
// data it qualifies.
type Element struct {
	AI   string
	Data string
}

// String returns the human readable interpretation of the element, with the
// AI in parentheses, e.g. "(421)84020500".
func (e Element) String() string {
	return "(" + e.AI + ")" + e.Data
}

// ElementString returns the element as it's carried in a barcode: the AI
// digits immediately followed by the data.
func (e Element) ElementString() string {
	return e.AI + e.Data
}

// Title returns the GS1 data title of the element's AI, if known.
func (e Element) Title() string {
	return Title(e.AI)
}

// Validate checks the element's AI is in the catalog and that its data is
// well-formed for that AI: data is drawn from character set 82 and fits in 90
// characters; predefined-length data is numeric and has exactly that length;
// and keys that end with a check digit carry the correct one.
//
// It does not validate the semantics of the data, such as whether a date is
// a real calendar date.
func (e Element) Validate() error {
	n, err := AILength(e.AI)
	if err != nil {
		return err
	}
	if n != len(e.AI) {
		return errors.Wrapf(ErrUnknownAI, "AIs starting with %q have %d digits, "+
			"but %q has %d", e.AI[:2], n, e.AI, len(e.AI))
	}

	if e.Data == "" {
		return errors.Errorf("AI %s has no data", e.AI)
	}
	if len(e.Data) > maxDataLength {
		return errors.Errorf("AI data is limited to %d characters, "+
			"but AI %s has %d", maxDataLength, e.AI, len(e.Data))
	}
	if !IsAIEncodable(e.Data) {
		return errors.Errorf("AI %s data %q has characters outside the "+
			"GS1 AI encodable character set 82", e.AI, e.Data)
	}

	if fixed := FixedDataLength(e.AI); fixed != 0 {
		if len(e.Data) != fixed || !IsNumeric(e.Data) {
			return errors.Errorf("AI %s requires exactly %d digits, "+
				"but its data is %q", e.AI, fixed, e.Data)
		}
	}
	if checkDigitPrefixes[e.AI[:2]] {
		if err := ValidateCheckDigit(e.Data); err != nil {
			return errors.Wrapf(err, "AI %s", e.AI)
		}
	}
	return nil
}

// Split separates an element string into its AI and data using the AI length
// catalog.
func Split(element string) (Element, error) {
	n, err := AILength(element)
	if err != nil {
		return Element{}, err
	}
	return Element{AI: element[:n], Data: element[n:]}, nil
}

// ParseHRI parses a human readable interpretation, such as
// "(01)09501101020917(21)ABC", into its elements.
//
// The string must start with '('; AIs must be numeric; data runs until the
// next '(' or the end of the string. Since '(' is itself in character set 82,
// data containing it cannot be expressed in this form.
func ParseHRI(s string) ([]Element, error) {
	if !strings.HasPrefix(s, "(") {
		return nil, errors.Errorf("human readable GS1 data must start "+
			"with '(', but is %q", s)
	}

	var elements []Element
	for _, part := range strings.Split(s[1:], "(") {
		end := strings.IndexByte(part, ')')
		if end < 0 {
			return nil, errors.Errorf("unterminated AI in %q", part)
		}
		ai := part[:end]
		if !IsNumeric(ai) || len(ai) < 2 || len(ai) > 4 {
			return nil, errors.Errorf("AI %q should have 2 to 4 digits", ai)
		}
		elements = append(elements, Element{AI: ai, Data: part[end+1:]})
	}
	return elements, nil
}
