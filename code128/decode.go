/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package code128

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-code128/gs1"
	"golang.org/x/text/encoding/charmap"
	"iter"
	"slices"
	"strings"
)

// Text returns the characters the barcode encodes, without any function codes.
func (c Code128) Text() string {
	return c.Format(FormatText)
}

// Bytes returns the ISO-8859-1 bytes the barcode encodes, without any function
// codes. For barcodes made by Encode, this equals the encoded data.
func (c Code128) Bytes() []byte {
	var b []byte
	c.walk(func(ev event) bool {
		b = appendEventChars(b, ev)
		return true
	})
	return b
}

// AIs returns an iterator over the GS1 element strings in the barcode.
//
// Each FNC1, FNC2, or FNC3 ends the current field and starts a new one.
// Anything before the first of those has no AI and is skipped, and empty
// fields aren't yielded.
func (c Code128) AIs() iter.Seq[string] {
	return func(yield func(string) bool) {
		if c.IsZero() {
			return
		}

		var field []byte
		recording := false
		stopped := false
		flush := func() bool {
			if recording && len(field) > 0 && !yield(latin1(field)) {
				stopped = true
				return false
			}
			field = field[:0]
			return true
		}

		c.walk(func(ev event) bool {
			switch ev.kind {
			case evFNC1, evFNC2, evFNC3:
				if !flush() {
					return false
				}
				recording = true
			case evChar, evDigits:
				if recording {
					field = appendEventChars(field, ev)
				}
			}
			return true
		})
		if !stopped {
			flush()
		}
	}
}

// AIData returns all the GS1 element strings in the barcode.
func (c Code128) AIData() []string {
	return slices.Collect(c.AIs())
}

// Elements splits each GS1 element string in the barcode into its AI and data.
func (c Code128) Elements() ([]gs1.Element, error) {
	var elements []gs1.Element
	for s := range c.AIs() {
		e, err := gs1.Split(s)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return elements, nil
}

// appendEventChars appends the characters a data event represents to b.
func appendEventChars(b []byte, ev event) []byte {
	switch ev.kind {
	case evChar:
		return append(b, ev.value)
	case evDigits:
		return append(b, '0'+ev.value/10, '0'+ev.value%10)
	}
	return b
}

// latin1 converts ISO-8859-1 bytes to a UTF-8 string.
func latin1(b []byte) string {
	sb := strings.Builder{}
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(charmap.ISO8859_1.DecodeByte(c))
	}
	return sb.String()
}
