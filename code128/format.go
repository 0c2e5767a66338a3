/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package code128

import (
	"fmt"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// Format selects a string representation of a barcode.
type Format int

const (
	// FormatRegular is the encoded text, with FNC1, FNC2 and FNC3 shown as
	// "[FNC1]", "[FNC2]" and "[FNC3]"; it's what String returns.
	FormatRegular Format = iota
	// FormatText is only the encoded text.
	FormatText
	// FormatHex lists every symbol as two hex digits.
	FormatHex
	// FormatValues lists every symbol by its meaning where it has one, or its
	// value otherwise.
	FormatValues
	// FormatBarcode draws the modules with '█' for black and ' ' for white.
	FormatBarcode
	// FormatPath is a vector path of the black modules, 40 units high.
	FormatPath
)

// DefaultPathHeight is the bar height used by FormatPath.
const DefaultPathHeight = 40

var formatNames = [...]string{
	FormatRegular: "regular",
	FormatText:    "text",
	FormatHex:     "hex",
	FormatValues:  "values",
	FormatBarcode: "barcode",
	FormatPath:    "path",
}

var formatters = [...]func(Code128) string{
	FormatRegular: formatRegular,
	FormatText:    formatText,
	FormatHex:     formatHex,
	FormatValues:  formatValues,
	FormatBarcode: func(c Code128) string { return c.BarcodeString('█', ' ') },
	FormatPath:    func(c Code128) string { return c.Path(DefaultPathHeight) },
}

// IsValid returns true if f is one of the defined formats.
func (f Format) IsValid() bool {
	return f >= 0 && int(f) < len(formatNames)
}

func (f Format) String() string {
	if f.IsValid() {
		return formatNames[f]
	}
	return "Unknown format: " + strconv.Itoa(int(f))
}

// ParseFormat returns the Format with the given name, ignoring case.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, errors.Errorf("unknown format %q; should be one of %s",
		s, strings.Join(formatNames[:], ", "))
}

// String returns the barcode in FormatRegular.
func (c Code128) String() string {
	return c.Format(FormatRegular)
}

// Format returns the barcode in the given format; unknown formats use
// FormatRegular. The zero value formats as the empty string.
func (c Code128) Format(f Format) string {
	if c.IsZero() {
		return ""
	}
	if !f.IsValid() {
		f = FormatRegular
	}
	return formatters[f](c)
}

func formatText(c Code128) string {
	return latin1(c.Bytes())
}

func formatRegular(c Code128) string {
	var b []byte
	c.walk(func(ev event) bool {
		switch ev.kind {
		case evFNC1:
			b = append(b, "[FNC1]"...)
		case evFNC2:
			b = append(b, "[FNC2]"...)
		case evFNC3:
			b = append(b, "[FNC3]"...)
		default:
			b = appendEventChars(b, ev)
		}
		return true
	})
	return latin1(b)
}

func formatHex(c Code128) string {
	sb := strings.Builder{}
	for i, sym := range c.symbols {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", sym)
	}
	return sb.String()
}

func formatValues(c Code128) string {
	tokens := make([]string, 0, len(c.symbols))
	tokens = append(tokens, "[Start "+c.Subtype().String()+"]")

	m := newMachine(c.Subtype())
	for _, sym := range c.data() {
		ev := m.step(sym)
		switch ev.kind {
		case evDigits:
			tokens = append(tokens, fmt.Sprintf("%02d", sym))
		case evFNC1:
			tokens = append(tokens, "[FNC1]")
		case evFNC2:
			tokens = append(tokens, "[FNC2]")
		case evFNC3:
			tokens = append(tokens, "[FNC3]")
		case evFNC4:
			tokens = append(tokens, "[FNC4]")
		case evShift:
			tokens = append(tokens, "[Shift]")
		case evLatch:
			tokens = append(tokens, "[Code "+Subtype(ev.value).String()+"]")
		default:
			tokens = append(tokens, strconv.Itoa(int(sym)))
		}
	}

	tokens = append(tokens,
		fmt.Sprintf("[Check symbol %d]", c.Checksum()),
		"[Stop]")
	return strings.Join(tokens, " ")
}

// Modules returns the barcode's module pattern, from the start code to the
// final bar of the stop code: true is a black module and false a white one.
// Quiet zones are not included.
func (c Code128) Modules() []bool {
	if c.IsZero() {
		return nil
	}
	modules := make([]bool, 0, len(c.symbols)*SymbolModules+StopModules-SymbolModules)
	for _, sym := range c.symbols {
		modules = appendModules(modules, sym)
	}
	return modules
}

// BarcodeString draws the module pattern with the given runes for black and
// white modules.
func (c Code128) BarcodeString(black, white rune) string {
	sb := strings.Builder{}
	for _, m := range c.Modules() {
		if m {
			sb.WriteRune(black)
		} else {
			sb.WriteRune(white)
		}
	}
	return sb.String()
}

// Path returns a vector path outlining each bar as a closed rectangle of the
// given height, one unit per module, suitable for an SVG path's "d" attribute.
func (c Code128) Path(height int) string {
	modules := c.Modules()
	sb := strings.Builder{}
	for x := 0; x < len(modules); {
		if !modules[x] {
			x++
			continue
		}
		w := 1
		for x+w < len(modules) && modules[x+w] {
			w++
		}
		fmt.Fprintf(&sb, "M%d 0h%dv%dh-%dz", x, w, height, w)
		x += w
	}
	return sb.String()
}
