/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"bytes"
	"github.com/charmbracelet/lipgloss"
	"github.com/fxamacker/cbor/v2"
	"github.com/intel/rsp-sw-toolkit-im-suite-code128/code128"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"strings"
	"testing"
)

func TestOutput_cbor(t *testing.T) {
	w := expect.WrapT(t)

	c := w.ShouldHaveResult(code128.EncodeGS1(421, "84020500")).(code128.Code128)
	o := output{format: code128.FormatValues, kind: outputCBOR}

	var first, second bytes.Buffer
	w.ShouldSucceed(o.write(&first, c))
	w.ShouldSucceed(o.write(&second, c))
	w.ShouldBeEqual(first.Bytes(), second.Bytes())

	var r record
	w.ShouldSucceed(cbor.Unmarshal(first.Bytes(), &r))
	w.ShouldBeEqual(r.Subtype, "C")
	w.ShouldBeEqual(r.Symbols, c.Symbols())
	w.ShouldBeEqual(r.Checksum, uint8(92))
	w.ShouldBeEqual(r.Text, "42184020500")
	w.ShouldBeEqual(r.Formatted,
		"[Start C] [FNC1] 42 18 40 20 50 [Code A] 16 [Check symbol 92] [Stop]")
	w.ShouldBeEqual(r.Subtypes, []string{"C", "A"})
	w.ShouldBeEqual(r.Elements, []element{
		{AI: "421", Data: "84020500", Title: "SHIP TO POST"},
	})
}

func TestOutput_cborNotGS1(t *testing.T) {
	w := expect.WrapT(t)

	c := w.ShouldHaveResult(code128.EncodeString(code128.SubtypeB, "Kingcean")).(code128.Code128)
	var buf bytes.Buffer
	w.ShouldSucceed(output{kind: outputCBOR}.write(&buf, c))

	var r record
	w.ShouldSucceed(cbor.Unmarshal(buf.Bytes(), &r))
	w.ShouldBeEqual(r.Text, "Kingcean")
	w.ShouldBeEqual(r.Formatted, "Kingcean")
	w.ShouldHaveLength(r.Elements, 0)
}

func TestRender(t *testing.T) {
	w := expect.WrapT(t)

	c := w.ShouldHaveResult(code128.EncodeString(code128.SubtypeB, "a\tb")).(code128.Code128)
	rc := defaultConfig().Render
	lines := strings.Split(render(c, rc), "\n")
	w.StopOnMismatch().ShouldHaveLength(lines, rc.Height+1)

	width := len(c.Modules()) + 2*rc.QuietZone
	for _, line := range lines {
		w.ShouldBeEqual(lipgloss.Width(line), width)
	}
	w.ShouldContainStr(lines[rc.Height], "a·b")

	gs1 := w.ShouldHaveResult(code128.EncodeGS1Parts("0109501101020917", "10ABC")).(code128.Code128)
	w.ShouldBeEqual(humanReadable(gs1), "(01)09501101020917(10)ABC")
}
