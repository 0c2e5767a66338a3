/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/intel/rsp-sw-toolkit-im-suite-code128/code128"
	"strings"
)

// render draws the barcode with background colored cells, one column per
// module, followed by its human readable text centered beneath it.
func render(c code128.Code128, rc renderConfig) string {
	black := lipgloss.NewStyle().Background(lipgloss.Color(rc.Black))
	white := lipgloss.NewStyle().Background(lipgloss.Color(rc.White))

	modules := c.Modules()
	var row strings.Builder
	row.WriteString(white.Render(strings.Repeat(" ", rc.QuietZone)))
	for i := 0; i < len(modules); {
		n := 1
		for i+n < len(modules) && modules[i+n] == modules[i] {
			n++
		}
		style := white
		if modules[i] {
			style = black
		}
		row.WriteString(style.Render(strings.Repeat(" ", n)))
		i += n
	}
	row.WriteString(white.Render(strings.Repeat(" ", rc.QuietZone)))

	bars := make([]string, rc.Height)
	for i := range bars {
		bars[i] = row.String()
	}

	width := len(modules) + 2*rc.QuietZone
	label := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(humanReadable(c))
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(bars, "\n"), label)
}

// humanReadable is the text printed under a barcode: GS1 elements with their
// AIs in parentheses, or the text with control characters replaced.
func humanReadable(c code128.Code128) string {
	if elements, err := c.Elements(); err == nil && len(elements) > 0 {
		var sb strings.Builder
		for _, e := range elements {
			sb.WriteString(e.String())
		}
		return sb.String()
	}

	return strings.Map(func(r rune) rune {
		if r < 0x20 || (r >= 0x7F && r < 0xA0) {
			return '·'
		}
		return r
	}, c.Text())
}
