/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"
	"github.com/fxamacker/cbor/v2"
	"github.com/intel/rsp-sw-toolkit-im-suite-code128/code128"
	"github.com/pkg/errors"
	"io"
)

const (
	outputText = "text"
	outputCBOR = "cbor"
)

func validateOutput(s string) error {
	if s != outputText && s != outputCBOR {
		return errors.Errorf("unknown output %q; should be %s or %s",
			s, outputText, outputCBOR)
	}
	return nil
}

// record is the CBOR form of a barcode, for consumers that want every view of
// it at once.
type record struct {
	Subtype   string    `cbor:"subtype"`
	Symbols   []byte    `cbor:"symbols"`
	Checksum  uint8     `cbor:"checksum"`
	Text      string    `cbor:"text"`
	Formatted string    `cbor:"formatted"`
	Subtypes  []string  `cbor:"subtypes"`
	Elements  []element `cbor:"elements,omitempty"`
}

type element struct {
	AI    string `cbor:"ai"`
	Data  string `cbor:"data"`
	Title string `cbor:"title,omitempty"`
}

// encMode produces Core Deterministic CBOR, so the same barcode always
// results in the same bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("code128: CBOR encoder initialization failed: " + err.Error())
	}
}

func newRecord(c code128.Code128, f code128.Format) record {
	r := record{
		Subtype:   c.Subtype().String(),
		Symbols:   c.Symbols(),
		Checksum:  c.Checksum(),
		Text:      c.Text(),
		Formatted: c.Format(f),
	}
	for _, s := range c.SubtypesUsed() {
		r.Subtypes = append(r.Subtypes, s.String())
	}
	// records for barcodes that aren't GS1-128 simply have no elements
	if elements, err := c.Elements(); err == nil {
		for _, e := range elements {
			r.Elements = append(r.Elements, element{
				AI: e.AI, Data: e.Data, Title: e.Title(),
			})
		}
	}
	return r
}

// output holds the settings that decide how a barcode is written.
type output struct {
	format code128.Format
	kind   string
	render bool
	rc     renderConfig
}

// write writes c to w in the configured output kind.
func (o output) write(w io.Writer, c code128.Code128) error {
	if o.kind == outputCBOR {
		data, err := encMode.Marshal(newRecord(c, o.format))
		if err != nil {
			return errors.Wrap(err, "failed to encode record")
		}
		_, err = w.Write(data)
		return err
	}

	if _, err := fmt.Fprintln(w, c.Format(o.format)); err != nil {
		return err
	}
	if o.render {
		if _, err := fmt.Fprintln(w, render(c, o.rc)); err != nil {
			return err
		}
	}
	return nil
}
