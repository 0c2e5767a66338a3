/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package code128 encodes and decodes Code 128 barcodes, including GS1-128.
//
// A Code 128 barcode is a sequence of symbols, each a value in [0, 106]: a
// start code that selects one of three character sets, the data symbols, a
// check symbol, and a stop code. Each symbol is printed as 11 modules (the
// stop code as 13), alternating three bars and three spaces.
//
// Set A holds ASCII control characters, digits, upper case letters and
// punctuation; set B holds printable ASCII; set C holds pairs of digits. Data
// symbols switch between sets permanently (Code A, Code B, Code C) or for a
// single character (Shift), and FNC4 moves a character into the upper half of
// ISO-8859-1. FNC1 in the first data position marks the barcode as GS1-128,
// in which case FNC1 also separates the element strings.
//
// Every Code128 value is valid: the only ways to make one are the encoders,
// FromValues, Parse, DecodeModules and Join, all of which validate or compute
// the check symbol. Values are immutable and safe for concurrent use.
//
//	c, err := code128.EncodeGS1(421, "84020500")
//	if err != nil {
//		return err
//	}
//	fmt.Println(c.Format(code128.FormatValues))
//	// [Start C] [FNC1] 42 18 40 20 50 [Code A] 16 [Check symbol 92] [Stop]
package code128
