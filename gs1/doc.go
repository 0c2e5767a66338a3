/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gs1 implements the parts of the GS1 General Specifications that
// barcode codecs need independent of their symbology: the Application
// Identifier catalog, the AI character sets, and the mod-10 check digit.
//
// A GS1 element string is an Application Identifier (AI) of 2 to 4 digits
// immediately followed by its data, e.g. "421" + "84020500". The length of the
// AI is determined by its first two digits, so a decoder can split a field
// carried in a GS1-128 barcode without any delimiter between the AI and its
// data. Fields themselves are delimited by FNC1 in the barcode; in human
// readable form, the AI is wrapped in parentheses: "(421)84020500".
//
// The GS1 General Specifications are available at
// https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
package gs1
