/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"github.com/pkg/errors"
)

// ErrUnknownAI is returned when the leading digits of an element string don't
// begin any Application Identifier in the catalog.
var ErrUnknownAI = errors.New("unknown application identifier")

// aiLengths maps the first two digits of an element string to the number of
// digits in its Application Identifier, per the GS1 General Specifications
// table of AIs by prefix.
var aiLengths = map[string]int{
	"00": 2, "01": 2, "02": 2, "03": 2, "04": 2,
	"10": 2, "11": 2, "12": 2, "13": 2, "15": 2, "16": 2, "17": 2,
	"20": 2, "21": 2, "22": 2,
	"23": 3, "24": 3, "25": 3,
	"30": 2, "31": 4, "32": 4, "33": 4, "34": 4, "35": 4, "36": 4,
	"37": 2, "39": 4,
	"40": 3, "41": 3, "42": 3, "43": 4,
	"70": 4, "71": 3, "72": 4,
	"80": 4, "81": 4, "82": 4,
	"90": 2, "91": 2, "92": 2, "93": 2, "94": 2, "95": 2, "96": 2, "97": 2, "98": 2, "99": 2,
}

// fixedDataLengths holds the AI prefixes whose data has a predefined length;
// these fields never need a trailing FNC1 separator.
var fixedDataLengths = map[string]int{
	"00": 18, "01": 14, "02": 14, "03": 14, "04": 16,
	"11": 6, "12": 6, "13": 6, "15": 6, "16": 6, "17": 6,
	"20": 2,
	"31": 6, "32": 6, "33": 6, "34": 6, "35": 6, "36": 6,
	"41": 13,
}

// checkDigitPrefixes are the AIs whose data ends in a GS1 mod-10 check digit.
var checkDigitPrefixes = map[string]bool{
	"00": true, "01": true, "02": true, "03": true, "41": true,
}

// titles are the GS1 data titles of common AIs; the 4 digit measure AIs are
// listed by their first three digits, as the fourth is a decimal point
// indicator.
var titles = map[string]string{
	"00":   "SSCC",
	"01":   "GTIN",
	"02":   "CONTENT",
	"10":   "BATCH/LOT",
	"11":   "PROD DATE",
	"12":   "DUE DATE",
	"13":   "PACK DATE",
	"15":   "BEST BEFORE or BEST BY",
	"16":   "SELL BY",
	"17":   "USE BY OR EXPIRY",
	"20":   "VARIANT",
	"21":   "SERIAL",
	"22":   "CPV",
	"240":  "ADDITIONAL ID",
	"241":  "CUST. PART No.",
	"30":   "VAR. COUNT",
	"310":  "NET WEIGHT (kg)",
	"330":  "GROSS WEIGHT (kg)",
	"37":   "COUNT",
	"400":  "ORDER NUMBER",
	"401":  "GINC",
	"402":  "GSIN",
	"410":  "SHIP TO LOC",
	"414":  "LOC No.",
	"420":  "SHIP TO POST",
	"421":  "SHIP TO POST",
	"422":  "ORIGIN",
	"8003": "GRAI",
	"8004": "GIAI",
	"8018": "GSRN - PROVIDER",
	"90":   "INTERNAL",
}

// AILength returns the number of leading digits of the element string that
// form its Application Identifier.
func AILength(element string) (int, error) {
	if len(element) < 2 || !IsNumeric(element[:2]) {
		return 0, errors.Wrapf(ErrUnknownAI, "element %q doesn't begin "+
			"with two digits", element)
	}
	n, ok := aiLengths[element[:2]]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownAI, "no AI starts with %q", element[:2])
	}
	if len(element) < n || !IsNumeric(element[:n]) {
		return 0, errors.Wrapf(ErrUnknownAI, "element %q is too short "+
			"for its %d digit AI", element, n)
	}
	return n, nil
}

// FixedDataLength returns the predefined data length of the AI, or 0 if its
// data has a variable length.
func FixedDataLength(ai string) int {
	if len(ai) < 2 {
		return 0
	}
	return fixedDataLengths[ai[:2]]
}

// Title returns the GS1 data title of the AI, or "" if it isn't known.
func Title(ai string) string {
	if t, ok := titles[ai]; ok {
		return t
	}
	if len(ai) == 4 {
		return titles[ai[:3]]
	}
	return ""
}
