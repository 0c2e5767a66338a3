/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package code128

import (
	"github.com/pkg/errors"
)

// Errors returned by this package are wrapped with context; compare them
// using errors.Cause.
var (
	// ErrEmpty is returned when there's nothing to build a barcode from.
	ErrEmpty = errors.New("no symbols")
	// ErrInvalidAI is returned for negative GS1 Application Identifiers.
	ErrInvalidAI = errors.New("invalid application identifier")
	// ErrUnencodable is returned for text with characters above U+00FF.
	ErrUnencodable = errors.New("text can't be encoded in Code 128")

	ErrInvalidSubtype = errors.New("invalid subtype")
	ErrInvalidSymbol  = errors.New("invalid symbol")
	ErrUnknownStart   = errors.New("unknown start code")
	ErrMissingStop    = errors.New("missing stop code")
	ErrChecksum       = errors.New("checksum mismatch")

	ErrUnknownPattern  = errors.New("unknown module pattern")
	ErrPatternTooShort = errors.New("module pattern too short")
	ErrPatternLength   = errors.New("module pattern has an invalid length")
)
