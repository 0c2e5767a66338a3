/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package code128

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-code128/bitextract"
	"github.com/pkg/errors"
	"slices"
)

// minModules is the width of a start code, check symbol, and stop pattern.
const minModules = 2*SymbolModules + StopModules

// DecodeModules returns the barcode drawn by a module pattern, in which true is
// a black module and false is white.
//
// Leading and trailing white modules (quiet zones) are ignored. A pattern read
// right-to-left is recognized by its leading stop pattern and decoded in the
// correct order. The result is fully validated, including its check symbol.
func DecodeModules(modules []bool) (Code128, error) {
	modules = trimQuietZones(modules)
	if len(modules) < minModules {
		return Code128{}, errors.Wrapf(ErrPatternTooShort, "%d modules; "+
			"need at least %d", len(modules), minModules)
	}
	if (len(modules)-StopModules)%SymbolModules != 0 {
		return Code128{}, errors.Wrapf(ErrPatternLength, "%d modules isn't "+
			"%d plus a multiple of %d", len(modules), StopModules, SymbolModules)
	}

	n := (len(modules) - StopModules) / SymbolModules
	exp, err := bitextract.NewBitExploder(
		bitextract.UniformWidths(SymbolModules, n, StopModules))
	if err != nil {
		return Code128{}, err
	}

	fields, err := exp.Explode(bitextract.Pack(modules))
	if err != nil {
		return Code128{}, err
	}
	if !isStartPattern(fields[0]) {
		reversed := slices.Clone(modules)
		slices.Reverse(reversed)
		if fields, err = exp.Explode(bitextract.Pack(reversed)); err != nil {
			return Code128{}, err
		}
		if !isStartPattern(fields[0]) {
			return Code128{}, errors.Wrap(ErrUnknownStart,
				"the pattern doesn't begin or end with a start code")
		}
	}

	symbols := make([]byte, len(fields))
	for i, f := range fields {
		width := SymbolModules
		if i == len(fields)-1 {
			width = StopModules
		}
		sym, ok := lookupPattern(uint16(f), width)
		if !ok {
			return Code128{}, errors.Wrapf(ErrUnknownPattern, "%0*b at module %d",
				width, f, i*SymbolModules)
		}
		symbols[i] = sym
	}
	return Parse(symbols)
}

func isStartPattern(field uint64) bool {
	sym, ok := lookupPattern(uint16(field), SymbolModules)
	if !ok {
		return false
	}
	_, ok = subtypeOf(sym)
	return ok
}

func trimQuietZones(modules []bool) []bool {
	first := slices.Index(modules, true)
	if first < 0 {
		return nil
	}
	last := len(modules) - 1
	for !modules[last] {
		last--
	}
	return modules[first : last+1]
}
