/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package code128

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
	"testing"
)

func TestChecksum(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(Checksum(StartC, []byte{102, 42, 18, 40, 20, 50, 101, 16}), byte(92))
	w.ShouldBeEqual(Checksum(StartB, nil), byte(1))
	w.ShouldBeEqual(Checksum(StartA, []byte{33, 34, 35}), byte(0))
	// 105 + 102*(1+2+...+20) = 21525, and 21525 % 103 = 101
	data := make([]byte, 20)
	for i := range data {
		data[i] = FNC1
	}
	w.ShouldBeEqual(Checksum(StartC, data), byte(101))
}

func TestParse(t *testing.T) {
	type test struct {
		name    string
		symbols []byte
		err     error
	}

	pass := func(name string, symbols ...byte) test {
		return test{name: name, symbols: symbols}
	}
	fail := func(name string, err error, symbols ...byte) test {
		return test{name: name, symbols: symbols, err: err}
	}

	for i, tt := range []test{
		pass("GS1", 105, 102, 42, 18, 40, 20, 50, 101, 16, 92, 106),
		pass("no data", 104, 1, 106),
		pass("upper case", 103, 33, 34, 35, 0, 106),

		fail("empty", ErrEmpty),
		fail("bad start", ErrUnknownStart, 102, 1, 106),
		fail("start only", ErrMissingStop, 104),
		fail("no stop", ErrMissingStop, 104, 33, 34, 35),
		fail("checksum", ErrChecksum, 105, 102, 42, 18, 40, 20, 50, 101, 16, 93, 106),
		fail("stop in data", ErrInvalidSymbol, 104, 106, 1, 106),
		fail("start in data", ErrInvalidSymbol, 104, 103, 1, 106),
		fail("check symbol too large", ErrInvalidSymbol, 104, 103, 106),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)

			c, err := Parse(tt.symbols)
			if tt.err != nil {
				w.Logf("%+v", err)
				w.ShouldFail(err)
				w.ShouldBeEqual(errors.Cause(err), tt.err)
				w.ShouldBeTrue(c.IsZero())
				return
			}

			w.ShouldSucceed(err)
			w.ShouldBeTrue(c.IsValid())
			w.ShouldBeEqual(c.Symbols(), tt.symbols)
		})
	}
}

func TestFromValues(t *testing.T) {
	w := expect.WrapT(t)

	values := []byte{102, 42, 18, 40, 20, 50, 101, 16}
	appended := w.ShouldHaveResult(FromValues(SubtypeC, values)).(Code128)
	w.ShouldBeEqual(appended.Checksum(), byte(92))
	w.ShouldBeEqual(appended.Data(), values)

	// a trailing check symbol and stop are verified rather than recomputed
	verified := w.ShouldHaveResult(FromValues(SubtypeC,
		append(append([]byte(nil), values...), 92, Stop))).(Code128)
	w.ShouldBeTrue(verified.Equal(appended))

	_, err := FromValues(SubtypeC, append(append([]byte(nil), values...), 91, Stop))
	w.ShouldBeEqual(errors.Cause(err), ErrChecksum)

	// just a check symbol and stop
	c := w.ShouldHaveResult(FromValues(SubtypeB, []byte{1, Stop})).(Code128)
	w.ShouldBeEqual(c.Len(), minSymbols)

	_, err = FromValues(SubtypeB, nil)
	w.ShouldBeEqual(errors.Cause(err), ErrEmpty)
	_, err = FromValues(SubtypeB, []byte{Stop})
	w.ShouldBeEqual(errors.Cause(err), ErrEmpty)
	_, err = FromValues(SubtypeB, []byte{33, StartA, 34})
	w.ShouldBeEqual(errors.Cause(err), ErrInvalidSymbol)
	_, err = FromValues(Subtype('a'), []byte{33})
	w.ShouldBeEqual(errors.Cause(err), ErrInvalidSubtype)
}

func TestValidate_constructed(t *testing.T) {
	w := expect.WrapT(t)

	for _, s := range []string{"", "a", "Kingcean", "0123456789", "\u0000\u007f\u00ff"} {
		for _, sub := range []Subtype{SubtypeA, SubtypeB, SubtypeC} {
			c := w.ShouldHaveResult(EncodeString(sub, s)).(Code128)
			symbols := c.Symbols()
			w.As(s).ShouldBeEqual(symbols[len(symbols)-2],
				Checksum(symbols[0], symbols[1:len(symbols)-2]))
			w.As(s).ShouldSucceed(validate(symbols))

			// a corrupted data symbol is always caught
			if len(symbols) > minSymbols {
				symbols[1] = (symbols[1] + 1) % (MaxData + 1)
				w.As(s).ShouldBeEqual(errors.Cause(validate(symbols)), ErrChecksum)
			}
		}
	}
}
