/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"bytes"
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"testing"
)

func runArgs(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun(t *testing.T) {
	type test struct {
		name   string
		args   []string
		code   int
		stdout string
	}

	pass := func(name, stdout string, args ...string) test {
		return test{name: name, args: args, stdout: stdout}
	}
	fail := func(name string, code int, args ...string) test {
		return test{name: name, args: args, code: code}
	}

	for i, tt := range []test{
		pass("encode", "Kingcean\n", "encode", "Kingcean"),
		pass("encode values", "[Start A] 33 34 35 [Check symbol 0] [Stop]\n",
			"encode", "--set", "A", "--format", "values", "ABC"),
		pass("encode hex", "69 2A 2C 6A\n",
			"encode", "--set=C", "--format=hex", "42"),
		pass("gs1 HRI", "[Start C] [FNC1] 42 18 40 20 50 [Code A] 16 [Check symbol 92] [Stop]\n",
			"gs1", "--format", "values", "(421)84020500"),
		pass("gs1 element strings", "[FNC1]0109501101020917[FNC1]10ABC\n",
			"gs1", "0109501101020917", "10ABC"),
		pass("gs1 lax", "[FNC1]0109501101020918\n",
			"gs1", "--lax", "(01)09501101020918"),
		pass("gs1 lax characters", "[FNC1]10A B\n",
			"gs1", "--lax", "(10)A B"),
		pass("decode values", "[FNC1]42184020500\n(421)84020500\tSHIP TO POST\n",
			"decode", "--values", "105 102 42 18 40 20 50 101 16 92 106"),
		pass("decode data values", "Kingcean\n",
			"decode", "--set", "B", "--values", "43,73,78,71,67,69,65,78"),
		pass("decode modules", "A\n",
			"decode", "--modules", "0001101000010010100011000101000110001100011101011000"),
		pass("version", "code128 dev\n", "--version"),

		fail("no command", exitUsage),
		fail("unknown command", exitUsage, "print"),
		fail("unknown flag", exitUsage, "encode", "--bold", "x"),
		fail("bad subtype", exitUsage, "encode", "--set", "D", "x"),
		fail("bad format", exitUsage, "encode", "--format", "svg", "x"),
		fail("bad output", exitUsage, "encode", "--output", "json", "x"),
		fail("too many args", exitUsage, "encode", "x", "y"),
		fail("bad log level", exitUsage, "--log-level", "loud", "encode", "x"),
		fail("no values", exitUsage, "decode"),
		fail("both values and modules", exitUsage, "decode", "--values", "1", "--modules", "1"),
		fail("value too large", exitUsage, "decode", "--values", "105 300"),

		fail("unencodable", exitCodec, "encode", "☃"),
		fail("bad checksum", exitCodec, "decode", "--values", "105 102 42 18 40 20 50 101 16 93 106"),
		fail("bad pattern", exitCodec, "decode", "--modules", "1101"),
		fail("bad check digit", exitCodec, "gs1", "(01)09501101020918"),
		fail("unknown AI", exitCodec, "gs1", "5012"),
		fail("bad GS1 characters", exitCodec, "gs1", "(10)A B"),
		fail("unencodable GS1", exitCodec, "gs1", "--lax", "(10)☃"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			t.Setenv(configEnv, "")

			code, stdout, stderr := runArgs(tt.args...)
			w.Logf("stderr: %s", stderr)
			w.As(tt.args).ShouldBeEqual(code, tt.code)
			if tt.code == exitOK {
				w.As(tt.args).ShouldBeEqual(stdout, tt.stdout)
			} else {
				w.As(tt.args).ShouldContainStr(stderr, "error")
			}
		})
	}
}

func TestRun_render(t *testing.T) {
	w := expect.WrapT(t)
	t.Setenv(configEnv, "")

	code, stdout, _ := runArgs("encode", "--render", "Kingcean")
	w.ShouldBeEqual(code, exitOK)
	w.ShouldContainStr(stdout, "Kingcean\n")
	// the text line, four rows of bars, and the label
	w.ShouldBeEqual(bytes.Count([]byte(stdout), []byte("\n")), 6)
}

func TestRun_help(t *testing.T) {
	w := expect.WrapT(t)
	t.Setenv(configEnv, "")

	code, stdout, _ := runArgs("help")
	w.ShouldBeEqual(code, exitOK)
	w.ShouldContainStr(stdout, "COMMANDS")

	code, _, stderr := runArgs("--help")
	w.ShouldBeEqual(code, exitOK)
	w.ShouldContainStr(stderr, "USAGE")

	code, _, _ = runArgs("encode", "--help")
	w.ShouldBeEqual(code, exitOK)
}
