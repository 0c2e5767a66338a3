/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// code128 encodes text and GS1 element strings as Code 128 barcodes, and
// decodes symbol values or module patterns back to text.
//
// Usage:
//
//	code128 [--config FILE] [--log-level LEVEL] encode [flags] TEXT
//	code128 [--config FILE] [--log-level LEVEL] gs1 [flags] ELEMENT...
//	code128 [--config FILE] [--log-level LEVEL] decode (--values V | --modules M)
//	code128 --version
package main

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-code128/code128"
	"github.com/intel/rsp-sw-toolkit-im-suite-code128/gs1"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	exitOK    = 0
	exitCodec = 1
	exitUsage = 2
)

// usageError marks errors caused by how the command was invoked, rather than
// by the data it was given.
type usageError struct {
	error
}

func usagef(format string, args ...interface{}) error {
	return usageError{errors.Errorf(format, args...)}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// env is what every command needs.
type env struct {
	cfg    *config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	var configPath, logLevel string
	var showVersion bool

	flagSet := pflag.NewFlagSet("code128", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "YAML config file (default: $"+configEnv+")")
	flagSet.StringVar(&logLevel, "log-level", "", "debug, info, warn, or error")
	flagSet.BoolVar(&showVersion, "version", false, "print the version and exit")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}
	if showVersion {
		fmt.Fprintf(stdout, "code128 %s\n", version)
		return exitOK
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	e := &env{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		stdout: stdout,
		stderr: stderr,
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		fmt.Fprintln(stderr, "error: no command given")
		printUsage(stderr, flagSet)
		return exitUsage
	}

	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "encode":
		err = e.encodeCmd(cmdArgs)
	case "gs1":
		err = e.gs1Cmd(cmdArgs)
	case "decode":
		err = e.decodeCmd(cmdArgs)
	case "version":
		fmt.Fprintf(stdout, "code128 %s\n", version)
	case "help":
		printUsage(stdout, flagSet)
	default:
		err = usagef("unknown command %q", cmd)
	}

	if err == nil {
		return exitOK
	}
	if ue, ok := err.(usageError); ok {
		if ue.error == pflag.ErrHelp {
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	e.logger.Debug("command failed", "error", fmt.Sprintf("%+v", err))
	fmt.Fprintf(stderr, "error: %v\n", err)
	return exitCodec
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(w, `code128 - Code 128 and GS1-128 barcode encoder and decoder

USAGE
    code128 [flags] <command> [command flags] [args...]

COMMANDS
    encode TEXT           Encode text (ISO-8859-1) as a barcode
    gs1 ELEMENT...        Encode GS1 element strings, "(01)0950110..." or "010950110..."
    decode                Decode --values "105 102 ..." or --modules 1101...
    version               Show version

FLAGS
`)
	fmt.Fprint(w, flagSet.FlagUsages())
	fmt.Fprintf(w, `
ENVIRONMENT
    %s    Config file, if --config isn't given
`, configEnv)
}

// newCommandFlags returns a FlagSet for a command, along with the shared
// output flags bound to the config's defaults.
func (e *env) newCommandFlags(name string) (*pflag.FlagSet, func() (output, error)) {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(e.stderr)
	format := flagSet.String("format", e.cfg.Format,
		"regular, text, hex, values, barcode, or path")
	kind := flagSet.String("output", e.cfg.Output, "text or cbor")
	doRender := flagSet.Bool("render", false, "also draw the barcode in the terminal")

	return flagSet, func() (output, error) {
		f, err := code128.ParseFormat(*format)
		if err != nil {
			return output{}, usageError{err}
		}
		if err := validateOutput(*kind); err != nil {
			return output{}, usageError{err}
		}
		return output{format: f, kind: *kind, render: *doRender, rc: e.cfg.Render}, nil
	}
}

func parseFlags(flagSet *pflag.FlagSet, args []string) error {
	if err := flagSet.Parse(args); err != nil {
		return usageError{err}
	}
	return nil
}

func (e *env) encodeCmd(args []string) error {
	flagSet, getOutput := e.newCommandFlags("encode")
	set := flagSet.String("set", e.cfg.Set, "start subtype: A, B, or C")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}
	out, err := getOutput()
	if err != nil {
		return err
	}
	sub, err := code128.ParseSubtype(*set)
	if err != nil {
		return usageError{err}
	}
	if flagSet.NArg() != 1 {
		return usagef("encode takes exactly one TEXT argument, but got %d", flagSet.NArg())
	}

	c, err := code128.EncodeString(sub, flagSet.Arg(0))
	if err != nil {
		return err
	}
	e.logger.Debug("encoded", "symbols", c.Len(), "subtypes", c.SubtypesUsed())
	return out.write(e.stdout, c)
}

func (e *env) gs1Cmd(args []string) error {
	flagSet, getOutput := e.newCommandFlags("gs1")
	lax := flagSet.Bool("lax", false, "skip AI catalog and check digit validation")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}
	out, err := getOutput()
	if err != nil {
		return err
	}
	if flagSet.NArg() == 0 {
		return usagef("gs1 needs at least one ELEMENT")
	}

	var parts []string
	for _, arg := range flagSet.Args() {
		elements, err := parseElements(arg)
		if err != nil {
			return err
		}
		for _, el := range elements {
			if err := el.Validate(); err != nil {
				if !*lax {
					return errors.Wrapf(err, "element %s", el)
				}
				e.logger.Warn("invalid GS1 element", "element", el.String(), "error", err)
			}
			parts = append(parts, el.ElementString())
		}
	}

	c, err := code128.EncodeGS1Parts(parts...)
	if err != nil {
		return err
	}
	e.logger.Debug("encoded GS1", "elements", len(parts), "symbols", c.Len())
	return out.write(e.stdout, c)
}

// parseElements accepts either a human readable "(AI)data(AI)data..." string
// or a single element string with no parentheses.
func parseElements(arg string) ([]gs1.Element, error) {
	if strings.HasPrefix(arg, "(") {
		return gs1.ParseHRI(arg)
	}
	el, err := gs1.Split(arg)
	if err != nil {
		return nil, err
	}
	return []gs1.Element{el}, nil
}

func (e *env) decodeCmd(args []string) error {
	flagSet, getOutput := e.newCommandFlags("decode")
	values := flagSet.String("values", "", "symbol values, separated by spaces or commas")
	modules := flagSet.String("modules", "", "module pattern of 1s (black) and 0s (white)")
	set := flagSet.String("set", e.cfg.Set, "start subtype, if --values has no start code")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}
	out, err := getOutput()
	if err != nil {
		return err
	}
	if (*values == "") == (*modules == "") {
		return usagef("decode needs exactly one of --values or --modules")
	}
	if flagSet.NArg() != 0 {
		return usagef("unexpected argument %q", flagSet.Arg(0))
	}

	var c code128.Code128
	if *values != "" {
		c, err = decodeValues(*values, *set)
	} else {
		c, err = decodeModules(*modules)
	}
	if err != nil {
		return err
	}
	e.logger.Debug("decoded", "subtype", c.Subtype(), "symbols", c.Len())

	if err := out.write(e.stdout, c); err != nil {
		return err
	}
	if out.kind != outputText {
		return nil
	}

	elements, err := c.Elements()
	if err != nil {
		e.logger.Warn("barcode has fields that aren't GS1 element strings", "error", err)
		return nil
	}
	for _, el := range elements {
		if title := el.Title(); title != "" {
			fmt.Fprintf(e.stdout, "%s\t%s\n", el, title)
		} else {
			fmt.Fprintln(e.stdout, el)
		}
	}
	return nil
}

// decodeValues parses a list of symbol values. A list that begins with a
// start code must be complete; otherwise the values are data symbols in the
// given subtype, optionally ending with a check symbol and stop.
func decodeValues(s, set string) (code128.Code128, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	symbols := make([]byte, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return code128.Code128{}, usagef("value %d, %q, isn't a number in [0, 255]", i, f)
		}
		symbols[i] = byte(v)
	}

	if len(symbols) > 0 && symbols[0] >= code128.StartA && symbols[0] <= code128.StartC {
		return code128.Parse(symbols)
	}
	sub, err := code128.ParseSubtype(set)
	if err != nil {
		return code128.Code128{}, usageError{err}
	}
	return code128.FromValues(sub, symbols)
}

func decodeModules(s string) (code128.Code128, error) {
	modules := make([]bool, 0, len(s))
	for _, r := range s {
		switch r {
		case '1', '█':
			modules = append(modules, true)
		case '0', '.':
			modules = append(modules, false)
		case ' ', '\t', '\n':
		default:
			return code128.Code128{}, usagef("invalid module %q; use 1 and 0", r)
		}
	}
	return code128.DecodeModules(modules)
}
