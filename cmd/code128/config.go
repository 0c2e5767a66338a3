/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-code128/code128"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"log/slog"
	"os"
)

// configEnv names the config file when --config isn't given. There is no
// search path: without either one, the defaults are used.
const configEnv = "CODE128_CONFIG"

// config holds the defaults for flags the commands share.
type config struct {
	// Set is the start subtype for "encode": A, B, or C.
	Set string `yaml:"set"`
	// Format is the output format name; see code128.ParseFormat.
	Format string `yaml:"format"`
	// Output is "text" or "cbor".
	Output string `yaml:"output"`
	// LogLevel is a log/slog level name.
	LogLevel string `yaml:"log_level"`

	Render renderConfig `yaml:"render"`
}

// renderConfig controls --render's terminal drawing.
type renderConfig struct {
	// Black and White are lipgloss colors: ANSI numbers or hex values.
	Black string `yaml:"black"`
	White string `yaml:"white"`
	// Height is the number of terminal rows the bars span.
	Height int `yaml:"height"`
	// QuietZone is the number of white modules on each side.
	QuietZone int `yaml:"quiet_zone"`
}

func defaultConfig() *config {
	return &config{
		Set:      "B",
		Format:   code128.FormatRegular.String(),
		Output:   outputText,
		LogLevel: "warn",
		Render: renderConfig{
			Black:     "0",
			White:     "15",
			Height:    4,
			QuietZone: 10,
		},
	}
}

// loadConfig returns the defaults overlaid with the YAML file at path, or at
// $CODE128_CONFIG if path is empty.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (cfg *config) validate() error {
	if _, err := code128.ParseSubtype(cfg.Set); err != nil {
		return errors.Wrap(err, "set")
	}
	if _, err := code128.ParseFormat(cfg.Format); err != nil {
		return err
	}
	if err := validateOutput(cfg.Output); err != nil {
		return err
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Render.Height < 1 {
		return errors.Errorf("render height must be at least 1, but is %d",
			cfg.Render.Height)
	}
	if cfg.Render.QuietZone < 0 {
		return errors.Errorf("render quiet zone must not be negative, but is %d",
			cfg.Render.QuietZone)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.Wrapf(err, "invalid log level %q", s)
	}
	return level, nil
}
