// SPDX-License-Identifier: MIT
// Package: plotart/config
//
// load.go - decoding from TOML and YAML.
//
// Contract:
//   • Decoding starts from Default(); absent keys keep their defaults.
//   • Unknown keys are errors in both formats.
//   • The decoded Config is validated before it is returned.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	methodParse     = "Parse"
	methodParseYAML = "ParseYAML"
	methodLoad      = "Load"
)

// Parse decodes a TOML document over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w: %w", methodParse, ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", methodParse, err)
	}

	return cfg, nil
}

// ParseYAML decodes a YAML document over Default and validates the result.
// An empty document yields Default.
func ParseYAML(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%s: %w: %w", methodParseYAML, ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", methodParseYAML, err)
	}

	return cfg, nil
}

// Load reads path and decodes it by extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", methodLoad, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return Parse(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Config{}, fmt.Errorf("%s: unknown extension %q: %w", methodLoad, ext, ErrInvalidConfig)
	}
}
