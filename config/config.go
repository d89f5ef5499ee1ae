// SPDX-License-Identifier: MIT
// Package: plotart/config
//
// config.go - configuration model, defaults and validation.
//
// Defaults (an A3 sheet on the studio plotter):
//   • canvas 420×297 mm with a 5 mm margin
//   • seed 0 (the CLI replaces it with the clock unless set)
//   • log level "info", non-interactive pauses
//   • painting.DefaultRanges()

package config

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/plotart/canvas"
	"github.com/katalvlaran/plotart/painting"
)

const (
	methodValidate = "Validate"

	defaultWidth    = 420.0
	defaultHeight   = 297.0
	defaultMargin   = 5.0
	defaultLogLevel = "info"
)

// Canvas is the physical sheet, in millimeters.
type Canvas struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
	Margin float64 `toml:"margin" yaml:"margin"`
}

// Config is the full plotart configuration.
type Config struct {
	Canvas      Canvas          `toml:"canvas" yaml:"canvas"`
	Seed        int64           `toml:"seed" yaml:"seed"`
	LogLevel    string          `toml:"log_level" yaml:"log_level"`
	Interactive bool            `toml:"interactive" yaml:"interactive"`
	Ranges      painting.Ranges `toml:"ranges" yaml:"ranges"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas:   Canvas{Width: defaultWidth, Height: defaultHeight, Margin: defaultMargin},
		LogLevel: defaultLogLevel,
		Ranges:   painting.DefaultRanges(),
	}
}

// Bounds returns the drawable rectangle of the canvas.
func (c Config) Bounds() (canvas.Bounds, error) {
	b, err := canvas.FromCanvas(c.Canvas.Width, c.Canvas.Height, c.Canvas.Margin)
	if err != nil {
		return canvas.Bounds{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return b, nil
}

// Level parses LogLevel ("debug", "info", "warn", "error", any case).
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q: %w", ErrInvalidConfig, c.LogLevel, err)
	}

	return lvl, nil
}

// Validate checks the canvas, the log level and the ranges.
func (c Config) Validate() error {
	if _, err := c.Bounds(); err != nil {
		return fmt.Errorf("%s: %w", methodValidate, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%s: %w", methodValidate, err)
	}
	if err := c.Ranges.Validate(); err != nil {
		return fmt.Errorf("%s: %w: %w", methodValidate, ErrInvalidConfig, err)
	}

	return nil
}
