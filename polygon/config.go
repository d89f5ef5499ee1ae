// SPDX-License-Identifier: MIT
// Package: plotart/polygon
//
// config.go - resolved options for Generate.
//
// Defaults:
//   • rng = nil (Generate refuses to guess a seed)

package polygon

import "math/rand"

type config struct {
	// RNG for vertex radii; nil means "not configured".
	rng *rand.Rand
}

// newConfig applies opts in order; last wins.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
