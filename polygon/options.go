// SPDX-License-Identifier: MIT
// Package: plotart/polygon
//
// options.go - functional options for Generate.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package polygon

import "math/rand"

// Option customizes Generate by mutating a config before generation.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithRand supplies the RNG used for vertex radii.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("polygon: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
