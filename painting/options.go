// SPDX-License-Identifier: MIT
// Package: plotart/painting
//
// options.go - functional options for New.
//
// Contract:
//   • Option constructors PANIC on nil collaborators; New and the painting
//     steps never panic.
//   • Later options override earlier ones.

package painting

import (
	"log/slog"
	"math/rand"
)

// Option customizes a Painter before its first step.
type Option func(*Painter)

// WithRand supplies the RNG used by Random* and Compose.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("painting: WithRand(nil)")
	}

	return func(p *Painter) {
		p.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(p *Painter) {
		p.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("painting: WithLogger(nil)")
	}

	return func(p *Painter) {
		p.log = l
	}
}

// WithPauser sets the operator hook used between steps. Panics on nil.
func WithPauser(ps Pauser) Option {
	if ps == nil {
		panic("painting: WithPauser(nil)")
	}

	return func(p *Painter) {
		p.pauser = ps
	}
}

// WithRanges replaces DefaultRanges. The ranges are validated by New.
func WithRanges(r Ranges) Option {
	return func(p *Painter) {
		p.ranges = r
	}
}
