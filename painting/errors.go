// SPDX-License-Identifier: MIT
// Package: plotart/painting
//
// errors.go - sentinel errors for the painting package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Executor and generator errors pass through wrapped with %w.

package painting

import "errors"

// ErrNilExecutor indicates that New was given no PathExecutor.
var ErrNilExecutor = errors.New("painting: path executor is required")

// ErrNeedRandSource indicates that a randomized step ran without an RNG
// (WithSeed or WithRand must be supplied).
var ErrNeedRandSource = errors.New("painting: rng is required")

// ErrInvalidRange indicates Ranges with Min > Max or a bound outside the
// domain of the generator it feeds.
var ErrInvalidRange = errors.New("painting: invalid range")
