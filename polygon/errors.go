// SPDX-License-Identifier: MIT
// Package: plotart/polygon
//
// errors.go - sentinel errors for the polygon package.
//
// Error policy:
//   • Parameter validation reuses canvas.ErrInvalidParameter.
//   • Only randomness configuration has its own sentinel here.
//   • Callers MUST branch with errors.Is, never on message text.

package polygon

import "errors"

// ErrNeedRandSource indicates that Generate was called without an RNG
// (WithSeed or WithRand must be supplied).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("polygon: rng is required")
