// SPDX-License-Identifier: MIT
// Package: plotart/canvas
//
// errors.go - sentinel errors shared by all generator packages.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER built with formatted parameters at definition site;
//     generators attach context with `%w` and a method tag.
//   • Generators MUST NOT panic on bad input; they return these sentinels.

package canvas

import "errors"

// ErrInvalidParameter indicates a parameter outside its domain: side count < 3,
// ray count < 2, non-positive radius or spacing, and every numeric degeneracy
// (zero denominators) that would otherwise be computed.
// Classification: validation error, raised before any generation starts.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* fix the parameters */ }.
var ErrInvalidParameter = errors.New("canvas: invalid parameter")

// ErrEmptyResult indicates that every candidate point was clipped by Bounds
// and a downstream step cannot proceed without at least one point (closing a
// circle). Generators that can return an empty path do so instead.
// Usage: if errors.Is(err, ErrEmptyResult) { /* nothing to draw */ }.
var ErrEmptyResult = errors.New("canvas: empty result")
