// SPDX-License-Identifier: MIT
// Package: plotart/curve
//
// circle.go - sampled circle generator.
//
// Contract:
//   - Radius > 0 and Points ≥ 3 (else ErrInvalidParameter).
//   - Samples θᵢ = i·2π/Points for i in [0, Points); samples outside Bounds are skipped.
//   - The first RETAINED sample is appended again to close the loop. When the
//     θ=0 sample was clipped this is not the geometric θ=0 point.
//   - No sample retained ⇒ ErrEmptyResult (nothing to close).

package curve

import (
	"fmt"

	"github.com/katalvlaran/plotart/canvas"
)

// Circle returns the closed, bounds-filtered circle described by spec.
// On success len(path) = retained samples + 1 and path[0] == path[len-1].
func Circle(spec CircleSpec, bounds canvas.Bounds) (canvas.Path, error) {
	if !finite(spec.Center.X, spec.Center.Y, spec.Radius) || spec.Radius <= 0 {
		return nil, fmt.Errorf("%s: radius %g must be finite and > 0: %w", methodCircle, spec.Radius, canvas.ErrInvalidParameter)
	}
	if spec.Points < minCirclePoints {
		return nil, fmt.Errorf("%s: points=%d < min=%d: %w", methodCircle, spec.Points, minCirclePoints, canvas.ErrInvalidParameter)
	}

	step := tau / float64(spec.Points)
	out := make(canvas.Path, 0, spec.Points+1)
	for i := 0; i < spec.Points; i++ {
		p := canvas.Polar(spec.Center, spec.Radius, float64(i)*step)
		if !bounds.Contains(p) {
			continue
		}
		out = append(out, p)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%s: all %d samples around (%g,%g) r=%g clipped: %w",
			methodCircle, spec.Points, spec.Center.X, spec.Center.Y, spec.Radius, canvas.ErrEmptyResult)
	}

	return append(out, out[0]), nil
}
