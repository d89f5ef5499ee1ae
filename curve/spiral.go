// SPDX-License-Identifier: MIT
// Package: plotart/curve
//
// spiral.go - Archimedean spiral generator.
//
// Contract:
//   - 0 < LineSpacing < TotalRadius, both finite (else ErrInvalidParameter).
//   - θ sweeps 0 → 2π·loops in N = ⌊loops·400⌋ equal steps, endpoints included.
//   - N above maxSpiralSteps is rejected (ErrInvalidParameter).
//   - The sweep stops at the first sample whose radius exceeds TotalRadius.
//   - Samples outside Bounds are skipped; the sweep itself continues.
//   - The result may be empty; drawing an empty path is a no-op for callers.
//
// Complexity:
//   - Time: O(loops·400). Space: O(retained points).
//
// Determinism:
//   - Pure function of (spec, bounds); identical inputs give identical paths.

package curve

import (
	"fmt"

	"github.com/katalvlaran/plotart/canvas"
)

// Spiral returns the Archimedean spiral described by spec, in sweep order.
// The distance from Center never decreases along the returned path.
func Spiral(spec SpiralSpec, bounds canvas.Bounds) (canvas.Path, error) {
	if !finite(spec.Center.X, spec.Center.Y, spec.TotalRadius, spec.LineSpacing) {
		return nil, fmt.Errorf("%s: non-finite spec %+v: %w", methodSpiral, spec, canvas.ErrInvalidParameter)
	}
	if spec.TotalRadius <= 0 {
		return nil, fmt.Errorf("%s: total radius %g ≤ 0: %w", methodSpiral, spec.TotalRadius, canvas.ErrInvalidParameter)
	}
	if spec.LineSpacing <= 0 || spec.LineSpacing >= spec.TotalRadius {
		return nil, fmt.Errorf("%s: line spacing %g not in (0,%g): %w",
			methodSpiral, spec.LineSpacing, spec.TotalRadius, canvas.ErrInvalidParameter)
	}

	loops := spec.Loops()
	if loops*stepsPerLoop > maxSpiralSteps {
		return nil, fmt.Errorf("%s: %g turns exceed %d steps: %w",
			methodSpiral, loops, maxSpiralSteps, canvas.ErrInvalidParameter)
	}
	maxTheta := tau * loops
	steps := int(loops * stepsPerLoop)
	delta := maxTheta / float64(steps)

	out := make(canvas.Path, 0, min(steps+1, spiralPrealloc))
	var theta, r float64
	for i := 0; i <= steps; i++ {
		theta = float64(i) * delta
		r = spec.LineSpacing * theta / tau
		if r > spec.TotalRadius {
			break
		}
		p := canvas.Polar(spec.Center, r, theta)
		if !bounds.Contains(p) {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}
