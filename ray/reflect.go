// SPDX-License-Identifier: MIT
// Package: plotart/ray
//
// reflect.go - fan-of-rays bounce tracer.
//
// Contract:
//   - Count ≥ 2, Spread ≥ 0, MaxBounces ≥ 0, all inputs finite
//     (else canvas.ErrInvalidParameter).
//   - Ray i leaves at Angle + (i − (n−1)/2)·Spread/(n−1) degrees.
//   - Each bounce advances to the nearest wall in the direction of travel;
//     the hit axis snaps onto the wall, the direction mirrors across it.
//   - A point that drifts outside Bounds is kept and ends that ray.
//
// Complexity:
//   - Time: O(Count·MaxBounces). Space: O(Count·MaxBounces).
//
// Determinism:
//   - Pure function of (spec, bounds).

package ray

import (
	"fmt"
	"math"

	"github.com/katalvlaran/plotart/canvas"
)

// Fan traces spec.Count rays from the clamped origin and returns one path
// per ray, in angular order. Every path starts at the clamped origin.
func Fan(spec Spec, bounds canvas.Bounds) ([]canvas.Path, error) {
	if err := validate(spec); err != nil {
		return nil, err
	}

	origin := bounds.Clamp(spec.Origin)
	n := float64(spec.Count)
	step := spec.Spread / (n - 1)

	rays := make([]canvas.Path, spec.Count)
	for i := range rays {
		deg := spec.Angle + (float64(i)-(n-1)/2)*step
		rays[i] = trace(origin, deg*math.Pi/180, spec.MaxBounces, bounds)
	}

	return rays, nil
}

// trace follows one ray for at most bounces wall hits.
func trace(p canvas.Point, angle float64, bounces int, bounds canvas.Bounds) canvas.Path {
	path := make(canvas.Path, 1, bounces+1)
	path[0] = p

	for k := 0; k < bounces; k++ {
		cos, sin := math.Cos(angle), math.Sin(angle)
		wallX, wallY := bounds.Min.X, bounds.Min.Y
		if cos > 0 {
			wallX = bounds.Max.X
		}
		if sin > 0 {
			wallY = bounds.Max.Y
		}

		tx, ty := distance(wallX-p.X, cos), distance(wallY-p.Y, sin)
		if tx < ty {
			p = canvas.Point{X: wallX, Y: p.Y + tx*sin}
			angle = math.Pi - angle
		} else {
			p = canvas.Point{X: p.X + ty*cos, Y: wallY}
			angle = -angle
		}

		path = append(path, p)
		if !bounds.Contains(p) {
			break
		}
	}

	return path
}

// distance returns the travel parameter to cover gap at rate v;
// a ray parallel to a wall never reaches it.
func distance(gap, v float64) float64 {
	if v == 0 {
		return math.Inf(1)
	}

	return gap / v
}

func validate(spec Spec) error {
	for _, v := range []float64{spec.Origin.X, spec.Origin.Y, spec.Angle, spec.Spread} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: non-finite spec %+v: %w", methodFan, spec, canvas.ErrInvalidParameter)
		}
	}
	if spec.Count < minRays {
		return fmt.Errorf("%s: count=%d < min=%d: %w", methodFan, spec.Count, minRays, canvas.ErrInvalidParameter)
	}
	if spec.Spread < 0 {
		return fmt.Errorf("%s: spread %g < 0: %w", methodFan, spec.Spread, canvas.ErrInvalidParameter)
	}
	if spec.MaxBounces < 0 {
		return fmt.Errorf("%s: max bounces %d < 0: %w", methodFan, spec.MaxBounces, canvas.ErrInvalidParameter)
	}

	return nil
}
