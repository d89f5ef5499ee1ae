// SPDX-License-Identifier: MIT
// Package: plotart/curve
//
// nautilus.go - golden-ratio shell: two logarithmic spirals plus crossbeams.
//
// Model:
//   - θᵢ     = i·MaxTheta/Points, i in [0, Points)
//   - r(θ)   = A·φ^(B·θ)·Taper^(θ/MaxTheta)     (inner)
//   - R(θ)   = 1.5·r(θ)                          (outer)
//   - beamᵢ  = quadratic Bézier inner→outer, control point
//     inner + BeamCurvature·(Δy, −Δx), sampled at BeamSegments+1 points.
//
// Density throttle:
//   - A beam is emitted only when the inner endpoint is at least one beam
//     length (|outer − inner|) away from the previously emitted beam's inner
//     endpoint. The threshold is the beam's own length, so spacing grows with
//     the shell.
//
// Clipping:
//   - Spiral samples outside Bounds are skipped.
//   - A beam is only considered when both endpoints are inside Bounds; its
//     interior samples outside Bounds are skipped.
//
// Contract:
//   - A > 0, 0 < Taper ≤ 1, Points ≥ 1, MaxTheta > 0, BeamSegments ≥ 1, all
//     finite (else ErrInvalidParameter).

package curve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/plotart/canvas"
)

// Nautilus returns the inner spiral, outer spiral and crossbeams of the shell
// described by spec.
func Nautilus(spec NautilusSpec, bounds canvas.Bounds) (Shell, error) {
	if err := validateNautilus(spec); err != nil {
		return Shell{}, err
	}

	shell := Shell{
		Inner: make(canvas.Path, 0, spec.Points),
		Outer: make(canvas.Path, 0, spec.Points),
	}

	var (
		lastInner canvas.Point
		haveLast  bool
	)
	for i := 0; i < spec.Points; i++ {
		theta := float64(i) * spec.MaxTheta / float64(spec.Points)
		rInner := spec.A * math.Pow(math.Phi, spec.B*theta) * math.Pow(spec.Taper, theta/spec.MaxTheta)

		inner := canvas.Polar(spec.Center, rInner, theta)
		outer := canvas.Polar(spec.Center, outerShellScale*rInner, theta)

		innerIn, outerIn := bounds.Contains(inner), bounds.Contains(outer)
		if innerIn {
			shell.Inner = append(shell.Inner, inner)
		}
		if outerIn {
			shell.Outer = append(shell.Outer, outer)
		}
		if !innerIn || !outerIn {
			continue
		}

		beamLength := inner.DistanceFrom(outer)
		if haveLast && inner.DistanceFrom(lastInner) < beamLength {
			continue
		}

		beam, err := QuadraticBezier(inner, beamControl(inner, outer, spec.BeamCurvature), outer, spec.BeamSegments)
		if err != nil {
			return Shell{}, fmt.Errorf("%s: beam %d: %w", methodNautilus, i, err)
		}
		shell.Crossbeams = append(shell.Crossbeams, bounds.Filter(beam))
		lastInner, haveLast = inner, true
	}

	return shell, nil
}

func validateNautilus(spec NautilusSpec) error {
	if !finite(spec.Center.X, spec.Center.Y, spec.A, spec.B, spec.Taper, spec.MaxTheta, spec.BeamCurvature) {
		return fmt.Errorf("%s: non-finite spec %+v: %w", methodNautilus, spec, canvas.ErrInvalidParameter)
	}
	if spec.A <= 0 {
		return fmt.Errorf("%s: scale a=%g ≤ 0: %w", methodNautilus, spec.A, canvas.ErrInvalidParameter)
	}
	if spec.Taper <= 0 || spec.Taper > 1 {
		return fmt.Errorf("%s: taper=%g not in (0,1]: %w", methodNautilus, spec.Taper, canvas.ErrInvalidParameter)
	}
	if spec.Points < 1 {
		return fmt.Errorf("%s: points=%d < 1: %w", methodNautilus, spec.Points, canvas.ErrInvalidParameter)
	}
	if spec.MaxTheta <= 0 {
		return fmt.Errorf("%s: max theta=%g ≤ 0: %w", methodNautilus, spec.MaxTheta, canvas.ErrInvalidParameter)
	}
	if spec.BeamSegments < 1 {
		return fmt.Errorf("%s: beam segments=%d < 1: %w", methodNautilus, spec.BeamSegments, canvas.ErrInvalidParameter)
	}

	return nil
}
