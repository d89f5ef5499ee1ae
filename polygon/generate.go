// SPDX-License-Identifier: MIT
// Package: plotart/polygon
//
// generate.go - random star-shaped polygon with outline and fill.
//
// Contract:
//   - Sides ≥ 3; CircleDiameter, BoxWidth, BoxHeight, BrushSpacing > 0 and
//     finite (else canvas.ErrInvalidParameter).
//   - An RNG must be configured (else ErrNeedRandSource).
//   - Vertex i sits at angle 2π·i/Sides with radius drawn from [R/2, R].
//   - Exactly Sides random draws are consumed, one per vertex, in order.
//
// Complexity:
//   - Time: O(Sides·S) where S is the scanline count. Space: O(Sides + fill).
//
// Determinism:
//   - Identical (spec, bounds, seed) give identical polygons.

package polygon

import (
	"fmt"
	"math"

	"github.com/katalvlaran/plotart/canvas"
)

// Generate builds the polygon described by spec and plans its fill inside
// bounds. Geometry outside bounds is dropped from Outline and Fill only.
func Generate(spec Spec, bounds canvas.Bounds, opts ...Option) (Polygon, error) {
	if err := validate(spec); err != nil {
		return Polygon{}, err
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return Polygon{}, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	maxR := spec.MaxRadius()
	minR := maxR * minRadiusRatio
	step := 2 * math.Pi / float64(spec.Sides)

	vertices := make([]canvas.Point, spec.Sides)
	for i := range vertices {
		r := minR + cfg.rng.Float64()*(maxR-minR)
		vertices[i] = canvas.Polar(spec.Center, r, float64(i)*step)
	}

	fill, err := FillLines(vertices, spec.BrushSpacing)
	if err != nil {
		return Polygon{}, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	centroid, err := Centroid(vertices)
	if err != nil {
		return Polygon{}, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return Polygon{
		Vertices: vertices,
		Outline:  outline(vertices, bounds),
		Fill:     clipFill(fill, bounds),
		Centroid: centroid,
	}, nil
}

// outline returns the in-bounds vertices closed on the first of them.
func outline(vertices []canvas.Point, bounds canvas.Bounds) canvas.Path {
	ring := bounds.Filter(vertices)
	if len(ring) == 0 {
		return ring
	}

	return append(ring, ring[0])
}

// clipFill drops scanlines outside the vertical range of bounds and trims
// the remaining segments to its horizontal range.
func clipFill(fill []canvas.Path, bounds canvas.Bounds) []canvas.Path {
	out := make([]canvas.Path, 0, len(fill))
	for _, seg := range fill {
		y := seg[0].Y
		if y < bounds.Min.Y || y > bounds.Max.Y {
			continue
		}
		x0, x1 := seg[0].X, seg[1].X
		if x1 < bounds.Min.X || x0 > bounds.Max.X {
			continue
		}
		out = append(out, canvas.Path{
			{X: math.Max(x0, bounds.Min.X), Y: y},
			{X: math.Min(x1, bounds.Max.X), Y: y},
		})
	}

	return out
}

func validate(spec Spec) error {
	for _, v := range []float64{
		spec.Center.X, spec.Center.Y,
		spec.CircleDiameter, spec.BoxWidth, spec.BoxHeight, spec.BrushSpacing,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: non-finite spec %+v: %w", methodGenerate, spec, canvas.ErrInvalidParameter)
		}
	}
	if spec.Sides < minSides {
		return fmt.Errorf("%s: sides=%d < min=%d: %w", methodGenerate, spec.Sides, minSides, canvas.ErrInvalidParameter)
	}
	if spec.CircleDiameter <= 0 || spec.BoxWidth <= 0 || spec.BoxHeight <= 0 {
		return fmt.Errorf("%s: diameter=%g box=%gx%g must be > 0: %w",
			methodGenerate, spec.CircleDiameter, spec.BoxWidth, spec.BoxHeight, canvas.ErrInvalidParameter)
	}
	if spec.BrushSpacing <= 0 {
		return fmt.Errorf("%s: brush spacing %g ≤ 0: %w", methodGenerate, spec.BrushSpacing, canvas.ErrInvalidParameter)
	}

	return nil
}
