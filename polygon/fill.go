// SPDX-License-Identifier: MIT
// Package: plotart/polygon
//
// fill.go - scanline fill and vertex centroid.
//
// Contract:
//   - Scanline k sits at y = minY + k·spacing for every y ≤ maxY, so the
//     position of a line never accumulates rounding from the previous one.
//   - An edge contributes when min(y1,y2) ≤ y ≤ max(y1,y2) and y1 ≠ y2.
//     A vertex exactly on a scanline is counted once per adjacent edge.
//   - Intersections are sorted ascending and paired (x0,x1),(x2,x3),...;
//     an odd trailing intersection is dropped.
//
// Complexity:
//   - FillLines: O(S·(E + I log I)) for S scanlines, E edges, I intersections.
//   - Centroid:  O(V).

package polygon

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/plotart/canvas"
)

// FillLines returns the horizontal fill segments of the closed polygon
// through vertices, each a two-point path from left to right.
// No clipping is applied here.
func FillLines(vertices []canvas.Point, spacing float64) ([]canvas.Path, error) {
	if len(vertices) < minSides {
		return nil, fmt.Errorf("%s: %d vertices < min=%d: %w",
			methodFillLines, len(vertices), minSides, canvas.ErrInvalidParameter)
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, fmt.Errorf("%s: spacing %g: %w", methodFillLines, spacing, canvas.ErrInvalidParameter)
	}

	minY, maxY := vertices[0].Y, vertices[0].Y
	for _, v := range vertices[1:] {
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}

	var (
		fill []canvas.Path
		xs   = make([]float64, 0, len(vertices))
	)
	for k := 0; ; k++ {
		y := minY + float64(k)*spacing
		if y > maxY {
			break
		}

		xs = xs[:0]
		for i, a := range vertices {
			b := vertices[(i+1)%len(vertices)]
			if a.Y == b.Y {
				continue
			}
			if (a.Y <= y && y <= b.Y) || (b.Y <= y && y <= a.Y) {
				t := (y - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			fill = append(fill, canvas.Path{{X: xs[i], Y: y}, {X: xs[i+1], Y: y}})
		}
	}

	return fill, nil
}

// Centroid returns the arithmetic mean of vertices.
func Centroid(vertices []canvas.Point) (canvas.Point, error) {
	if len(vertices) == 0 {
		return canvas.Point{}, fmt.Errorf("%s: no vertices: %w", methodCentroid, canvas.ErrInvalidParameter)
	}

	var sum canvas.Point
	for _, v := range vertices {
		sum = sum.Plus(v)
	}

	return sum.Times(1 / float64(len(vertices))), nil
}
