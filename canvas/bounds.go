// SPDX-License-Identifier: MIT
// Package: plotart/canvas
//
// bounds.go - the drawable rectangle.
//
// Contract:
//   • Min.X < Max.X and Min.Y < Max.Y (else ErrInvalidParameter).
//   • Contains is inclusive on every edge.
//   • Bounds is read-only once built; it is passed by value.

package canvas

import (
	"fmt"

	"github.com/jbeda/geom"
)

const (
	methodNewBounds  = "NewBounds"
	methodFromCanvas = "FromCanvas"
)

// Bounds is the canvas rectangle after margin subtraction.
// Points outside it are never drawn.
type Bounds struct {
	geom.Rect
}

// NewBounds returns the rectangle [minX,maxX]×[minY,maxY].
func NewBounds(minX, minY, maxX, maxY float64) (Bounds, error) {
	if !(minX < maxX) || !(minY < maxY) {
		return Bounds{}, fmt.Errorf("%s: (%g,%g)-(%g,%g) is empty: %w",
			methodNewBounds, minX, minY, maxX, maxY, ErrInvalidParameter)
	}

	return Bounds{Rect: geom.Rect{
		Min: geom.Coord{X: minX, Y: minY},
		Max: geom.Coord{X: maxX, Y: maxY},
	}}, nil
}

// FromCanvas derives Bounds from a physical canvas of width×height with a
// uniform margin on every side: [margin, width-margin]×[margin, height-margin].
func FromCanvas(width, height, margin float64) (Bounds, error) {
	if width <= 0 || height <= 0 || margin < 0 {
		return Bounds{}, fmt.Errorf("%s: width=%g height=%g margin=%g: %w",
			methodFromCanvas, width, height, margin, ErrInvalidParameter)
	}
	b, err := NewBounds(margin, margin, width-margin, height-margin)
	if err != nil {
		return Bounds{}, fmt.Errorf("%s: margin %g collapses canvas: %w", methodFromCanvas, margin, err)
	}

	return b, nil
}

// Contains reports whether min ≤ p ≤ max on both axes.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Clamp moves p onto the nearest point of b, each axis independently.
func (b Bounds) Clamp(p Point) Point {
	return Point{
		X: clamp(p.X, b.Min.X, b.Max.X),
		Y: clamp(p.Y, b.Min.Y, b.Max.Y),
	}
}

// Filter returns the points of candidates that lie inside b, in order.
// The result is never nil.
func (b Bounds) Filter(candidates []Point) Path {
	out := make(Path, 0, len(candidates))
	for _, p := range candidates {
		if b.Contains(p) {
			out = append(out, p)
		}
	}

	return out
}

// Frame returns the closed rectangle tracing the margin:
// min → (max.x,min.y) → max → (min.x,max.y) → min.
func (b Bounds) Frame() Path {
	return Path{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
		b.Min,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
