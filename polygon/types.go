package polygon

import (
	"github.com/jbeda/geom"

	"github.com/katalvlaran/plotart/canvas"
)

const (
	methodGenerate  = "Generate"
	methodFillLines = "FillLines"
	methodCentroid  = "Centroid"

	// minSides is the smallest polygon.
	minSides = 3
	// minRadiusRatio is the lower bound of a vertex radius, relative to R.
	minRadiusRatio = 0.5
)

// Spec describes a random polygon and its fill.
//
// Fields:
//   - Center         - polygon center.
//   - Sides          - vertex count (≥ 3).
//   - CircleDiameter - diameter of the bounding circle (> 0).
//   - BoxWidth       - width of the bounding box (> 0).
//   - BoxHeight      - height of the bounding box (> 0).
//   - BrushSpacing   - distance between fill scanlines (> 0).
type Spec struct {
	Center         canvas.Point
	Sides          int
	CircleDiameter float64
	BoxWidth       float64
	BoxHeight      float64
	BrushSpacing   float64
}

// MaxRadius returns min(CircleDiameter/2, BoxWidth/2, BoxHeight/2).
func (s Spec) MaxRadius() float64 {
	r := s.CircleDiameter / 2
	if w := s.BoxWidth / 2; w < r {
		r = w
	}
	if h := s.BoxHeight / 2; h < r {
		r = h
	}

	return r
}

// Polygon is the result of Generate.
//
// Vertices always holds Sides entries in angular order, clipped or not.
// Outline is the in-bounds vertex ring closed on its first retained vertex
// (empty when no vertex is on the canvas). Fill holds two-point horizontal
// segments clipped to Bounds, bottom scanline first.
type Polygon struct {
	Vertices []canvas.Point
	Outline  canvas.Path
	Fill     []canvas.Path
	Centroid canvas.Point
}

// BoundingBox returns the axis-aligned box of the vertices.
// The zero Rect is returned for a polygon without vertices.
func (p Polygon) BoundingBox() geom.Rect {
	if len(p.Vertices) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: p.Vertices[0], Max: p.Vertices[0]}
	for _, v := range p.Vertices[1:] {
		r.ExpandToContainCoord(v)
	}

	return r
}
