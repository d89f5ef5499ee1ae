package painting

import (
	"math"

	"github.com/katalvlaran/plotart/canvas"
	"github.com/katalvlaran/plotart/curve"
)

// Focal point offsets of the shell piece on an A3 sheet, in millimeters.
const (
	focalShiftX = 180.0
	focalShiftY = -40.0
)

// FocalPoint returns the golden-ratio focal point of b used by the shell
// piece: (max.x − max.x/φ + 180, max.y − max.y/φ − 40), clamped into b.
func FocalPoint(b canvas.Bounds) canvas.Point {
	return b.Clamp(canvas.Point{
		X: b.Max.X - b.Max.X/math.Phi + focalShiftX,
		Y: b.Max.Y - b.Max.Y/math.Phi + focalShiftY,
	})
}

// NautilusPiece returns the large shell that covers an A3 sheet from
// center: a=3, b=0.19, taper 0.9, 15000 points over 15π.
func NautilusPiece(center canvas.Point) curve.NautilusSpec {
	spec := curve.DefaultNautilusSpec(center)
	spec.A = 3
	spec.B = 0.19
	spec.Taper = 0.9
	spec.Points = 15000
	spec.MaxTheta = 15 * math.Pi
	spec.BeamCurvature = 0.2

	return spec
}
