package curve

import (
	"math"

	"github.com/katalvlaran/plotart/canvas"
)

// Method tags used as error prefixes.
const (
	methodSpiral   = "Spiral"
	methodCircle   = "Circle"
	methodNautilus = "Nautilus"
	methodBezier   = "QuadraticBezier"
)

const (
	tau = 2.0 * math.Pi

	// stepsPerLoop is the angular resolution of Spiral: samples per turn.
	stepsPerLoop = 400

	// maxSpiralSteps caps the sweep of one spiral (25000 turns).
	maxSpiralSteps = 10_000_000

	// spiralPrealloc bounds the capacity reserved before the sweep.
	spiralPrealloc = 1 << 16

	// minCirclePoints is the smallest sample count that still encloses area.
	minCirclePoints = 3

	// outerShellScale is the outer spiral radius relative to the inner one.
	outerShellScale = 1.5
)

// SpiralSpec describes an Archimedean spiral r(θ) = LineSpacing·θ/2π.
//
// Fields:
//   - Center      - spiral origin.
//   - TotalRadius - the sweep stops once r exceeds it (> 0).
//   - LineSpacing - distance between successive turns (0 < LineSpacing < TotalRadius).
type SpiralSpec struct {
	Center      canvas.Point
	TotalRadius float64
	LineSpacing float64
}

// Loops returns TotalRadius / LineSpacing, the number of turns swept.
func (s SpiralSpec) Loops() float64 {
	return s.TotalRadius / s.LineSpacing
}

// CircleSpec describes a circle sampled at Points equally spaced angles.
type CircleSpec struct {
	Center canvas.Point
	Radius float64 // > 0
	Points int     // ≥ 3
}

// NautilusSpec describes two concentric logarithmic spirals joined by
// curved crossbeams.
//
// Inner radius: r(θ) = A·φ^(B·θ)·Taper^(θ/MaxTheta), φ the golden ratio.
// Outer radius: 1.5·r(θ).
//
// Fields:
//   - A             - initial scale (> 0).
//   - B             - growth rate per radian.
//   - Taper         - shrink factor reached at MaxTheta (0 < Taper ≤ 1).
//   - Points        - number of angular samples over [0, MaxTheta) (≥ 1).
//   - MaxTheta      - sweep end in radians (> 0).
//   - BeamCurvature - sideways bow of each crossbeam, relative to its offset.
//   - BeamSegments  - each beam is sampled at BeamSegments+1 points (≥ 1).
type NautilusSpec struct {
	Center        canvas.Point
	A             float64
	B             float64
	Taper         float64
	Points        int
	MaxTheta      float64
	BeamCurvature float64
	BeamSegments  int
}

// Nautilus defaults, matching the shell the plotter scripts draw by default.
const (
	DefaultNautilusA             = 1.0
	DefaultNautilusB             = 0.15
	DefaultNautilusTaper         = 0.9
	DefaultNautilusPoints        = 1000
	DefaultNautilusMaxTheta      = 4 * math.Pi
	DefaultNautilusBeamCurvature = 0.3
	DefaultNautilusBeamSegments  = 19
)

// DefaultNautilusSpec returns the default shell centered at center.
func DefaultNautilusSpec(center canvas.Point) NautilusSpec {
	return NautilusSpec{
		Center:        center,
		A:             DefaultNautilusA,
		B:             DefaultNautilusB,
		Taper:         DefaultNautilusTaper,
		Points:        DefaultNautilusPoints,
		MaxTheta:      DefaultNautilusMaxTheta,
		BeamCurvature: DefaultNautilusBeamCurvature,
		BeamSegments:  DefaultNautilusBeamSegments,
	}
}

// Shell is the output of Nautilus.
type Shell struct {
	Inner      canvas.Path   // inner spiral, sweep order
	Outer      canvas.Path   // outer spiral, sweep order
	Crossbeams []canvas.Path // one path per emitted beam, inner end first
}

// Paths returns the shell in drawing order: inner, outer, then each beam.
// Empty spirals are omitted.
func (s Shell) Paths() []canvas.Path {
	out := make([]canvas.Path, 0, 2+len(s.Crossbeams))
	if len(s.Inner) > 0 {
		out = append(out, s.Inner)
	}
	if len(s.Outer) > 0 {
		out = append(out, s.Outer)
	}

	return append(out, s.Crossbeams...)
}
