package curve

import (
	"fmt"

	"github.com/katalvlaran/plotart/canvas"
)

// QuadraticBezier samples B(t) = (1−t)²·p0 + 2(1−t)t·ctrl + t²·p1 at
// t = k/segments for k = 0..segments, so the path starts at p0, ends at p1
// and has segments+1 points. segments must be ≥ 1.
func QuadraticBezier(p0, ctrl, p1 canvas.Point, segments int) (canvas.Path, error) {
	if segments < 1 {
		return nil, fmt.Errorf("%s: segments=%d < 1: %w", methodBezier, segments, canvas.ErrInvalidParameter)
	}

	out := make(canvas.Path, segments+1)
	for k := 0; k <= segments; k++ {
		out[k] = bezierAt(p0, ctrl, p1, float64(k)/float64(segments))
	}

	return out, nil
}

// bezierAt evaluates the quadratic Bézier at parameter t.
func bezierAt(p0, ctrl, p1 canvas.Point, t float64) canvas.Point {
	u := 1 - t

	return p0.Times(u * u).Plus(ctrl.Times(2 * u * t)).Plus(p1.Times(t * t))
}

// beamControl returns the control point bowing the beam from inner to outer
// sideways: inner + curvature·(Δy, −Δx).
func beamControl(inner, outer canvas.Point, curvature float64) canvas.Point {
	d := outer.Minus(inner)

	return canvas.Point{
		X: inner.X + curvature*d.Y,
		Y: inner.Y - curvature*d.X,
	}
}
