// Package canvas defines the drawable surface shared by every motif
// generator: points, paths and the margin-trimmed Bounds rectangle.
//
// 🚀 What lives here?
//
//	• Point  - a coordinate pair in millimeters (alias of geom.Coord).
//	• Path   - an ordered, pen-down stroke; order is drawing order.
//	• Bounds - the canvas rectangle after the margin is subtracted.
//
// ✨ Clipping policy:
//
//	Generators never fail because a candidate point lies outside Bounds;
//	they simply omit it. A curve that leaves and re-enters the canvas
//	therefore produces a path with a visible gap. That gap is the intended
//	result and must not be repaired into a continuous clipped curve.
//
// ⚙️ Usage:
//
//	b, err := canvas.FromCanvas(420, 297, 5) // A3, 5 mm margin
//	if err != nil {
//	  // handle ErrInvalidParameter
//	}
//	if b.Contains(canvas.Point{X: 10, Y: 10}) {
//	  // draw it
//	}
//
// Errors:
//
//	ErrInvalidParameter and ErrEmptyResult form the shared taxonomy used by
//	curve, ray and polygon. Branch on them with errors.Is.
package canvas
