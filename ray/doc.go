// Package ray traces a fan of rays bouncing off the canvas walls.
//
// 🚀 What is a fan?
//
//	Count rays leave a common origin, their directions spread evenly over
//	Spread degrees and centered on Angle. Each ray travels in a straight
//	line until it meets a wall of canvas.Bounds, reflects like light off a
//	mirror, and continues for at most MaxBounces reflections.
//
// ✨ Properties:
//   - every ray starts at the origin clamped into Bounds;
//   - every later point lies exactly on a wall (the hit coordinate is
//     snapped to the wall, only the other axis carries rounding);
//   - MaxBounces = 0 yields single-point rays.
//
// ⚙️ Usage:
//
//	rays, err := ray.Fan(ray.Spec{
//	  Origin:     canvas.Point{X: 70, Y: 40},
//	  Angle:      40,
//	  Count:      5,
//	  Spread:     3,
//	  MaxBounces: 1,
//	}, bounds)
//
// Errors:
//   - canvas.ErrInvalidParameter - Count < 2, Spread < 0, MaxBounces < 0 or
//     non-finite inputs.
package ray
