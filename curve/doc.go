// Package curve generates closed-form curves as ordered point sequences:
// Archimedean spirals, sampled circles and the logarithmic "nautilus" shell
// with Bézier crossbeams.
//
// Every generator is a pure, deterministic function of its spec and the
// canvas.Bounds it draws into. Points falling outside Bounds are skipped,
// never clipped or truncated, so a curve that re-enters the canvas resumes
// where it comes back in.
//
// ⚙️ Usage:
//
//	b, _ := canvas.FromCanvas(420, 297, 5)
//
//	spiral, err := curve.Spiral(curve.SpiralSpec{
//	  Center:      canvas.Point{X: 80, Y: 180},
//	  TotalRadius: 40,
//	  LineSpacing: 2,
//	}, b)
//
//	circle, err := curve.Circle(curve.CircleSpec{
//	  Center: canvas.Point{X: 150, Y: 150},
//	  Radius: 20,
//	  Points: 360,
//	}, b)
//
//	shell, err := curve.Nautilus(curve.DefaultNautilusSpec(canvas.Point{X: 200, Y: 150}), b)
//
// Errors:
//   - canvas.ErrInvalidParameter - a spec field outside its domain.
//   - canvas.ErrEmptyResult      - Circle retained no point to close the loop.
package curve
