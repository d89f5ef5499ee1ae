// Package plotart is a procedural geometry engine for pen plotters: it turns
// a handful of parameters into ordered pen strokes and hands them, one path
// at a time, to a plotter driver.
//
// 🚀 What is plotart?
//
//	A pure-Go library plus a small CLI that brings together:
//		• Canvas primitives: Point, Path and the clipping Bounds
//		• Curves: Archimedean spirals, sampled circles, nautilus shells
//		  with Bézier crossbeams
//		• Ray fans bouncing off the canvas walls
//		• Random star polygons with scanline brush fill and centroid
//		• A Painter that composes randomized pieces behind a PathExecutor
//
// ✨ Why this shape?
//
//   - Generators are pure functions: same spec, same paths, bit for bit
//   - Randomness is injected and seedable, never global
//   - Out-of-bounds points are skipped, never silently repaired
//   - The device is an interface; a dry-run plotter is included
//
// Everything is organized under these packages:
//
//	canvas/   - Point, Path, Bounds and the shared error taxonomy
//	curve/    - Spiral, Circle, Nautilus, QuadraticBezier
//	ray/      - Fan: the bounce tracer
//	polygon/  - Generate, FillLines, Centroid
//	painting/ - Painter, Ranges, PathExecutor, Pauser
//	plotter/  - DryRun and Prompt stand-ins for the device
//	config/   - TOML/YAML configuration
//	cmd/plotart - the command-line front end
//
// ⚙️ Quick start:
//
//	b, _ := canvas.FromCanvas(420, 297, 5)
//	p, _ := painting.New(b, plotter.NewDryRun(nil), painting.WithSeed(42))
//	_ = p.Compose(context.Background())
package plotart
