// Package polygon generates randomized star-shaped polygons and plans their
// brush fill.
//
// 🚀 What is generated?
//
//	Sides vertices sit at equally spaced angles around Center; each vertex
//	draws its own radius uniformly from [R/2, R], where
//	R = min(CircleDiameter/2, BoxWidth/2, BoxHeight/2). Vertices are kept in
//	increasing angular order, so the closed ring never self-intersects.
//
// ✨ Fill plan:
//   - horizontal scanlines from the lowest to the highest vertex, one per
//     BrushSpacing millimeters;
//   - every non-horizontal edge straddling the scanline (endpoints
//     inclusive) contributes one x-intersection;
//   - intersections are sorted and paired (even-odd rule); a trailing odd
//     intersection is dropped;
//   - the centroid is the mean of the vertices, not of the fill.
//
// ⚙️ Usage:
//
//	poly, err := polygon.Generate(polygon.Spec{
//	  Center:         canvas.Point{X: 120, Y: 90},
//	  Sides:          12,
//	  CircleDiameter: 80,
//	  BoxWidth:       100,
//	  BoxHeight:      60,
//	  BrushSpacing:   1,
//	}, bounds, polygon.WithSeed(42))
//
// Randomness is never implicit: Generate fails with ErrNeedRandSource unless
// WithSeed or WithRand is supplied.
//
// Errors:
//   - canvas.ErrInvalidParameter - Sides < 3, non-positive sizes or spacing.
//   - ErrNeedRandSource          - no RNG configured.
package polygon
