// Package painting composes the generators into a drawing and feeds the
// resulting paths, one at a time, to a PathExecutor.
//
// 🚀 What does a Painter do?
//
//	A Painter owns the canvas Bounds, a PathExecutor (the plotter driver)
//	and an optional Pauser (the operator). Each Paint* method runs one
//	generator and hands every non-empty path to the executor in drawing
//	order. Random* methods draw the generator parameters from Ranges using
//	an injected, seedable RNG; Compose runs the whole randomized piece.
//
// ✨ Behavior:
//   - ctx is checked before every path; cancellation lands between paths,
//     never in the middle of one.
//   - Paths emptied by clipping are skipped with a warning, not an error.
//   - Polygons are painted with brush reloads: a pause and a small circle
//     at the centroid before the outline and every 10th fill line, plus a
//     "drawing polygon" pause between the outline and the fill.
//   - Compose pauses with "change pen" after every element.
//
// ⚙️ Usage:
//
//	p, err := painting.New(bounds, plotter.NewDryRun(logger),
//	  painting.WithSeed(42),
//	  painting.WithLogger(logger),
//	)
//	if err != nil { ... }
//	err = p.Compose(ctx)
//
// Errors:
//   - ErrNilExecutor     - New without an executor.
//   - ErrNeedRandSource  - a Random* call without WithSeed/WithRand.
//   - ErrInvalidRange    - Ranges with inverted or out-of-domain bounds.
//   - generator errors (canvas.ErrInvalidParameter) and executor errors are
//     returned wrapped with the painting step.
package painting
