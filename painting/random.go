// SPDX-License-Identifier: MIT
// Package: plotart/painting
//
// random.go - randomized steps and the full composition.
//
// Contract:
//   • Every Random* step requires an RNG (else ErrNeedRandSource).
//   • Real-valued draws are rounded to 2 decimals and kept inside their
//     range; centers of circles, spirals and spreads are drawn in
//     [min(0,Min),Max] so shapes may be clipped; polygon centers are drawn
//     inside Bounds.
//   • Draw order per step is fixed, so a seed reproduces the drawing.
//
// Determinism:
//   • Identical (bounds, ranges, seed) give identical executor calls.

package painting

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/plotart/canvas"
	"github.com/katalvlaran/plotart/curve"
	"github.com/katalvlaran/plotart/polygon"
	"github.com/katalvlaran/plotart/ray"
)

const methodCompose = "Compose"

// RandomCircle paints a circle with radius, center and point count drawn
// from Ranges.
func (p *Painter) RandomCircle(ctx context.Context) error {
	if p.rng == nil {
		return fmt.Errorf("%s: %w", methodPaintCircle, ErrNeedRandSource)
	}
	r := p.ranges
	radius := p.uniform(r.CircleRadius)
	center := canvas.Point{
		X: p.uniform(FloatRange{min(0, p.bounds.Min.X), p.bounds.Max.X}),
		Y: p.uniform(FloatRange{min(0, p.bounds.Min.Y), p.bounds.Max.Y}),
	}

	return p.PaintCircle(ctx, curve.CircleSpec{Center: center, Radius: radius, Points: r.CirclePoints})
}

// RandomSpiral paints a spiral with radius, spacing and an integer center
// drawn from Ranges.
func (p *Painter) RandomSpiral(ctx context.Context) error {
	if p.rng == nil {
		return fmt.Errorf("%s: %w", methodPaintSpiral, ErrNeedRandSource)
	}
	r := p.ranges
	radius := p.uniform(r.SpiralRadius)
	spacing := p.uniform(r.SpiralSpacing)
	center := p.gridPoint()

	return p.PaintSpiral(ctx, curve.SpiralSpec{Center: center, TotalRadius: radius, LineSpacing: spacing})
}

// RandomSpread paints a fan of rays from an integer origin.
func (p *Painter) RandomSpread(ctx context.Context) error {
	if p.rng == nil {
		return fmt.Errorf("%s: %w", methodPaintSpread, ErrNeedRandSource)
	}
	r := p.ranges
	origin := p.gridPoint()
	spec := ray.Spec{
		Origin:     origin,
		Angle:      p.uniform(r.RayAngle),
		Count:      p.intIn(r.RayCount),
		Spread:     float64(p.intIn(r.RaySpread)),
		MaxBounces: p.intIn(r.RayBounces),
	}

	return p.PaintSpread(ctx, spec)
}

// RandomPolygon paints a filled polygon centered inside Bounds.
func (p *Painter) RandomPolygon(ctx context.Context) error {
	if p.rng == nil {
		return fmt.Errorf("%s: %w", methodPaintPolygon, ErrNeedRandSource)
	}
	r := p.ranges
	spec := polygon.Spec{
		Center: canvas.Point{
			X: p.uniform(FloatRange{p.bounds.Min.X, p.bounds.Max.X}),
			Y: p.uniform(FloatRange{p.bounds.Min.Y, p.bounds.Max.Y}),
		},
		Sides:          p.intIn(r.PolygonSides),
		CircleDiameter: p.uniform(r.PolygonDiameter),
		BoxWidth:       p.uniform(r.PolygonBox),
		BoxHeight:      p.uniform(r.PolygonBox),
		BrushSpacing:   r.BrushSpacing,
	}

	return p.PaintPolygon(ctx, spec)
}

// RandomNautilus paints a default nautilus shell at a random center.
func (p *Painter) RandomNautilus(ctx context.Context) error {
	if p.rng == nil {
		return fmt.Errorf("%s: %w", methodPaintShell, ErrNeedRandSource)
	}

	return p.PaintNautilus(ctx, curve.DefaultNautilusSpec(p.gridPoint()))
}

// Compose paints the randomized piece: circles, spirals, spreads, polygons
// and shells, each count drawn from Ranges, with a "change pen" pause after
// every element.
func (p *Painter) Compose(ctx context.Context) error {
	if p.rng == nil {
		return fmt.Errorf("%s: %w", methodCompose, ErrNeedRandSource)
	}
	r := p.ranges
	steps := []struct {
		name  string
		count int
		paint func(context.Context) error
	}{
		{"circles", p.intIn(r.Circles), p.RandomCircle},
		{"spirals", p.intIn(r.Spirals), p.RandomSpiral},
		{"spreads", p.intIn(r.Spreads), p.RandomSpread},
		{"polygons", p.intIn(r.Polygons), p.RandomPolygon},
		{"shells", p.intIn(r.Shells), p.RandomNautilus},
	}
	for _, s := range steps {
		p.log.Info("compose", "element", s.name, "count", s.count)
	}

	for _, s := range steps {
		for i := 0; i < s.count; i++ {
			if err := s.paint(ctx); err != nil {
				return fmt.Errorf("%s: %s #%d: %w", methodCompose, s.name, i+1, err)
			}
			if err := p.pause(ctx, ReasonChangePen); err != nil {
				return fmt.Errorf("%s: %w", methodCompose, err)
			}
		}
	}

	return nil
}

// gridPoint draws an integer point in [min(0,Min.X),Max.X]×[min(0,Min.Y),Max.Y].
// Canvases sitting at the origin keep the [0,max] draw; canvases shifted
// into negative coordinates widen it to their own corner.
func (p *Painter) gridPoint() canvas.Point {
	return canvas.Point{
		X: float64(p.intIn(gridAxis(p.bounds.Min.X, p.bounds.Max.X))),
		Y: float64(p.intIn(gridAxis(p.bounds.Min.Y, p.bounds.Max.Y))),
	}
}

// gridAxis is the integer span [⌊min(0,lo)⌋, ⌊hi⌋]; never inverted since hi ≥ lo.
func gridAxis(lo, hi float64) IntRange {
	return IntRange{int(math.Floor(min(0, lo))), int(math.Floor(hi))}
}

// uniform draws from [rg.Min, rg.Max] rounded to 2 decimals. A rounded value
// that leaves the range is clamped back onto its nearest end.
func (p *Painter) uniform(rg FloatRange) float64 {
	v := rg.Min + p.rng.Float64()*(rg.Max-rg.Min)
	v = math.Round(v*100) / 100

	return min(max(v, rg.Min), rg.Max)
}

// intIn draws from [rg.Min, rg.Max] inclusive.
func (p *Painter) intIn(rg IntRange) int {
	return rg.Min + p.rng.Intn(rg.Max-rg.Min+1)
}
