// SPDX-License-Identifier: MIT
// Package: plotart/painting
//
// painter.go - Painter and the fixed-parameter painting steps.
//
// Contract:
//   • Each step generates first, then executes paths in drawing order.
//   • ctx.Err() is checked before every path; a cancelled painting stops
//     between two paths.
//   • Empty paths are never sent to the executor.
//   • canvas.ErrEmptyResult from a generator is logged and skipped.

package painting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/plotart/canvas"
	"github.com/katalvlaran/plotart/curve"
	"github.com/katalvlaran/plotart/polygon"
	"github.com/katalvlaran/plotart/ray"
)

const (
	methodNew          = "New"
	methodFrame        = "Frame"
	methodPaintCircle  = "PaintCircle"
	methodPaintSpiral  = "PaintSpiral"
	methodPaintSpread  = "PaintSpread"
	methodPaintPolygon = "PaintPolygon"
	methodPaintShell   = "PaintNautilus"

	// reloadEvery is the number of fill lines painted per brush load.
	reloadEvery = 10
	// reloadRadius and reloadPoints shape the dab traced at the centroid.
	reloadRadius = 2.0
	reloadPoints = 360
)

// Painter drives one drawing on one canvas. It is not safe for concurrent
// use: steps share the executor and the RNG.
type Painter struct {
	bounds canvas.Bounds
	exec   PathExecutor
	pauser Pauser
	rng    *rand.Rand
	log    *slog.Logger
	ranges Ranges
}

// New returns a Painter for bounds that sends paths to exec.
// Defaults: no RNG, slog.Default(), no pauses, DefaultRanges.
func New(bounds canvas.Bounds, exec PathExecutor, opts ...Option) (*Painter, error) {
	if exec == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilExecutor)
	}
	p := &Painter{
		bounds: bounds,
		exec:   exec,
		pauser: noPause{},
		log:    slog.Default(),
		ranges: DefaultRanges(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.ranges.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	return p, nil
}

// Bounds returns the canvas the Painter draws into.
func (p *Painter) Bounds() canvas.Bounds { return p.bounds }

// Frame traces the margin rectangle.
func (p *Painter) Frame(ctx context.Context) error {
	p.log.Info("frame", "min", p.bounds.Min, "max", p.bounds.Max)

	return p.execute(ctx, methodFrame, p.bounds.Frame())
}

// PaintCircle traces the circle described by spec.
// A circle entirely off the canvas is skipped.
func (p *Painter) PaintCircle(ctx context.Context, spec curve.CircleSpec) error {
	p.log.Info("paint circle", "center", spec.Center, "radius", spec.Radius, "points", spec.Points)
	path, err := curve.Circle(spec, p.bounds)
	if errors.Is(err, canvas.ErrEmptyResult) {
		p.log.Warn("circle off canvas, skipped", "center", spec.Center, "radius", spec.Radius)

		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", methodPaintCircle, err)
	}

	return p.execute(ctx, methodPaintCircle, path)
}

// PaintSpiral traces the Archimedean spiral described by spec.
func (p *Painter) PaintSpiral(ctx context.Context, spec curve.SpiralSpec) error {
	p.log.Info("paint spiral", "center", spec.Center, "radius", spec.TotalRadius, "spacing", spec.LineSpacing)
	path, err := curve.Spiral(spec, p.bounds)
	if err != nil {
		return fmt.Errorf("%s: %w", methodPaintSpiral, err)
	}

	return p.execute(ctx, methodPaintSpiral, path)
}

// PaintSpread traces every ray of the fan described by spec.
func (p *Painter) PaintSpread(ctx context.Context, spec ray.Spec) error {
	p.log.Info("paint spread", "origin", spec.Origin, "angle", spec.Angle,
		"rays", spec.Count, "spread", spec.Spread, "bounces", spec.MaxBounces)
	rays, err := ray.Fan(spec, p.bounds)
	if err != nil {
		return fmt.Errorf("%s: %w", methodPaintSpread, err)
	}

	return p.executeAll(ctx, methodPaintSpread, rays)
}

// PaintPolygon generates a random polygon with the Painter's RNG and paints
// its outline and fill, reloading the brush at the centroid before the
// outline and before every 10th fill line. The operator is paused once more
// between the outline and the fill.
func (p *Painter) PaintPolygon(ctx context.Context, spec polygon.Spec) error {
	if p.rng == nil {
		return fmt.Errorf("%s: %w", methodPaintPolygon, ErrNeedRandSource)
	}
	p.log.Info("paint polygon", "center", spec.Center, "sides", spec.Sides,
		"diameter", spec.CircleDiameter, "box_w", spec.BoxWidth, "box_h", spec.BoxHeight,
		"brush", spec.BrushSpacing)
	poly, err := polygon.Generate(spec, p.bounds, polygon.WithRand(p.rng))
	if err != nil {
		return fmt.Errorf("%s: %w", methodPaintPolygon, err)
	}

	if err = p.reload(ctx, poly.Centroid); err != nil {
		return err
	}
	if err = p.execute(ctx, methodPaintPolygon, poly.Outline); err != nil {
		return err
	}
	if err = p.pause(ctx, ReasonDrawingPolygon); err != nil {
		return err
	}
	for i, line := range poly.Fill {
		if i%reloadEvery == 0 {
			if err = p.reload(ctx, poly.Centroid); err != nil {
				return err
			}
		}
		if err = p.execute(ctx, methodPaintPolygon, line); err != nil {
			return err
		}
	}

	return nil
}

// PaintNautilus traces the inner spiral, the outer spiral and then every
// crossbeam of the shell described by spec.
func (p *Painter) PaintNautilus(ctx context.Context, spec curve.NautilusSpec) error {
	p.log.Info("paint nautilus", "center", spec.Center, "a", spec.A, "b", spec.B,
		"taper", spec.Taper, "points", spec.Points, "max_theta", spec.MaxTheta)
	shell, err := curve.Nautilus(spec, p.bounds)
	if err != nil {
		return fmt.Errorf("%s: %w", methodPaintShell, err)
	}
	p.log.Debug("nautilus generated", "inner", len(shell.Inner), "outer", len(shell.Outer),
		"beams", len(shell.Crossbeams))

	return p.executeAll(ctx, methodPaintShell, shell.Paths())
}

// reload pauses for fresh paint and dabs a small circle at c.
func (p *Painter) reload(ctx context.Context, c canvas.Point) error {
	if err := p.pause(ctx, ReasonReloadBrush); err != nil {
		return err
	}
	dab, err := curve.Circle(curve.CircleSpec{Center: c, Radius: reloadRadius, Points: reloadPoints}, p.bounds)
	if errors.Is(err, canvas.ErrEmptyResult) {
		p.log.Warn("reload dab off canvas, skipped", "at", c)

		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: reload: %w", methodPaintPolygon, err)
	}

	return p.execute(ctx, methodPaintPolygon, dab)
}

func (p *Painter) pause(ctx context.Context, reason string) error {
	p.log.Debug("pause", "reason", reason)
	if err := p.pauser.Pause(ctx, reason); err != nil {
		return fmt.Errorf("pause %q: %w", reason, err)
	}

	return nil
}

func (p *Painter) executeAll(ctx context.Context, step string, paths []canvas.Path) error {
	for _, path := range paths {
		if err := p.execute(ctx, step, path); err != nil {
			return err
		}
	}

	return nil
}

// execute hands one path to the executor. Empty paths are skipped.
func (p *Painter) execute(ctx context.Context, step string, path canvas.Path) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", step, err)
	}
	if len(path) == 0 {
		p.log.Warn("empty path skipped", "step", step)

		return nil
	}
	if err := p.exec.Execute(ctx, path); err != nil {
		return fmt.Errorf("%s: execute %d points: %w", step, len(path), err)
	}

	return nil
}
