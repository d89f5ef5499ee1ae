// SPDX-License-Identifier: MIT
// Package: plotart/plotter
//
// dryrun.go - simulated plotter with travel statistics.
//
// Contract:
//   • The pen starts at the origin (0,0), raised.
//   • Execute travels pen-up to path[0], then traces path pen-down.
//   • Home travels pen-up back to the origin.
//   • Every call fails with ctx.Err() once ctx is done, before moving.
//   • Safe for concurrent use; calls are serialized.

package plotter

import (
	"context"
	"log/slog"
	"sync"

	"github.com/katalvlaran/plotart/canvas"
)

// Stats accumulates what a DryRun has been asked to do.
type Stats struct {
	Paths   int     // paths traced
	Points  int     // points visited with the pen down
	Pauses  int     // operator pauses
	PenDown float64 // millimeters traced with the pen down
	PenUp   float64 // millimeters travelled with the pen up
}

// DryRun simulates a plotter without hardware.
type DryRun struct {
	mu    sync.Mutex
	log   *slog.Logger
	pos   canvas.Point
	stats Stats
}

// NewDryRun returns a DryRun at the origin. A nil logger means slog.Default().
func NewDryRun(log *slog.Logger) *DryRun {
	if log == nil {
		log = slog.Default()
	}

	return &DryRun{log: log.With("component", "plotter")}
}

// Execute moves to the start of path and traces it.
func (d *DryRun) Execute(ctx context.Context, path canvas.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(path) == 0 {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	travel := d.pos.DistanceFrom(path[0])
	trace := path.Length()
	d.stats.Paths++
	d.stats.Points += len(path)
	d.stats.PenUp += travel
	d.stats.PenDown += trace
	d.pos = path[len(path)-1]

	d.log.Debug("trace", "from", path[0], "to", d.pos, "points", len(path),
		"pen_up_mm", travel, "pen_down_mm", trace)

	return nil
}

// Pause records an operator pause and returns immediately.
func (d *DryRun) Pause(ctx context.Context, reason string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.stats.Pauses++
	d.log.Info("pause", "reason", reason, "at", d.pos)

	return nil
}

// Home raises the pen and returns to the origin.
func (d *DryRun) Home(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.stats.PenUp += d.pos.DistanceFrom(canvas.Point{})
	d.pos = canvas.Point{}
	d.log.Debug("home")

	return nil
}

// Position returns the current pen position.
func (d *DryRun) Position() canvas.Point {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.pos
}

// Stats returns a snapshot of the accumulated statistics.
func (d *DryRun) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.stats
}
