package painting

import (
	"context"

	"github.com/katalvlaran/plotart/canvas"
)

// PathExecutor traces one path with the pen down. Travel to the first point
// is the executor's concern (pen up).
type PathExecutor interface {
	Execute(ctx context.Context, path canvas.Path) error
}

// Pauser waits for the operator between steps (change pen, reload brush,
// outline done).
// Returning an error aborts the painting.
type Pauser interface {
	Pause(ctx context.Context, reason string) error
}

// PauserFunc adapts a function to Pauser.
type PauserFunc func(ctx context.Context, reason string) error

// Pause calls f(ctx, reason).
func (f PauserFunc) Pause(ctx context.Context, reason string) error {
	return f(ctx, reason)
}

// noPause continues immediately unless ctx is done.
type noPause struct{}

func (noPause) Pause(ctx context.Context, _ string) error {
	return ctx.Err()
}

// Pause reasons passed to the Pauser.
const (
	ReasonChangePen      = "change pen"
	ReasonReloadBrush    = "reload brush"
	ReasonDrawingPolygon = "drawing polygon"
)
