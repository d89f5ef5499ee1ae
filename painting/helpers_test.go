package painting_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotart/canvas"
	"github.com/katalvlaran/plotart/painting"
)

// recorder is a PathExecutor and Pauser that keeps every call in order.
type recorder struct {
	paths  []canvas.Path
	events []string // "path" or "pause:<reason>"
	err    error
	after  func(n int)
}

func (r *recorder) Execute(_ context.Context, path canvas.Path) error {
	r.paths = append(r.paths, path)
	r.events = append(r.events, "path")
	if r.after != nil {
		r.after(len(r.paths))
	}

	return r.err
}

func (r *recorder) Pause(_ context.Context, reason string) error {
	r.events = append(r.events, "pause:"+reason)

	return nil
}

func (r *recorder) pauses(reason string) int {
	n := 0
	for _, e := range r.events {
		if e == "pause:"+reason {
			n++
		}
	}

	return n
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func a3(t *testing.T) canvas.Bounds {
	t.Helper()
	b, err := canvas.FromCanvas(420, 297, 5)
	require.NoError(t, err)

	return b
}

// newPainter wires a recorder as both executor and pauser.
func newPainter(t *testing.T, opts ...painting.Option) (*painting.Painter, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]painting.Option{painting.WithLogger(quiet()), painting.WithPauser(rec)}, opts...)
	p, err := painting.New(a3(t), rec, opts...)
	require.NoError(t, err)

	return p, rec
}
