package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotart/canvas"
)

// TestNewBounds_Invalid verifies that empty or inverted rectangles are
// rejected with ErrInvalidParameter.
func TestNewBounds_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                   string
		minX, minY, maxX, maxY float64
	}{
		{"zero width", 5, 5, 5, 95},
		{"zero height", 5, 5, 95, 5},
		{"inverted x", 95, 5, 5, 95},
		{"inverted y", 5, 95, 95, 5},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := canvas.NewBounds(tc.minX, tc.minY, tc.maxX, tc.maxY)
			require.ErrorIs(t, err, canvas.ErrInvalidParameter)
		})
	}
}

// TestFromCanvas checks margin subtraction on every side and rejection of
// margins that collapse the canvas.
func TestFromCanvas(t *testing.T) {
	t.Parallel()

	b, err := canvas.FromCanvas(420, 297, 5)
	require.NoError(t, err)
	assert.Equal(t, canvas.Point{X: 5, Y: 5}, b.Min)
	assert.Equal(t, canvas.Point{X: 415, Y: 292}, b.Max)

	_, err = canvas.FromCanvas(10, 10, 5)
	require.ErrorIs(t, err, canvas.ErrInvalidParameter, "margin equal to half the width leaves nothing")

	_, err = canvas.FromCanvas(-1, 10, 0)
	require.ErrorIs(t, err, canvas.ErrInvalidParameter)

	_, err = canvas.FromCanvas(10, 10, -1)
	require.ErrorIs(t, err, canvas.ErrInvalidParameter)
}

// TestBounds_ContainsInclusive ensures every edge and corner counts as inside.
func TestBounds_ContainsInclusive(t *testing.T) {
	t.Parallel()

	b, err := canvas.NewBounds(0, 0, 100, 100)
	require.NoError(t, err)

	inside := []canvas.Point{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 50}, {X: 50, Y: 100}, {X: 50, Y: 50}}
	for _, p := range inside {
		assert.True(t, b.Contains(p), "%v should be inside", p)
	}
	outside := []canvas.Point{{X: -0.001, Y: 50}, {X: 100.001, Y: 50}, {X: 50, Y: -1}, {X: 50, Y: 101}}
	for _, p := range outside {
		assert.False(t, b.Contains(p), "%v should be outside", p)
	}
}

func TestBounds_Clamp(t *testing.T) {
	t.Parallel()

	b, err := canvas.NewBounds(5, 5, 95, 95)
	require.NoError(t, err)

	assert.Equal(t, canvas.Point{X: 5, Y: 5}, b.Clamp(canvas.Point{X: 0, Y: 0}))
	assert.Equal(t, canvas.Point{X: 95, Y: 40}, b.Clamp(canvas.Point{X: 120, Y: 40}))
	assert.Equal(t, canvas.Point{X: 30, Y: 95}, b.Clamp(canvas.Point{X: 30, Y: 300}))
	assert.Equal(t, canvas.Point{X: 30, Y: 40}, b.Clamp(canvas.Point{X: 30, Y: 40}))
}

// TestBounds_FilterKeepsOrder verifies that Filter drops outside points
// without reordering and never returns nil.
func TestBounds_FilterKeepsOrder(t *testing.T) {
	t.Parallel()

	b, err := canvas.NewBounds(0, 0, 10, 10)
	require.NoError(t, err)

	got := b.Filter([]canvas.Point{{X: 1, Y: 1}, {X: 20, Y: 1}, {X: 2, Y: 2}, {X: -1, Y: 3}, {X: 3, Y: 3}})
	assert.Equal(t, canvas.Path{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}, got)

	empty := b.Filter([]canvas.Point{{X: 20, Y: 20}})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestBounds_Frame(t *testing.T) {
	t.Parallel()

	b, err := canvas.NewBounds(5, 5, 415, 292)
	require.NoError(t, err)

	f := b.Frame()
	require.Len(t, f, 5)
	assert.True(t, f.Closed())
	assert.Equal(t, canvas.Point{X: 415, Y: 5}, f[1])
	assert.Equal(t, canvas.Point{X: 5, Y: 292}, f[3])
	assert.InDelta(t, 2*(410+287), f.Length(), 1e-9)
}
