package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotart/canvas"
	"github.com/katalvlaran/plotart/curve"
)

const eps = 1e-9

// a3 returns A3 bounds with the 5 mm margin used across the tests.
func a3(t *testing.T) canvas.Bounds {
	t.Helper()
	b, err := canvas.FromCanvas(420, 297, 5)
	require.NoError(t, err)

	return b
}

// TestSpiral_InvalidSpec verifies that every out-of-domain field is rejected
// before any point is produced.
func TestSpiral_InvalidSpec(t *testing.T) {
	t.Parallel()

	b := a3(t)
	c := canvas.Point{X: 100, Y: 100}
	cases := []struct {
		name string
		spec curve.SpiralSpec
	}{
		{"zero radius", curve.SpiralSpec{Center: c, TotalRadius: 0, LineSpacing: 1}},
		{"negative radius", curve.SpiralSpec{Center: c, TotalRadius: -5, LineSpacing: 1}},
		{"zero spacing", curve.SpiralSpec{Center: c, TotalRadius: 10, LineSpacing: 0}},
		{"spacing equals radius", curve.SpiralSpec{Center: c, TotalRadius: 10, LineSpacing: 10}},
		{"spacing above radius", curve.SpiralSpec{Center: c, TotalRadius: 10, LineSpacing: 12}},
		{"too many turns", curve.SpiralSpec{Center: c, TotalRadius: 1e20, LineSpacing: 1}},
		{"just over the step cap", curve.SpiralSpec{Center: c, TotalRadius: 25001, LineSpacing: 1}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := curve.Spiral(tc.spec, b)
			require.ErrorIs(t, err, canvas.ErrInvalidParameter)
			assert.Nil(t, p)
		})
	}
}

// TestSpiral_RadiusMonotoneAndBounded checks that the distance from the
// center never decreases and never exceeds the total radius.
func TestSpiral_RadiusMonotoneAndBounded(t *testing.T) {
	t.Parallel()

	spec := curve.SpiralSpec{Center: canvas.Point{X: 80, Y: 180}, TotalRadius: 40, LineSpacing: 2}
	p, err := curve.Spiral(spec, a3(t))
	require.NoError(t, err)

	// 20 loops × 400 steps; the final sample may be dropped by the r > R check.
	require.GreaterOrEqual(t, len(p), 20*400)
	assert.Equal(t, spec.Center, p[0], "sweep starts at r=0")

	prev := 0.0
	for i, pt := range p {
		r := pt.DistanceFrom(spec.Center)
		assert.LessOrEqual(t, r, spec.TotalRadius+eps, "point %d beyond total radius", i)
		assert.GreaterOrEqual(t, r, prev-eps, "radius decreased at %d", i)
		prev = r
	}
	assert.InDelta(t, spec.TotalRadius, prev, 0.01, "sweep reaches the outer turn")
}

// TestSpiral_SkipsOutOfBounds places the spiral across the left margin: the
// result must contain only in-bounds points, and fewer than the full sweep.
func TestSpiral_SkipsOutOfBounds(t *testing.T) {
	t.Parallel()

	b := a3(t)
	spec := curve.SpiralSpec{Center: canvas.Point{X: 5, Y: 100}, TotalRadius: 20, LineSpacing: 4}
	p, err := curve.Spiral(spec, b)
	require.NoError(t, err)
	require.NotEmpty(t, p)
	assert.Less(t, len(p), 5*400)

	for _, pt := range p {
		assert.True(t, b.Contains(pt), "%v escaped bounds", pt)
	}

	// Skipped points leave gaps: some consecutive pair must jump further than
	// an unclipped step ever would.
	maxStep := 0.0
	for i := 1; i < len(p); i++ {
		if d := p[i].DistanceFrom(p[i-1]); d > maxStep {
			maxStep = d
		}
	}
	assert.Greater(t, maxStep, 1.0, "clipped spiral keeps discontinuities")
}

func TestSpiral_EntirelyOffCanvas(t *testing.T) {
	t.Parallel()

	spec := curve.SpiralSpec{Center: canvas.Point{X: -500, Y: -500}, TotalRadius: 20, LineSpacing: 4}
	p, err := curve.Spiral(spec, a3(t))
	require.NoError(t, err, "an empty spiral is not an error")
	assert.NotNil(t, p)
	assert.Empty(t, p)
}

func TestSpiral_Idempotent(t *testing.T) {
	t.Parallel()

	b := a3(t)
	spec := curve.SpiralSpec{Center: canvas.Point{X: 200, Y: 150}, TotalRadius: 33.3, LineSpacing: 2.7}
	p1, err := curve.Spiral(spec, b)
	require.NoError(t, err)
	p2, err := curve.Spiral(spec, b)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

// TestSpiral_HugeSweepNoPanic feeds a radius/spacing ratio far beyond any
// drawable sweep: the call must fail cleanly instead of allocating.
func TestSpiral_HugeSweepNoPanic(t *testing.T) {
	t.Parallel()

	b, err := canvas.NewBounds(0, 0, 100, 100)
	require.NoError(t, err)
	require.NotPanics(t, func() {
		_, err = curve.Spiral(curve.SpiralSpec{
			Center: canvas.Point{X: 50, Y: 50}, TotalRadius: 1e20, LineSpacing: 1,
		}, b)
	})
	require.ErrorIs(t, err, canvas.ErrInvalidParameter)

	// The largest accepted sweep still runs.
	path, err := curve.Spiral(curve.SpiralSpec{
		Center: canvas.Point{X: 50, Y: 50}, TotalRadius: 25000, LineSpacing: 1,
	}, b)
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}
