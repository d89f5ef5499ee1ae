// SPDX-License-Identifier: MIT
// Package: plotart/painting
//
// ranges.go - parameter ranges for randomized composition.
//
// Contract:
//   • Every range is closed: Min ≤ value ≤ Max.
//   • Validate enforces Min ≤ Max plus the domain of the generator each
//     range feeds, so a valid Ranges never yields an invalid spec.
//   • Lengths are drawn at 0.01 mm resolution, so a length range must
//     start at minLength or above.

package painting

import "fmt"

const (
	methodValidate = "Ranges.Validate"

	// minLength is the smallest drawable length: one draw step of uniform.
	minLength = 0.01
)

// IntRange is a closed integer interval.
type IntRange struct {
	Min int `toml:"min" yaml:"min"`
	Max int `toml:"max" yaml:"max"`
}

// FloatRange is a closed real interval.
type FloatRange struct {
	Min float64 `toml:"min" yaml:"min"`
	Max float64 `toml:"max" yaml:"max"`
}

// Ranges is the composition policy: how many elements of each kind, and
// where their parameters are drawn from. Angles are in degrees, lengths in
// millimeters.
type Ranges struct {
	Circles  IntRange `toml:"circles" yaml:"circles"`
	Spirals  IntRange `toml:"spirals" yaml:"spirals"`
	Spreads  IntRange `toml:"spreads" yaml:"spreads"`
	Polygons IntRange `toml:"polygons" yaml:"polygons"`
	Shells   IntRange `toml:"shells" yaml:"shells"`

	CircleRadius FloatRange `toml:"circle_radius" yaml:"circle_radius"`
	CirclePoints int        `toml:"circle_points" yaml:"circle_points"`

	SpiralRadius  FloatRange `toml:"spiral_radius" yaml:"spiral_radius"`
	SpiralSpacing FloatRange `toml:"spiral_spacing" yaml:"spiral_spacing"`

	RayAngle   FloatRange `toml:"ray_angle" yaml:"ray_angle"`
	RayCount   IntRange   `toml:"ray_count" yaml:"ray_count"`
	RaySpread  IntRange   `toml:"ray_spread" yaml:"ray_spread"`
	RayBounces IntRange   `toml:"ray_bounces" yaml:"ray_bounces"`

	PolygonSides    IntRange   `toml:"polygon_sides" yaml:"polygon_sides"`
	PolygonDiameter FloatRange `toml:"polygon_diameter" yaml:"polygon_diameter"`
	PolygonBox      FloatRange `toml:"polygon_box" yaml:"polygon_box"`
	BrushSpacing    float64    `toml:"brush_spacing" yaml:"brush_spacing"`
}

// DefaultRanges returns the studio's standing composition: 5-10 circles,
// 3-5 spirals, 2-20 ray spreads, no polygons and no shells.
func DefaultRanges() Ranges {
	return Ranges{
		Circles:  IntRange{5, 10},
		Spirals:  IntRange{3, 5},
		Spreads:  IntRange{2, 20},
		Polygons: IntRange{0, 0},
		Shells:   IntRange{0, 0},

		CircleRadius: FloatRange{5, 70},
		CirclePoints: 360,

		SpiralRadius:  FloatRange{10, 50},
		SpiralSpacing: FloatRange{2, 8},

		RayAngle:   FloatRange{0, 360},
		RayCount:   IntRange{3, 10},
		RaySpread:  IntRange{10, 60},
		RayBounces: IntRange{1, 10},

		PolygonSides:    IntRange{6, 36},
		PolygonDiameter: FloatRange{20, 150},
		PolygonBox:      FloatRange{10, 150},
		BrushSpacing:    1,
	}
}

// Validate reports the first range that is inverted or outside the domain
// of its generator.
func (r Ranges) Validate() error {
	ints := []struct {
		name string
		rg   IntRange
		min  int
	}{
		{"circles", r.Circles, 0},
		{"spirals", r.Spirals, 0},
		{"spreads", r.Spreads, 0},
		{"polygons", r.Polygons, 0},
		{"shells", r.Shells, 0},
		{"ray_count", r.RayCount, 2},
		{"ray_spread", r.RaySpread, 0},
		{"ray_bounces", r.RayBounces, 0},
		{"polygon_sides", r.PolygonSides, 3},
	}
	for _, c := range ints {
		if c.rg.Min < c.min || c.rg.Min > c.rg.Max {
			return fmt.Errorf("%s: %s=[%d,%d] (min ≥ %d): %w",
				methodValidate, c.name, c.rg.Min, c.rg.Max, c.min, ErrInvalidRange)
		}
	}

	floats := []struct {
		name string
		rg   FloatRange
	}{
		{"circle_radius", r.CircleRadius},
		{"spiral_radius", r.SpiralRadius},
		{"spiral_spacing", r.SpiralSpacing},
		{"polygon_diameter", r.PolygonDiameter},
		{"polygon_box", r.PolygonBox},
	}
	for _, c := range floats {
		if !(c.rg.Min >= minLength) || c.rg.Min > c.rg.Max {
			return fmt.Errorf("%s: %s=[%g,%g] (min ≥ %g): %w",
				methodValidate, c.name, c.rg.Min, c.rg.Max, minLength, ErrInvalidRange)
		}
	}
	if r.RayAngle.Min > r.RayAngle.Max {
		return fmt.Errorf("%s: ray_angle=[%g,%g]: %w", methodValidate, r.RayAngle.Min, r.RayAngle.Max, ErrInvalidRange)
	}
	// Every drawable spacing must stay below every drawable radius; uniform
	// clamps its rounded draws, so comparing the raw bounds is enough.
	if r.SpiralSpacing.Max >= r.SpiralRadius.Min {
		return fmt.Errorf("%s: spiral_spacing max %g ≥ spiral_radius min %g: %w",
			methodValidate, r.SpiralSpacing.Max, r.SpiralRadius.Min, ErrInvalidRange)
	}
	if r.CirclePoints < 3 {
		return fmt.Errorf("%s: circle_points=%d < 3: %w", methodValidate, r.CirclePoints, ErrInvalidRange)
	}
	if !(r.BrushSpacing > 0) {
		return fmt.Errorf("%s: brush_spacing=%g ≤ 0: %w", methodValidate, r.BrushSpacing, ErrInvalidRange)
	}

	return nil
}
