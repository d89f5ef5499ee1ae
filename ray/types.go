package ray

import "github.com/katalvlaran/plotart/canvas"

const (
	methodFan = "Fan"

	// minRays is the smallest fan: the spread is divided by Count-1.
	minRays = 2
)

// Spec describes a fan of bouncing rays.
//
// Fields:
//   - Origin     - start point; clamped into Bounds before tracing.
//   - Angle      - direction of the fan's center line, degrees.
//   - Count      - number of rays (≥ 2).
//   - Spread     - total angle covered by the fan, degrees (≥ 0).
//   - MaxBounces - wall reflections traced per ray (≥ 0).
type Spec struct {
	Origin     canvas.Point
	Angle      float64
	Count      int
	Spread     float64
	MaxBounces int
}
