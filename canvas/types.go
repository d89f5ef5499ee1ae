package canvas

import (
	"math"

	"github.com/jbeda/geom"
)

// Point is an (x, y) coordinate in canvas millimeters.
// It is a value type; geom.Coord arithmetic (Plus, Minus, Times,
// DistanceFrom) is available directly on it.
type Point = geom.Coord

// Path is an ordered sequence of points traced with the pen down.
// A closed path repeats its first point at the end.
type Path []Point

// Closed reports whether p has at least two points and ends where it starts.
func (p Path) Closed() bool {
	if len(p) < 2 {
		return false
	}

	return p[0] == p[len(p)-1]
}

// Length returns the polyline length of p in millimeters.
// Complexity: O(len(p)).
func (p Path) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += p[i-1].DistanceFrom(p[i])
	}

	return total
}

// Polar returns center + r·(cos θ, sin θ).
func Polar(center Point, r, theta float64) Point {
	return Point{
		X: center.X + r*math.Cos(theta),
		Y: center.Y + r*math.Sin(theta),
	}
}
