package curve

import "math"

// finite reports whether none of vals is NaN or ±Inf.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
