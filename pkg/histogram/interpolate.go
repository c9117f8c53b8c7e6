package histogram

import (
	"math"
	"sort"
)

// flatEpsilon is the rise below which a segment is treated as flat.
const flatEpsilon = 2.220446049250313e-16

// Interpolate evaluates the piecewise-linear curve through (xs[i], ys[i]) at
// x. xs must be non-decreasing and the same length as ys. Targets at or
// below xs[0] return ys[0]; targets at or above the last x return the last y.
// On a flat segment the lower y is returned. Empty or mismatched input
// returns NaN, as does a NaN target.
func Interpolate(xs, ys []float64, x float64) float64 {
	if len(xs) == 0 || len(xs) != len(ys) || math.IsNaN(x) {
		return math.NaN()
	}
	last := len(xs) - 1
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[last] {
		return ys[last]
	}

	i := sort.SearchFloat64s(xs, x)
	x0, x1 := xs[i-1], xs[i]
	y0, y1 := ys[i-1], ys[i]
	if math.Abs(x1-x0) < flatEpsilon {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
