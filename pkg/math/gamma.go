package math

import "math"

// stirlingShift is the argument above which the asymptotic series is used directly.
const stirlingShift = 20.0

// Gamma evaluates the gamma function for z > 0 with Stirling's asymptotic
// series. Arguments below the shift point are lifted with the recurrence
// Γ(z) = Γ(z+1)/z. Non-positive arguments return +Inf.
func Gamma(z float64) float64 {
	if z <= 0 || math.IsNaN(z) {
		return math.Inf(1)
	}
	if z < stirlingShift {
		return Gamma(z+1) / z
	}
	return stirling(z)
}

// stirling is sqrt(2π/z)·(z/e)^z with the first four correction terms.
func stirling(z float64) float64 {
	inv := 1 / z
	series := 1 + inv*(1.0/12+inv*(1.0/288+inv*(-139.0/51840+inv*(-571.0/2488320))))
	return math.Sqrt(2*math.Pi/z) * math.Pow(z/math.E, z) * series
}
