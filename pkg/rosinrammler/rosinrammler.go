// Package rosinrammler implements the Rosin-Rammler (Weibull) droplet size
// distribution and its calibration against a Sauter mean diameter and a
// Dv90 percentile diameter.
package rosinrammler

import (
	"errors"
	"fmt"
	"math"

	amath "github.com/Faultbox/autofoam/pkg/math"
)

// Validation errors.
var (
	ErrInvalidShape       = errors.New("shape parameter must be positive")
	ErrInvalidScale       = errors.New("scale parameter must be positive")
	ErrInvalidPoint       = errors.New("point x must be positive")
	ErrInvalidProbability = errors.New("probability must be in the range (0, 1)")
	ErrInvalidTarget      = errors.New("calibration target must be positive")
)

// Distribution is an immutable Rosin-Rammler distribution with
// CDF(x) = 1 - exp(-(x/scale)^shape) for x >= 0.
type Distribution struct {
	shape float64
	scale float64
}

// New returns the distribution with the given shape and scale.
func New(shape, scale float64) (Distribution, error) {
	if !(shape > 0) {
		return Distribution{}, fmt.Errorf("%w, got %v", ErrInvalidShape, shape)
	}
	if !(scale > 0) {
		return Distribution{}, fmt.Errorf("%w, got %v", ErrInvalidScale, scale)
	}
	return Distribution{shape: shape, scale: scale}, nil
}

// FromShapeAndCDF returns the distribution with the given shape whose CDF
// equals p at x.
func FromShapeAndCDF(shape, x, p float64) (Distribution, error) {
	if !(shape > 0) {
		return Distribution{}, fmt.Errorf("%w, got %v", ErrInvalidShape, shape)
	}
	if !(x > 0) {
		return Distribution{}, fmt.Errorf("%w, got %v", ErrInvalidPoint, x)
	}
	if !(p > 0 && p < 1) {
		return Distribution{}, fmt.Errorf("%w, got %v", ErrInvalidProbability, p)
	}
	scale := x / math.Pow(-math.Log1p(-p), 1/shape)
	return New(shape, scale)
}

// Shape returns the shape parameter.
func (d Distribution) Shape() float64 { return d.shape }

// Scale returns the scale (characteristic size) parameter.
func (d Distribution) Scale() float64 { return d.scale }

// Moment returns the k-th raw moment scale^k · Γ(1 + k/shape).
func (d Distribution) Moment(k int) float64 {
	kf := float64(k)
	return math.Pow(d.scale, kf) * amath.Gamma(1+kf/d.shape)
}

// SMD returns the Sauter mean diameter, the ratio of the third to the second
// raw moment.
func (d Distribution) SMD() float64 {
	return d.Moment(3) / d.Moment(2)
}

// CDF returns the cumulative probability at x.
func (d Distribution) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return -math.Expm1(-math.Pow(x/d.scale, d.shape))
}

// Quantile returns the x at which the CDF equals p, for 0 < p < 1.
func (d Distribution) Quantile(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, fmt.Errorf("%w, got %v", ErrInvalidProbability, p)
	}
	return d.scale * math.Pow(-math.Log1p(-p), 1/d.shape), nil
}

// String describes the parameters.
func (d Distribution) String() string {
	return fmt.Sprintf("RosinRammler(shape=%g, scale=%g)", d.shape, d.scale)
}
