package rosinrammler

import (
	"fmt"
	"math"
)

// Dv90Probability is the cumulative probability defining Dv90.
const Dv90Probability = 0.9

// Options controls the SMD/Dv90 bisection.
type Options struct {
	ShapeMin      float64 // lower bound of the shape bracket
	ShapeMax      float64 // upper bound of the shape bracket
	InitialShape  float64 // first trial shape
	Tolerance     float64 // relative SMD error accepted as converged
	MaxIterations int
	Probability   float64 // cumulative probability pinned at the Dv90 point
}

// DefaultOptions returns the standard calibration settings.
func DefaultOptions() Options {
	return Options{
		ShapeMin:      1.5,
		ShapeMax:      10.0,
		InitialShape:  3.0,
		Tolerance:     0.001,
		MaxIterations: 2000,
		Probability:   Dv90Probability,
	}
}

// Calibration describes how a bisection finished.
type Calibration struct {
	Iterations    int
	Converged     bool
	RelativeError float64
}

// FromSMDAndDv90 calibrates a distribution so that its SMD matches smd while
// its CDF equals 0.9 at dv90, using DefaultOptions.
func FromSMDAndDv90(smd, dv90 float64) (Distribution, error) {
	d, _, err := FromSMDAndDv90WithOptions(smd, dv90, DefaultOptions())
	return d, err
}

// FromSMDAndDv90WithOptions bisects over the shape parameter. Each trial
// shape fixes the scale through the Dv90 constraint; the bracket is narrowed
// by the sign of the SMD error. When the iteration cap is reached the last
// trial is returned with Converged false rather than an error.
func FromSMDAndDv90WithOptions(smd, dv90 float64, opts Options) (Distribution, Calibration, error) {
	if !(smd > 0) {
		return Distribution{}, Calibration{}, fmt.Errorf("%w: smd %v", ErrInvalidTarget, smd)
	}
	if !(dv90 > 0) {
		return Distribution{}, Calibration{}, fmt.Errorf("%w: dv90 %v", ErrInvalidTarget, dv90)
	}
	if !(opts.ShapeMin > 0) || !(opts.ShapeMax > opts.ShapeMin) {
		return Distribution{}, Calibration{}, fmt.Errorf("%w: bracket [%v, %v]", ErrInvalidShape, opts.ShapeMin, opts.ShapeMax)
	}

	lower, upper := opts.ShapeMin, opts.ShapeMax
	shape := opts.InitialShape
	if !(shape > lower && shape < upper) {
		shape = 0.5 * (lower + upper)
	}

	var cal Calibration
	for cal.Iterations < opts.MaxIterations {
		cal.Iterations++

		d, err := FromShapeAndCDF(shape, dv90, opts.Probability)
		if err != nil {
			return Distribution{}, cal, err
		}

		diff := d.SMD() - smd
		cal.RelativeError = math.Abs(diff) / smd
		if cal.RelativeError < opts.Tolerance {
			cal.Converged = true
			return d, cal, nil
		}

		if diff > 0 {
			upper = shape
		} else {
			lower = shape
		}
		shape = 0.5 * (lower + upper)
	}

	d, err := FromShapeAndCDF(shape, dv90, opts.Probability)
	if err != nil {
		return Distribution{}, cal, err
	}
	cal.RelativeError = math.Abs(d.SMD()-smd) / smd
	return d, cal, nil
}
