// Package analysis combines polygon areas with per-polygon scalar fields:
// area-weighted thresholds and normalised deviation fields.
package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Faultbox/autofoam/pkg/histogram"
	"github.com/Faultbox/autofoam/pkg/vtp"
)

// Analysis errors.
var (
	ErrZeroArea          = errors.New("total area is zero")
	ErrLengthMismatch    = errors.New("values and areas differ in length")
	ErrInvalidPercentile = errors.New("percentile must be within [0, 100]")
	ErrInvalidArea       = errors.New("target area must be finite")
)

// DefaultEpsilon keeps the deviation finite when the mean is zero.
const DefaultEpsilon = 1e-15

// AreaThreshold returns the scalar value below which polygons with a
// combined area of target lie, read off the area-weighted histogram of
// values with the given bin width.
func AreaThreshold(values, areas []float64, binWidth, target float64) (float64, error) {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidArea, target)
	}
	h, err := histogram.NewWeighted(values, areas, binWidth)
	if err != nil {
		return 0, err
	}
	return h.ValueAt(target), nil
}

// PercentileThreshold is AreaThreshold with the target given as a
// percentage of the total area.
func PercentileThreshold(values, areas []float64, binWidth, percentile float64) (float64, error) {
	if math.IsNaN(percentile) || percentile < 0 || percentile > 100 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidPercentile, percentile)
	}
	h, err := histogram.NewWeighted(values, areas, binWidth)
	if err != nil {
		return 0, err
	}
	return h.ValueAtFraction(percentile / 100), nil
}

// WeightedMean returns the area-weighted mean of values.
func WeightedMean(values, areas []float64) (float64, error) {
	if len(values) != len(areas) {
		return 0, fmt.Errorf("%w: %d values, %d areas", ErrLengthMismatch, len(values), len(areas))
	}
	total := floats.Sum(areas)
	if total == 0 {
		return 0, ErrZeroArea
	}
	return floats.Dot(values, areas) / total, nil
}

// Deviation returns (v - m) / (|m| + epsilon) for each value, where m is
// the area-weighted mean.
func Deviation(values, areas []float64, epsilon float64) ([]float64, error) {
	mean, err := WeightedMean(values, areas)
	if err != nil {
		return nil, err
	}

	denom := math.Abs(mean) + epsilon
	dev := make([]float64, len(values))
	for i, v := range values {
		dev[i] = (v - mean) / denom
	}
	return dev, nil
}

// WriteDeviation computes the deviation of a cell field and stores it in the
// document as field+suffix, replacing an existing field of that name. It
// returns the name of the stored field.
func WriteDeviation(doc *vtp.Document, field, suffix string, epsilon float64) (string, error) {
	values, err := doc.Field(field)
	if err != nil {
		return "", err
	}

	dev, err := Deviation(values, doc.Mesh().Areas(), epsilon)
	if err != nil {
		return "", fmt.Errorf("field %q: %w", field, err)
	}

	name := field + suffix
	if doc.FieldExists(name) {
		doc.RemoveField(name)
	}
	if err := doc.AddField(name, dev); err != nil {
		return "", err
	}
	return name, nil
}
