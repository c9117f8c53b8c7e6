// Package histogram builds weighted histograms over scalar samples and inverts
// their cumulative curve to find the value at a target cumulative weight.
package histogram

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Histogram errors.
var (
	ErrEmptySample     = errors.New("cannot create histogram from empty input")
	ErrLengthMismatch  = errors.New("values and weights differ in length")
	ErrInvalidBinWidth = errors.New("bin width must be positive and finite")
	ErrInvalidValue    = errors.New("sample value is not finite")
	ErrInvalidWeight   = errors.New("weight must be non-negative and finite")
	ErrTooManyBins     = errors.New("histogram would exceed the bin limit")
)

// MaxBins bounds the number of bins a single histogram may allocate.
const MaxBins = 1 << 26

// Weighted is an immutable weighted histogram with half-open bins
// [edges[i], edges[i+1]).
type Weighted struct {
	edges   []float64
	heights []float64
	total   float64
}

// NewWeighted bins values into consecutive bins of width binWidth, starting
// at the sample minimum and continuing until the last edge lies above the
// sample maximum. Each value adds its weight to the bin whose lower edge is
// the largest edge not above it.
func NewWeighted(values, weights []float64, binWidth float64) (*Weighted, error) {
	if len(values) == 0 {
		return nil, ErrEmptySample
	}
	if len(values) != len(weights) {
		return nil, fmt.Errorf("%w: %d values, %d weights", ErrLengthMismatch, len(values), len(weights))
	}
	if !(binWidth > 0) || math.IsInf(binWidth, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBinWidth, binWidth)
	}
	for i := range values {
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return nil, fmt.Errorf("%w: values[%d] = %v", ErrInvalidValue, i, values[i])
		}
		if !(weights[i] >= 0) || math.IsInf(weights[i], 0) {
			return nil, fmt.Errorf("%w: weights[%d] = %v", ErrInvalidWeight, i, weights[i])
		}
	}

	lo, hi := floats.Min(values), floats.Max(values)
	if (hi-lo)/binWidth > MaxBins {
		return nil, fmt.Errorf("%w: range %v with width %v", ErrTooManyBins, hi-lo, binWidth)
	}

	edges := []float64{lo}
	for i := 1; edges[len(edges)-1] <= hi; i++ {
		edges = append(edges, lo+float64(i)*binWidth)
	}

	heights := make([]float64, len(edges)-1)
	for i, v := range values {
		bin := sort.Search(len(edges), func(j int) bool { return edges[j] > v }) - 1
		heights[bin] += weights[i]
	}

	return &Weighted{
		edges:   edges,
		heights: heights,
		total:   floats.Sum(weights),
	}, nil
}

// Edges returns a copy of the n+1 ascending bin edges.
func (h *Weighted) Edges() []float64 {
	return append([]float64(nil), h.edges...)
}

// Heights returns a copy of the n bin heights.
func (h *Weighted) Heights() []float64 {
	return append([]float64(nil), h.heights...)
}

// Bins returns the number of bins.
func (h *Weighted) Bins() int {
	return len(h.heights)
}

// Total returns the sum of all input weights.
func (h *Weighted) Total() float64 {
	return h.total
}

// Cumulative returns the running sum of heights in ascending bin order with
// the final total repeated once, so that it has one entry per edge.
func (h *Weighted) Cumulative() []float64 {
	cum := make([]float64, len(h.heights), len(h.edges))
	floats.CumSum(cum, h.heights)
	return append(cum, cum[len(cum)-1])
}

// ValueAt returns the value at which the cumulative weight reaches target.
func (h *Weighted) ValueAt(target float64) float64 {
	return Interpolate(h.Cumulative(), h.edges, target)
}

// ValueAtFraction returns the value at which the cumulative weight reaches
// frac of the total weight.
func (h *Weighted) ValueAtFraction(frac float64) float64 {
	return h.ValueAt(frac * h.total)
}
