package histogram

import (
	"errors"
	"math"
	"testing"
)

func equalSlices(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			return false
		}
	}
	return true
}

func TestNewWeighted(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		weights  []float64
		width    float64
		edges    []float64
		heights  []float64
	}{
		{"equal weights", []float64{1, 2}, []float64{1, 1}, 1, []float64{1, 2, 3}, []float64{1, 1}},
		{"unequal weights", []float64{1, 2}, []float64{1, 2}, 1, []float64{1, 2, 3}, []float64{1, 2}},
		{"spaced out", []float64{1, 3}, []float64{1, 1}, 1, []float64{1, 2, 3, 4}, []float64{1, 0, 1}},
		{"reversed", []float64{2, 1}, []float64{2, 1}, 1, []float64{1, 2, 3}, []float64{1, 2}},
		{"tightly spaced", []float64{1, 1.2, 1.4, 1.6, 1.8, 2}, []float64{1, 1, 1, 1, 1, 1}, 1, []float64{1, 2, 3}, []float64{5, 1}},
		{"single value", []float64{5}, []float64{2}, 1, []float64{5, 6}, []float64{2}},
		{"negative values", []float64{-2, -1, 0, 1}, []float64{1, 2, 3, 4}, 1, []float64{-2, -1, 0, 1, 2}, []float64{1, 2, 3, 4}},
		{"fractional width", []float64{0, 0.25, 0.5, 0.75}, []float64{1, 1, 1, 1}, 0.5, []float64{0, 0.5, 1}, []float64{2, 2}},
		{"large width", []float64{1, 2, 3, 4, 5}, []float64{1, 1, 1, 1, 1}, 10, []float64{1, 11}, []float64{5}},
		{"different weights", []float64{1, 1.5, 2, 2.5}, []float64{2, 3, 4, 5}, 1, []float64{1, 2, 3}, []float64{5, 9}},
		{"identical values", []float64{5, 5, 5, 5}, []float64{1, 2, 3, 4}, 1, []float64{5, 6}, []float64{10}},
		{"zero weights", []float64{1, 2, 3}, []float64{0, 5, 0}, 1, []float64{1, 2, 3, 4}, []float64{0, 5, 0}},
		{"zeros", []float64{0, 0}, []float64{1, 1}, 1, []float64{0, 1}, []float64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewWeighted(tt.values, tt.weights, tt.width)
			if err != nil {
				t.Fatalf("NewWeighted failed: %v", err)
			}
			if !equalSlices(h.Edges(), tt.edges) {
				t.Errorf("expected edges %v, got %v", tt.edges, h.Edges())
			}
			if !equalSlices(h.Heights(), tt.heights) {
				t.Errorf("expected heights %v, got %v", tt.heights, h.Heights())
			}
			if h.Bins() != len(tt.heights) {
				t.Errorf("expected %d bins, got %d", len(tt.heights), h.Bins())
			}
		})
	}
}

func TestNewWeighted_ConservesWeight(t *testing.T) {
	values := make([]float64, 0, 500)
	weights := make([]float64, 0, 500)
	want := 0.0
	for i := 0; i < 500; i++ {
		v := math.Sin(float64(i)) * 37.3
		w := float64(i%7) * 0.3
		values = append(values, v)
		weights = append(weights, w)
		want += w
	}

	for _, width := range []float64{0.1, 0.7, 3, 100} {
		h, err := NewWeighted(values, weights, width)
		if err != nil {
			t.Fatalf("width %v: NewWeighted failed: %v", width, err)
		}
		sum := 0.0
		for _, height := range h.Heights() {
			sum += height
		}
		if math.Abs(sum-want) > 1e-9 {
			t.Errorf("width %v: heights sum to %v, expected %v", width, sum, want)
		}
		if math.Abs(h.Total()-want) > 1e-9 {
			t.Errorf("width %v: total %v, expected %v", width, h.Total(), want)
		}
	}
}

func TestNewWeighted_EdgeValueGoesUp(t *testing.T) {
	h, err := NewWeighted([]float64{1, 2, 3}, []float64{1, 10, 100}, 1)
	if err != nil {
		t.Fatalf("NewWeighted failed: %v", err)
	}
	// 2 sits on the interior edge between [1,2) and [2,3).
	if want := []float64{1, 10, 100}; !equalSlices(h.Heights(), want) {
		t.Errorf("expected heights %v, got %v", want, h.Heights())
	}
}

func TestNewWeighted_Errors(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		weights  []float64
		width    float64
		expected error
	}{
		{"empty", nil, nil, 1, ErrEmptySample},
		{"mismatch", []float64{1, 2}, []float64{1}, 1, ErrLengthMismatch},
		{"zero width", []float64{1}, []float64{1}, 0, ErrInvalidBinWidth},
		{"negative width", []float64{1}, []float64{1}, -1, ErrInvalidBinWidth},
		{"nan width", []float64{1}, []float64{1}, math.NaN(), ErrInvalidBinWidth},
		{"nan value", []float64{math.NaN()}, []float64{1}, 1, ErrInvalidValue},
		{"inf value", []float64{math.Inf(1)}, []float64{1}, 1, ErrInvalidValue},
		{"negative weight", []float64{1}, []float64{-1}, 1, ErrInvalidWeight},
		{"too many bins", []float64{0, 1e12}, []float64{1, 1}, 1e-3, ErrTooManyBins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWeighted(tt.values, tt.weights, tt.width)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestCumulative(t *testing.T) {
	h, err := NewWeighted([]float64{1, 2, 3}, []float64{1, 2, 3}, 1)
	if err != nil {
		t.Fatalf("NewWeighted failed: %v", err)
	}

	want := []float64{1, 3, 6, 6}
	if got := h.Cumulative(); !equalSlices(got, want) {
		t.Errorf("expected cumulative %v, got %v", want, got)
	}
	if len(h.Cumulative()) != len(h.Edges()) {
		t.Error("cumulative and edges should have equal length")
	}
}

func TestValueAt(t *testing.T) {
	// edges [1 2 3 4], cumulative [1 3 6 6]
	h, err := NewWeighted([]float64{1, 2, 3}, []float64{1, 2, 3}, 1)
	if err != nil {
		t.Fatalf("NewWeighted failed: %v", err)
	}

	tests := []struct {
		target   float64
		expected float64
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{2, 1.5},
		{3, 2},
		{4.5, 2.5},
		{6, 4},
		{100, 4},
	}

	for _, tc := range tests {
		if got := h.ValueAt(tc.target); math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("ValueAt(%v) = %v, expected %v", tc.target, got, tc.expected)
		}
	}

	if got := h.ValueAtFraction(0.5); math.Abs(got-2) > 1e-12 {
		t.Errorf("ValueAtFraction(0.5) = %v, expected 2", got)
	}
	if got := h.ValueAtFraction(1); got != 4 {
		t.Errorf("ValueAtFraction(1) = %v, expected 4", got)
	}
}

func TestValueAt_Monotone(t *testing.T) {
	values := []float64{0.3, 0.35, 1.2, 4.8, 4.9, 5.0, 9.7}
	weights := []float64{2, 0, 1, 3, 0.5, 0, 4}
	h, err := NewWeighted(values, weights, 0.5)
	if err != nil {
		t.Fatalf("NewWeighted failed: %v", err)
	}

	prev := math.Inf(-1)
	for target := -1.0; target <= h.Total()+1; target += 0.01 {
		got := h.ValueAt(target)
		if got < prev {
			t.Fatalf("ValueAt not monotone: ValueAt(%v) = %v < %v", target, got, prev)
		}
		prev = got
	}
}
