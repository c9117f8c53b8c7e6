package histogram

import (
	"math"
	"testing"
)

func TestInterpolate(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{10, 20, 30}

	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"first knot", 1, 10},
		{"middle knot", 2, 20},
		{"last knot", 3, 30},
		{"between", 1.5, 15},
		{"between upper", 2.5, 25},
		{"below", 0.5, 10},
		{"above", 3.5, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(xs, ys, tt.x); got != tt.expected {
				t.Errorf("Interpolate(%v) = %v, expected %v", tt.x, got, tt.expected)
			}
		})
	}
}

func TestInterpolate_FlatSegment(t *testing.T) {
	// Cumulative weight stays at 2 across an empty bin.
	xs := []float64{0, 2, 2, 5}
	ys := []float64{0, 1, 2, 3}

	if got := Interpolate(xs, ys, 2); got != 1 {
		t.Errorf("expected lower edge 1 on flat segment, got %v", got)
	}
	if got := Interpolate(xs, ys, 3.5); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("expected 2.5, got %v", got)
	}
	if got := Interpolate(xs, ys, 2.0000001); got < 2 {
		t.Errorf("expected value above the empty bin, got %v", got)
	}
}

func TestInterpolate_Invalid(t *testing.T) {
	if got := Interpolate(nil, nil, 1); !math.IsNaN(got) {
		t.Errorf("expected NaN for empty input, got %v", got)
	}
	if got := Interpolate([]float64{1, 2}, []float64{1}, 1); !math.IsNaN(got) {
		t.Errorf("expected NaN for mismatched input, got %v", got)
	}
	if got := Interpolate([]float64{1, 2}, []float64{1, 2}, math.NaN()); !math.IsNaN(got) {
		t.Errorf("expected NaN for NaN target, got %v", got)
	}
}
