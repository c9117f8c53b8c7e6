package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/Faultbox/autofoam/pkg/histogram"
	"github.com/Faultbox/autofoam/pkg/mesh"
	"github.com/Faultbox/autofoam/pkg/vtp"
)

const tolerance = 1e-12

// testDocument holds a unit square and a triangle of area 0.5.
func testDocument(t *testing.T) *vtp.Document {
	t.Helper()
	points := []float64{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 1, 0,
		2, 0, 0,
	}
	m, err := mesh.New(points, []int{0, 1, 2, 3, 1, 4, 2}, []int{4, 7})
	if err != nil {
		t.Fatalf("mesh.New failed: %v", err)
	}
	return vtp.New(m)
}

func TestAreaThreshold(t *testing.T) {
	values := []float64{1, 2}
	areas := []float64{1, 2}

	tests := []struct {
		target   float64
		expected float64
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{2, 1.5},
		{3, 3},
		{10, 3},
	}

	for _, tt := range tests {
		got, err := AreaThreshold(values, areas, 1, tt.target)
		if err != nil {
			t.Fatalf("AreaThreshold failed: %v", err)
		}
		if math.Abs(got-tt.expected) > tolerance {
			t.Errorf("target %v: expected %v, got %v", tt.target, tt.expected, got)
		}
	}
}

func TestPercentileThreshold(t *testing.T) {
	values := []float64{1, 2}
	areas := []float64{1, 2}

	got, err := PercentileThreshold(values, areas, 1, 50)
	if err != nil {
		t.Fatalf("PercentileThreshold failed: %v", err)
	}
	if math.Abs(got-1.25) > tolerance {
		t.Errorf("expected 1.25, got %v", got)
	}

	got, err = PercentileThreshold(values, areas, 1, 100)
	if err != nil {
		t.Fatalf("PercentileThreshold failed: %v", err)
	}
	if got != 3 {
		t.Errorf("expected last edge 3, got %v", got)
	}
}

func TestPercentileThresholdMonotone(t *testing.T) {
	values := []float64{0.3, 1.7, 0.9, 2.2, 1.1, 0.05}
	areas := []float64{0.5, 1, 0.25, 2, 0, 1.5}

	prev := math.Inf(-1)
	for p := 0.0; p <= 100; p += 2.5 {
		got, err := PercentileThreshold(values, areas, 0.1, p)
		if err != nil {
			t.Fatalf("PercentileThreshold failed: %v", err)
		}
		if got < prev {
			t.Errorf("percentile %v: %v is below previous %v", p, got, prev)
		}
		prev = got
	}
}

func TestThresholdErrors(t *testing.T) {
	if _, err := AreaThreshold(nil, nil, 0.1, 1); !errors.Is(err, histogram.ErrEmptySample) {
		t.Errorf("expected ErrEmptySample, got %v", err)
	}
	if _, err := AreaThreshold([]float64{1}, []float64{1, 2}, 0.1, 1); !errors.Is(err, histogram.ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
	for _, a := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := AreaThreshold([]float64{1}, []float64{1}, 0.1, a); !errors.Is(err, ErrInvalidArea) {
			t.Errorf("area %v: expected ErrInvalidArea, got %v", a, err)
		}
	}
	for _, p := range []float64{-1, 100.5, math.NaN()} {
		if _, err := PercentileThreshold([]float64{1}, []float64{1}, 0.1, p); !errors.Is(err, ErrInvalidPercentile) {
			t.Errorf("percentile %v: expected ErrInvalidPercentile, got %v", p, err)
		}
	}
}

func TestWeightedMean(t *testing.T) {
	mean, err := WeightedMean([]float64{2, 5}, []float64{1, 0.5})
	if err != nil {
		t.Fatalf("WeightedMean failed: %v", err)
	}
	if math.Abs(mean-3) > tolerance {
		t.Errorf("expected 3, got %v", mean)
	}

	if _, err := WeightedMean([]float64{1, 2}, []float64{0, 0}); !errors.Is(err, ErrZeroArea) {
		t.Errorf("expected ErrZeroArea, got %v", err)
	}
	if _, err := WeightedMean([]float64{1}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestDeviation(t *testing.T) {
	dev, err := Deviation([]float64{2, 5}, []float64{1, 0.5}, DefaultEpsilon)
	if err != nil {
		t.Fatalf("Deviation failed: %v", err)
	}
	expected := []float64{-1.0 / 3.0, 2.0 / 3.0}
	for i := range expected {
		if math.Abs(dev[i]-expected[i]) > tolerance {
			t.Errorf("dev[%d]: expected %v, got %v", i, expected[i], dev[i])
		}
	}
}

func TestDeviationZeroMean(t *testing.T) {
	dev, err := Deviation([]float64{-1, 1}, []float64{1, 1}, DefaultEpsilon)
	if err != nil {
		t.Fatalf("Deviation failed: %v", err)
	}
	if math.IsInf(dev[0], 0) || math.IsNaN(dev[0]) {
		t.Errorf("expected finite deviation for zero mean, got %v", dev[0])
	}
	if math.Abs(dev[0]+1e15) > 1 {
		t.Errorf("expected -1e15, got %v", dev[0])
	}
}

func TestWriteDeviation(t *testing.T) {
	doc := testDocument(t)
	if err := doc.AddField("T", []float64{2, 5}); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}

	name, err := WriteDeviation(doc, "T", "_deviation", DefaultEpsilon)
	if err != nil {
		t.Fatalf("WriteDeviation failed: %v", err)
	}
	if name != "T_deviation" {
		t.Errorf("expected T_deviation, got %s", name)
	}

	dev, err := doc.Field(name)
	if err != nil {
		t.Fatalf("Field failed: %v", err)
	}
	if math.Abs(dev[0]+1.0/3.0) > tolerance || math.Abs(dev[1]-2.0/3.0) > tolerance {
		t.Errorf("expected [-1/3 2/3], got %v", dev)
	}

	// A second run replaces the field rather than failing.
	if _, err := WriteDeviation(doc, "T", "_deviation", DefaultEpsilon); err != nil {
		t.Fatalf("second WriteDeviation failed: %v", err)
	}
	fields := doc.Fields()
	if len(fields) != 2 {
		t.Errorf("expected 2 fields, got %v", fields)
	}
}

func TestWriteDeviationErrors(t *testing.T) {
	doc := testDocument(t)
	if _, err := WriteDeviation(doc, "missing", "_deviation", DefaultEpsilon); !errors.Is(err, vtp.ErrFieldNotFound) {
		t.Errorf("expected ErrFieldNotFound, got %v", err)
	}

	m, err := mesh.New([]float64{0, 0, 0, 1, 0, 0, 2, 0, 0}, []int{0, 1, 2}, []int{3})
	if err != nil {
		t.Fatalf("mesh.New failed: %v", err)
	}
	flat := vtp.New(m)
	if err := flat.AddField("T", []float64{1}); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}
	if _, err := WriteDeviation(flat, "T", "_deviation", DefaultEpsilon); !errors.Is(err, ErrZeroArea) {
		t.Errorf("expected ErrZeroArea, got %v", err)
	}
}
