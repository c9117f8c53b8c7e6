// Package mesh models polygonal surface meshes stored as flat point,
// connectivity and offset arrays, and computes per-polygon areas.
package mesh

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh validation errors.
var (
	ErrInvalidPoints  = errors.New("point array length is not a multiple of 3")
	ErrInvalidOffsets = errors.New("invalid polygon offsets")
	ErrInvalidIndex   = errors.New("connectivity index out of range")
)

// PolyMesh is a polygon surface mesh. Points holds 3 coordinates per point.
// Offsets[i] is the exclusive end of polygon i in Connectivity; the last
// offset equals len(Connectivity).
type PolyMesh struct {
	points       []float64
	connectivity []int
	offsets      []int
}

// New validates the arrays and returns a mesh over them. The slices are
// retained, not copied.
func New(points []float64, connectivity, offsets []int) (*PolyMesh, error) {
	if len(points)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrInvalidPoints, len(points))
	}

	prev := 0
	for i, off := range offsets {
		if off < prev {
			return nil, fmt.Errorf("%w: offset %d (%d) is below previous (%d)", ErrInvalidOffsets, i, off, prev)
		}
		prev = off
	}
	if prev != len(connectivity) {
		return nil, fmt.Errorf("%w: last offset %d, connectivity length %d", ErrInvalidOffsets, prev, len(connectivity))
	}

	numPoints := len(points) / 3
	for i, idx := range connectivity {
		if idx < 0 || idx >= numPoints {
			return nil, fmt.Errorf("%w: connectivity[%d] = %d, %d points", ErrInvalidIndex, i, idx, numPoints)
		}
	}

	return &PolyMesh{points: points, connectivity: connectivity, offsets: offsets}, nil
}

// Points returns the flat coordinate array.
func (m *PolyMesh) Points() []float64 { return m.points }

// Connectivity returns the flat point index array.
func (m *PolyMesh) Connectivity() []int { return m.connectivity }

// Offsets returns the per-polygon exclusive end offsets.
func (m *PolyMesh) Offsets() []int { return m.offsets }

// NumPoints returns the number of points.
func (m *PolyMesh) NumPoints() int { return len(m.points) / 3 }

// NumPolygons returns the number of polygons.
func (m *PolyMesh) NumPolygons() int { return len(m.offsets) }

// Point returns point i as a vector.
func (m *PolyMesh) Point(i int) r3.Vec {
	return r3.Vec{X: m.points[3*i], Y: m.points[3*i+1], Z: m.points[3*i+2]}
}

// Polygon returns the point indices of polygon i.
func (m *PolyMesh) Polygon(i int) []int {
	start := 0
	if i > 0 {
		start = m.offsets[i-1]
	}
	return m.connectivity[start:m.offsets[i]]
}
