package mesh

import "gonum.org/v1/gonum/spatial/r3"

// PolygonArea returns the area of the polygon with the given point indices by
// fan triangulation from the first vertex. Polygons with fewer than three
// vertices have zero area. The result is exact for planar convex polygons.
func (m *PolyMesh) PolygonArea(indices []int) float64 {
	if len(indices) < 3 {
		return 0
	}

	p0 := m.Point(indices[0])
	area := 0.0
	for j := 1; j < len(indices)-1; j++ {
		v1 := r3.Sub(m.Point(indices[j]), p0)
		v2 := r3.Sub(m.Point(indices[j+1]), p0)
		area += 0.5 * r3.Norm(r3.Cross(v1, v2))
	}
	return area
}

// Areas returns one area per polygon, in offset order.
func (m *PolyMesh) Areas() []float64 {
	areas := make([]float64, m.NumPolygons())
	for i := range areas {
		areas[i] = m.PolygonArea(m.Polygon(i))
	}
	return areas
}

// TotalArea returns the summed area of all polygons.
func (m *PolyMesh) TotalArea() float64 {
	total := 0.0
	for i := 0; i < m.NumPolygons(); i++ {
		total += m.PolygonArea(m.Polygon(i))
	}
	return total
}
