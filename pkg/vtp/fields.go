package vtp

import (
	"fmt"
	"slices"
)

// Fields returns the names of the cell fields in attachment order.
func (d *Document) Fields() []string {
	names := make([]string, len(d.cells))
	for i, c := range d.cells {
		names[i] = c.array.name
	}
	return names
}

// FieldExists reports whether a cell field with the given name exists.
func (d *Document) FieldExists(name string) bool {
	return d.find(name) >= 0
}

// Field returns the values of a cell field widened to float64. Only
// Float32 and Float64 fields can be read.
func (d *Document) Field(name string) ([]float64, error) {
	i := d.find(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	values, err := d.cells[i].array.float64s()
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", name, err)
	}
	return values, nil
}

// AddField appends a Float64 cell field with one value per polygon.
func (d *Document) AddField(name string, values []float64) error {
	if d.FieldExists(name) {
		return fmt.Errorf("%w: %q", ErrFieldExists, name)
	}
	if len(values) != d.PolygonCount() {
		return fmt.Errorf("%w: %q has %d values, %d polygons", ErrFieldLength, name, len(values), d.PolygonCount())
	}

	a := &dataArray{
		name:       name,
		typ:        Float64,
		components: 1,
		floats:     append([]float64(nil), values...),
	}
	d.cells = append(d.cells, cellField{raw: a.encodeASCII(), array: a})
	return nil
}

// RemoveField deletes the first cell field with the given name and reports
// whether one was found. Removing an absent field is a no-op.
func (d *Document) RemoveField(name string) bool {
	i := d.find(name)
	if i < 0 {
		return false
	}
	d.cells = slices.Delete(d.cells, i, i+1)

	if data := d.file.PolyData.Pieces[0].CellData; data != nil && data.Scalars == name {
		data.Scalars = ""
	}
	return true
}

func (d *Document) find(name string) int {
	return slices.IndexFunc(d.cells, func(c cellField) bool {
		return c.array.name == name
	})
}
