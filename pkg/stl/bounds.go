package stl

import "github.com/Faultbox/autofoam/pkg/math"

// Box is an axis-aligned bounding box. The zero value is not empty; use
// NewBox to start an accumulation.
type Box struct {
	Min, Max Vertex
}

// NewBox returns an empty box that any vertex will extend.
func NewBox() Box {
	return Box{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Extend grows the box to contain v.
func (b *Box) Extend(v Vertex) {
	b.Min = b.Min.Min(v)
	b.Max = b.Max.Max(v)
}

// Empty reports whether no vertex has been added.
func (b Box) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the extent along each axis.
func (b Box) Size() Vertex {
	if b.Empty() {
		return Vertex{}
	}
	return b.Max.Sub(b.Min)
}

// String formats the box as "minx miny minz maxx maxy maxz".
func (b Box) String() string {
	return b.Min.String() + " " + b.Max.String()
}

// Accumulate extends box with every vertex read from r. Record errors are
// passed to onRecordError (when non-nil) and skipped. It returns the number
// of vertices added and the terminal error, if any.
func Accumulate(box *Box, r VertexReader, onRecordError func(error)) (int, error) {
	count := 0
	for v, err := range Vertices(r) {
		if err != nil {
			if IsRecordError(err) {
				if onRecordError != nil {
					onRecordError(err)
				}
				continue
			}
			return count, err
		}
		box.Extend(v)
		count++
	}
	return count, nil
}
