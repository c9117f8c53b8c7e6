// Package vtp reads and writes VTK XML PolyData documents (.vtp) holding a
// polygon surface mesh with named per-polygon scalar fields.
//
// Only the first piece of a document is interpreted. Other pieces, point
// data, geometry and untouched cell fields are written back as they were
// read, binary arrays included. Added fields are written as ascii Float64
// arrays.
package vtp

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/autofoam/pkg/mesh"
)

// Document errors.
var (
	ErrFieldNotFound       = errors.New("field not found")
	ErrFieldExists         = errors.New("field already exists")
	ErrFieldLength         = errors.New("field length does not match polygon count")
	ErrUnsupportedType     = errors.New("unsupported data type")
	ErrUnsupportedFormat   = errors.New("unsupported data format")
	ErrUnsupportedTopology = errors.New("unsupported cell topology")
	ErrNoPiece             = errors.New("document has no piece")
	ErrMalformed           = errors.New("malformed document")
)

const (
	fileType    = "PolyData"
	fileVersion = "0.1"
)

// cellField is one named CellData array. raw is what gets written back.
type cellField struct {
	raw   xmlDataArray
	array *dataArray
}

// Document is a loaded PolyData document. A Document is not safe for
// concurrent use.
type Document struct {
	file  xmlFile
	mesh  *mesh.PolyMesh
	cells []cellField
}

// Load reads a document from a file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	doc, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a document from r.
func Decode(r io.Reader) (*Document, error) {
	var file xmlFile
	if err := xml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if file.Type != fileType {
		return nil, fmt.Errorf("%w: file type %q, expected %s", ErrUnsupportedFormat, file.Type, fileType)
	}
	if file.PolyData == nil || len(file.PolyData.Pieces) == 0 {
		return nil, ErrNoPiece
	}

	layout, err := newBinaryLayout(&file)
	if err != nil {
		return nil, err
	}

	doc := &Document{file: file}
	piece := &doc.file.PolyData.Pieces[0]

	if piece.NumberOfVerts > 0 || piece.NumberOfLines > 0 || piece.NumberOfStrips > 0 {
		return nil, fmt.Errorf("%w: piece has %d verts, %d lines, %d strips",
			ErrUnsupportedTopology, piece.NumberOfVerts, piece.NumberOfLines, piece.NumberOfStrips)
	}

	doc.mesh, err = decodeMesh(piece, layout)
	if err != nil {
		return nil, err
	}

	if piece.CellData != nil {
		for _, x := range piece.CellData.Arrays {
			a, err := decodeArray(x, layout)
			if err != nil {
				return nil, fmt.Errorf("cell data: %w", err)
			}
			if want := a.components * doc.mesh.NumPolygons(); a.len() != want {
				return nil, fmt.Errorf("cell data: %w: %q has %d values, expected %d", ErrFieldLength, a.name, a.len(), want)
			}
			doc.cells = append(doc.cells, cellField{raw: x, array: a})
		}
	}

	return doc, nil
}

func decodeMesh(piece *xmlPiece, layout binaryLayout) (*mesh.PolyMesh, error) {
	var points []float64
	if piece.Points != nil && len(piece.Points.Arrays) > 0 {
		a, err := decodeArray(piece.Points.Arrays[0], layout)
		if err != nil {
			return nil, fmt.Errorf("points: %w", err)
		}
		if a.components != 3 {
			return nil, fmt.Errorf("%w: points have %d components", ErrMalformed, a.components)
		}
		if points, err = a.float64s(); err != nil {
			return nil, fmt.Errorf("points: %w", err)
		}
	}
	if len(points) != 3*piece.NumberOfPoints {
		return nil, fmt.Errorf("%w: NumberOfPoints is %d, have %d coordinates", ErrMalformed, piece.NumberOfPoints, len(points))
	}

	var connectivity, offsets []int
	if piece.Polys != nil {
		for _, x := range piece.Polys.Arrays {
			if x.Name != "connectivity" && x.Name != "offsets" {
				continue
			}
			a, err := decodeArray(x, layout)
			if err != nil {
				return nil, fmt.Errorf("polys: %w", err)
			}
			values, err := a.indices()
			if err != nil {
				return nil, fmt.Errorf("polys: %w", err)
			}
			if x.Name == "connectivity" {
				connectivity = values
			} else {
				offsets = values
			}
		}
	}
	if len(offsets) != piece.NumberOfPolys {
		return nil, fmt.Errorf("%w: NumberOfPolys is %d, have %d offsets", ErrMalformed, piece.NumberOfPolys, len(offsets))
	}

	m, err := mesh.New(points, connectivity, offsets)
	if err != nil {
		return nil, fmt.Errorf("polys: %w", err)
	}
	return m, nil
}

// New builds a document around a mesh with no fields.
func New(m *mesh.PolyMesh) *Document {
	points := &dataArray{name: "Points", typ: Float64, components: 3, floats: m.Points()}
	connectivity := &dataArray{name: "connectivity", typ: Int64, components: 1}
	offsets := &dataArray{name: "offsets", typ: Int64, components: 1}
	for _, v := range m.Connectivity() {
		connectivity.ints = append(connectivity.ints, int64(v))
	}
	for _, v := range m.Offsets() {
		offsets.ints = append(offsets.ints, int64(v))
	}

	piece := xmlPiece{
		NumberOfPoints: m.NumPoints(),
		NumberOfPolys:  m.NumPolygons(),
		PointData:      &xmlData{},
		CellData:       &xmlData{},
		Points:         &xmlArrays{Arrays: []xmlDataArray{points.encodeASCII()}},
		Polys:          &xmlArrays{Arrays: []xmlDataArray{connectivity.encodeASCII(), offsets.encodeASCII()}},
	}

	return &Document{
		file: xmlFile{
			Type:      fileType,
			Version:   fileVersion,
			ByteOrder: "LittleEndian",
			PolyData:  &xmlPolyData{Pieces: []xmlPiece{piece}},
		},
		mesh: m,
	}
}

// Mesh returns the geometry of the document.
func (d *Document) Mesh() *mesh.PolyMesh {
	return d.mesh
}

// PointCount returns the number of points.
func (d *Document) PointCount() int {
	return d.mesh.NumPoints()
}

// PolygonCount returns the number of polygons.
func (d *Document) PolygonCount() int {
	return d.mesh.NumPolygons()
}

// Encode writes the document to w.
func (d *Document) Encode(w io.Writer) error {
	piece := &d.file.PolyData.Pieces[0]
	if piece.CellData == nil {
		piece.CellData = &xmlData{}
	}
	arrays := make([]xmlDataArray, 0, len(d.cells))
	for _, c := range d.cells {
		arrays = append(arrays, c.raw)
	}
	piece.CellData.Arrays = arrays

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(&d.file); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// Save writes the document to path, replacing any existing file.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating document: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := d.Encode(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing document: %w", err)
	}
	return f.Close()
}
