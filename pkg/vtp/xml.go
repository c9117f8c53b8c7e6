package vtp

import "encoding/xml"

// XML layout of a VTK XML file. Only the elements this package reads or
// writes are modelled; unknown elements are dropped on rewrite. Array
// contents are kept as raw inner XML so they are written back unescaped.

type xmlFile struct {
	XMLName    xml.Name     `xml:"VTKFile"`
	Type       string       `xml:"type,attr"`
	Version    string       `xml:"version,attr,omitempty"`
	ByteOrder  string       `xml:"byte_order,attr,omitempty"`
	HeaderType string       `xml:"header_type,attr,omitempty"`
	Compressor string       `xml:"compressor,attr,omitempty"`
	PolyData   *xmlPolyData `xml:"PolyData,omitempty"`
	Table      *xmlTable    `xml:"Table,omitempty"`
}

type xmlPolyData struct {
	Pieces []xmlPiece `xml:"Piece"`
}

type xmlPiece struct {
	NumberOfPoints int        `xml:"NumberOfPoints,attr"`
	NumberOfVerts  int        `xml:"NumberOfVerts,attr"`
	NumberOfLines  int        `xml:"NumberOfLines,attr"`
	NumberOfStrips int        `xml:"NumberOfStrips,attr"`
	NumberOfPolys  int        `xml:"NumberOfPolys,attr"`
	PointData      *xmlData   `xml:"PointData,omitempty"`
	CellData       *xmlData   `xml:"CellData,omitempty"`
	Points         *xmlArrays `xml:"Points,omitempty"`
	Verts          *xmlArrays `xml:"Verts,omitempty"`
	Lines          *xmlArrays `xml:"Lines,omitempty"`
	Strips         *xmlArrays `xml:"Strips,omitempty"`
	Polys          *xmlArrays `xml:"Polys,omitempty"`
}

type xmlData struct {
	Scalars string         `xml:"Scalars,attr,omitempty"`
	Vectors string         `xml:"Vectors,attr,omitempty"`
	Normals string         `xml:"Normals,attr,omitempty"`
	Tensors string         `xml:"Tensors,attr,omitempty"`
	TCoords string         `xml:"TCoords,attr,omitempty"`
	Arrays  []xmlDataArray `xml:"DataArray"`
}

type xmlArrays struct {
	Arrays []xmlDataArray `xml:"DataArray"`
}

type xmlDataArray struct {
	Type               string `xml:"type,attr"`
	Name               string `xml:"Name,attr,omitempty"`
	NumberOfComponents int    `xml:"NumberOfComponents,attr,omitempty"`
	Format             string `xml:"format,attr"`
	Offset             string `xml:"offset,attr,omitempty"`
	Data               string `xml:",innerxml"`
}

type xmlTable struct {
	Pieces []xmlTablePiece `xml:"Piece"`
}

type xmlTablePiece struct {
	NumberOfCols int        `xml:"NumberOfCols,attr"`
	NumberOfRows int        `xml:"NumberOfRows,attr"`
	RowData      xmlRowData `xml:"RowData"`
}

type xmlRowData struct {
	Arrays []xmlDataArray `xml:"Array"`
}
