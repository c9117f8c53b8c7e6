package vtp

import (
	"encoding/xml"
	"fmt"
	"io"
)

// WriteTable writes a one-row, one-column VTK Table document holding value
// in a Float32 array with the given name.
func WriteTable(w io.Writer, name string, value float32) error {
	a := &dataArray{name: name, typ: Float32, components: 1, floats: []float64{float64(value)}}

	file := xmlFile{
		Type:       "Table",
		Version:    "2.2",
		ByteOrder:  "LittleEndian",
		HeaderType: "UInt64",
		Table: &xmlTable{Pieces: []xmlTablePiece{{
			NumberOfCols: 1,
			NumberOfRows: 1,
			RowData:      xmlRowData{Arrays: []xmlDataArray{a.encodeASCII()}},
		}}},
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(&file); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
