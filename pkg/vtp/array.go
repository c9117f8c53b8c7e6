package vtp

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DataType is a VTK XML numeric type name.
type DataType string

// Supported VTK numeric types.
const (
	Int8    DataType = "Int8"
	UInt8   DataType = "UInt8"
	Int16   DataType = "Int16"
	UInt16  DataType = "UInt16"
	Int32   DataType = "Int32"
	UInt32  DataType = "UInt32"
	Int64   DataType = "Int64"
	UInt64  DataType = "UInt64"
	Float32 DataType = "Float32"
	Float64 DataType = "Float64"
)

// Size returns the size of one value in bytes, or 0 for an unknown type.
func (t DataType) Size() int {
	switch t {
	case Int8, UInt8:
		return 1
	case Int16, UInt16:
		return 2
	case Int32, UInt32, Float32:
		return 4
	case Int64, UInt64, Float64:
		return 8
	default:
		return 0
	}
}

// IsFloat reports whether t is a floating-point type.
func (t DataType) IsFloat() bool {
	return t == Float32 || t == Float64
}

func (t DataType) unsigned() bool {
	return t == UInt8 || t == UInt16 || t == UInt32 || t == UInt64
}

func parseDataType(s string) (DataType, error) {
	t := DataType(s)
	if t.Size() == 0 {
		return "", fmt.Errorf("%w: data type %q", ErrUnsupportedType, s)
	}
	return t, nil
}

// dataArray is a decoded DataArray. Floating-point types keep their values
// in floats, integer types in ints.
type dataArray struct {
	name       string
	typ        DataType
	components int
	floats     []float64
	ints       []int64
}

func (a *dataArray) len() int {
	if a.typ.IsFloat() {
		return len(a.floats)
	}
	return len(a.ints)
}

// float64s widens a floating-point array to float64.
func (a *dataArray) float64s() ([]float64, error) {
	if !a.typ.IsFloat() {
		return nil, fmt.Errorf("%w: %s array %q", ErrUnsupportedType, a.typ, a.name)
	}
	return append([]float64(nil), a.floats...), nil
}

// indices converts an integer array to ints.
func (a *dataArray) indices() ([]int, error) {
	if a.typ.IsFloat() {
		return nil, fmt.Errorf("%w: %s index array %q", ErrUnsupportedType, a.typ, a.name)
	}
	out := make([]int, len(a.ints))
	for i, v := range a.ints {
		out[i] = int(v)
	}
	return out, nil
}

// binaryLayout describes how inline binary arrays are framed.
type binaryLayout struct {
	order      binary.ByteOrder
	headerSize int
	compressed bool
}

func newBinaryLayout(f *xmlFile) (binaryLayout, error) {
	layout := binaryLayout{order: binary.LittleEndian, headerSize: 4}

	switch f.ByteOrder {
	case "", "LittleEndian":
	case "BigEndian":
		layout.order = binary.BigEndian
	default:
		return layout, fmt.Errorf("%w: byte order %q", ErrUnsupportedFormat, f.ByteOrder)
	}

	switch f.HeaderType {
	case "", "UInt32":
	case "UInt64":
		layout.headerSize = 8
	default:
		return layout, fmt.Errorf("%w: header type %q", ErrUnsupportedFormat, f.HeaderType)
	}

	switch f.Compressor {
	case "":
	case "vtkZLibDataCompressor":
		layout.compressed = true
	default:
		return layout, fmt.Errorf("%w: compressor %q", ErrUnsupportedFormat, f.Compressor)
	}

	return layout, nil
}

func decodeArray(x xmlDataArray, layout binaryLayout) (*dataArray, error) {
	typ, err := parseDataType(x.Type)
	if err != nil {
		return nil, fmt.Errorf("array %q: %w", x.Name, err)
	}

	a := &dataArray{name: x.Name, typ: typ, components: max(x.NumberOfComponents, 1)}

	switch x.Format {
	case "ascii":
		err = a.parseASCII(x.Data)
	case "binary":
		var raw []byte
		raw, err = layout.decode(x.Data)
		if err == nil {
			err = a.parseBinary(raw, layout.order)
		}
	default:
		err = fmt.Errorf("%w: array format %q", ErrUnsupportedFormat, x.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("array %q: %w", x.Name, err)
	}

	if a.len()%a.components != 0 {
		return nil, fmt.Errorf("%w: array %q has %d values for %d components", ErrMalformed, a.name, a.len(), a.components)
	}
	return a, nil
}

func (a *dataArray) parseASCII(text string) error {
	fields := strings.Fields(text)
	if a.typ.IsFloat() {
		bits := 64
		if a.typ == Float32 {
			bits = 32
		}
		a.floats = make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, bits)
			if err != nil {
				return fmt.Errorf("%w: value %d: %v", ErrMalformed, i, err)
			}
			a.floats[i] = v
		}
		return nil
	}

	a.ints = make([]int64, len(fields))
	for i, f := range fields {
		var v int64
		var err error
		if a.typ.unsigned() {
			var u uint64
			u, err = strconv.ParseUint(f, 10, 8*a.typ.Size())
			v = int64(u)
		} else {
			v, err = strconv.ParseInt(f, 10, 8*a.typ.Size())
		}
		if err != nil {
			return fmt.Errorf("%w: value %d: %v", ErrMalformed, i, err)
		}
		a.ints[i] = v
	}
	return nil
}

func (a *dataArray) parseBinary(raw []byte, order binary.ByteOrder) error {
	size := a.typ.Size()
	if len(raw)%size != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrMalformed, len(raw), size)
	}
	n := len(raw) / size

	if a.typ.IsFloat() {
		a.floats = make([]float64, n)
	} else {
		a.ints = make([]int64, n)
	}

	for i := 0; i < n; i++ {
		b := raw[i*size : (i+1)*size]
		switch a.typ {
		case Int8:
			a.ints[i] = int64(int8(b[0]))
		case UInt8:
			a.ints[i] = int64(b[0])
		case Int16:
			a.ints[i] = int64(int16(order.Uint16(b)))
		case UInt16:
			a.ints[i] = int64(order.Uint16(b))
		case Int32:
			a.ints[i] = int64(int32(order.Uint32(b)))
		case UInt32:
			a.ints[i] = int64(order.Uint32(b))
		case Int64, UInt64:
			a.ints[i] = int64(order.Uint64(b))
		case Float32:
			a.floats[i] = float64(math.Float32frombits(order.Uint32(b)))
		case Float64:
			a.floats[i] = math.Float64frombits(order.Uint64(b))
		}
	}
	return nil
}

// maxBlockSize caps the uncompressed block size a compressed header may
// declare.
const maxBlockSize = 1 << 30

// decode strips the base64 framing and block header of an inline binary
// array and returns the raw value bytes.
func (l binaryLayout) decode(text string) ([]byte, error) {
	text = strings.Join(strings.Fields(text), "")

	// The first header word is enough to size the full header.
	first, err := decodeBase64Prefix(text, l.headerSize)
	if err != nil {
		return nil, err
	}
	headerLen := l.headerSize
	if l.compressed {
		blocks, err := l.bounded(first, 0, len(text))
		if err != nil {
			return nil, err
		}
		headerLen = (3 + blocks) * l.headerSize
	}

	header, payload, err := splitBase64(text, headerLen)
	if err != nil {
		return nil, err
	}

	if !l.compressed {
		n, err := l.bounded(header, 0, len(payload))
		if err != nil {
			return nil, err
		}
		return payload[:n], nil
	}
	return l.inflate(header, payload)
}

func (l binaryLayout) word(b []byte, i int) uint64 {
	b = b[i*l.headerSize:]
	if l.headerSize == 8 {
		return l.order.Uint64(b)
	}
	return uint64(l.order.Uint32(b))
}

// bounded reads header word i and rejects values above limit.
func (l binaryLayout) bounded(b []byte, i, limit int) (int, error) {
	v := l.word(b, i)
	if limit < 0 || v > uint64(limit) {
		return 0, fmt.Errorf("%w: header word %d is %d, limit %d", ErrMalformed, i, v, max(limit, 0))
	}
	return int(v), nil
}

// inflate decompresses vtkZLibDataCompressor blocks. The header holds the
// block count, the uncompressed block size, the size of the last block and
// one compressed size per block.
func (l binaryLayout) inflate(header, payload []byte) ([]byte, error) {
	blocks, err := l.bounded(header, 0, len(header)/l.headerSize-3)
	if err != nil {
		return nil, err
	}
	blockSize, err := l.bounded(header, 1, maxBlockSize)
	if err != nil {
		return nil, err
	}
	lastSize, err := l.bounded(header, 2, blockSize)
	if err != nil {
		return nil, err
	}
	if lastSize == 0 {
		lastSize = blockSize
	}

	var out []byte
	offset := 0
	for i := 0; i < blocks; i++ {
		size, err := l.bounded(header, 3+i, len(payload)-offset)
		if err != nil {
			return nil, fmt.Errorf("compressed block %d overruns payload: %w", i, err)
		}
		want := blockSize
		if i == blocks-1 {
			want = lastSize
		}

		zr, err := zlib.NewReader(bytes.NewReader(payload[offset : offset+size]))
		if err != nil {
			return nil, fmt.Errorf("%w: block %d: %v", ErrMalformed, i, err)
		}
		block, err := io.ReadAll(io.LimitReader(zr, int64(want)+1))
		zr.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: block %d: %v", ErrMalformed, i, err)
		}
		if len(block) != want {
			return nil, fmt.Errorf("%w: block %d inflates to %d bytes, header declares %d", ErrMalformed, i, len(block), want)
		}
		out = append(out, block...)
		offset += size
	}
	return out, nil
}

// base64Len is the encoded length of n bytes.
func base64Len(n int) int {
	return (n + 2) / 3 * 4
}

func decodeBase64Prefix(text string, n int) ([]byte, error) {
	chunk := base64Len(n)
	if len(text) < chunk {
		return nil, fmt.Errorf("%w: binary data shorter than its header", ErrMalformed)
	}
	b, err := base64.StdEncoding.DecodeString(text[:chunk])
	if err != nil || len(b) < n {
		return nil, fmt.Errorf("%w: invalid base64 header", ErrMalformed)
	}
	return b, nil
}

// splitBase64 separates a header of headerLen bytes from the payload. VTK
// writers encode the header either as its own base64 block (padded) or
// together with the payload; both are accepted.
func splitBase64(text string, headerLen int) ([]byte, []byte, error) {
	chunk := base64Len(headerLen)
	if len(text) < chunk {
		return nil, nil, fmt.Errorf("%w: binary data shorter than its header", ErrMalformed)
	}

	if strings.HasSuffix(text[:chunk], "=") {
		header, err := base64.StdEncoding.DecodeString(text[:chunk])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid base64 header: %v", ErrMalformed, err)
		}
		if len(header) < headerLen {
			return nil, nil, fmt.Errorf("%w: binary header shorter than %d bytes", ErrMalformed, headerLen)
		}
		payload, err := base64.StdEncoding.DecodeString(text[chunk:])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid base64 data: %v", ErrMalformed, err)
		}
		return header, payload, nil
	}

	all, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid base64 data: %v", ErrMalformed, err)
	}
	if len(all) < headerLen {
		return nil, nil, fmt.Errorf("%w: binary data shorter than its header", ErrMalformed)
	}
	return all[:headerLen], all[headerLen:], nil
}

// encodeASCII renders the values as indented rows of ascii text.
func (a *dataArray) encodeASCII() xmlDataArray {
	const perLine = 6
	const indent = "          "

	var sb strings.Builder
	n := a.len()
	for i := 0; i < n; i++ {
		if i%perLine == 0 {
			sb.WriteString("\n")
			sb.WriteString(indent)
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(a.formatValue(i))
	}
	sb.WriteString("\n")
	sb.WriteString(indent[:len(indent)-2])

	x := xmlDataArray{
		Type:   string(a.typ),
		Name:   a.name,
		Format: "ascii",
		Data:   sb.String(),
	}
	if a.components > 1 {
		x.NumberOfComponents = a.components
	}
	return x
}

func (a *dataArray) formatValue(i int) string {
	switch a.typ {
	case Float32:
		return strconv.FormatFloat(a.floats[i], 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(a.floats[i], 'g', -1, 64)
	case UInt64:
		return strconv.FormatUint(uint64(a.ints[i]), 10)
	default:
		return strconv.FormatInt(a.ints[i], 10)
	}
}
