package stl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Binary STL framing.
const (
	binaryHeaderSize = 80 // opaque header, generally ignored
	normalSize       = 12 // 3 x float32 facet normal
	attributeSize    = 2  // uint16 attribute byte count
)

// BinaryReader yields vertices from a binary STL stream. The header is read
// lazily on the first call to Next. Any short or failed read ends the stream.
type BinaryReader struct {
	r io.Reader

	started   bool
	done      bool
	triangles uint32
	triangle  uint32
	vertex    int
}

// NewBinaryReader returns a reader over a binary STL stream.
func NewBinaryReader(r io.Reader) *BinaryReader {
	return &BinaryReader{r: bufio.NewReader(r)}
}

// TriangleCount returns the triangle count declared in the header. It is
// zero until the header has been read.
func (r *BinaryReader) TriangleCount() uint32 {
	return r.triangles
}

// Next returns the next vertex in file order.
func (r *BinaryReader) Next() (Vertex, error) {
	if r.done {
		return Vertex{}, io.EOF
	}

	if !r.started {
		r.started = true
		if err := r.readHeader(); err != nil {
			return r.fail(err)
		}
	}

	if r.triangle >= r.triangles {
		r.done = true
		return Vertex{}, io.EOF
	}

	if r.vertex == 0 {
		// The attribute count of the previous triangle is skipped together
		// with this triangle's normal so a missing trailer after the last
		// triangle is tolerated.
		skip := int64(normalSize)
		if r.triangle > 0 {
			skip += attributeSize
		}
		if err := r.skip(skip); err != nil {
			return r.fail(fmt.Errorf("triangle %d normal: %w", r.triangle, err))
		}
	}

	var xyz [3]float32
	if err := binary.Read(r.r, binary.LittleEndian, &xyz); err != nil {
		return r.fail(fmt.Errorf("triangle %d vertex %d: %w", r.triangle, r.vertex, truncated(err)))
	}

	r.vertex++
	if r.vertex == 3 {
		r.vertex = 0
		r.triangle++
	}

	return Vertex{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

func (r *BinaryReader) readHeader() error {
	if err := r.skip(binaryHeaderSize); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	if err := binary.Read(r.r, binary.LittleEndian, &r.triangles); err != nil {
		return fmt.Errorf("triangle count: %w", truncated(err))
	}
	return nil
}

func (r *BinaryReader) skip(n int64) error {
	copied, err := io.CopyN(io.Discard, r.r, n)
	if copied < n && (err == nil || errors.Is(err, io.EOF)) {
		return fmt.Errorf("%w: skipped %d of %d bytes", ErrTruncated, copied, n)
	}
	return err
}

func (r *BinaryReader) fail(err error) (Vertex, error) {
	r.done = true
	return Vertex{}, err
}

// truncated maps short reads onto ErrTruncated.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return err
}
