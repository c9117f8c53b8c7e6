// Package stl streams vertices out of STL (stereolithography) files.
//
// Both the text ("solid ...") and the binary encoding are supported. The
// encoding is detected from the first five bytes of the input and never has
// to be specified by the caller.
package stl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/Faultbox/autofoam/pkg/math"
)

// STL stream errors.
var (
	ErrTruncated         = errors.New("truncated STL data")
	ErrIncompleteVertex  = errors.New("incomplete vertex coordinate")
	ErrInvalidCoordinate = errors.New("invalid vertex coordinate")
)

// textMagic marks a text-encoded STL file.
const textMagic = "solid"

// Vertex is a single STL vertex.
type Vertex = math.Vec3

// Encoding identifies the on-disk STL encoding.
type Encoding int

const (
	EncodingBinary Encoding = iota
	EncodingText
)

// String returns a human-readable encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingBinary:
		return "binary"
	case EncodingText:
		return "text"
	default:
		return fmt.Sprintf("Unknown(%d)", int(e))
	}
}

// VertexReader yields vertices one at a time. Next returns io.EOF once the
// stream is exhausted. Errors wrapping ErrIncompleteVertex or
// ErrInvalidCoordinate concern a single record and the stream may be read
// further; any other error ends the stream.
type VertexReader interface {
	Next() (Vertex, error)
}

// DetectEncoding inspects the first five bytes of rs and restores the cursor
// to where it was before the call.
func DetectEncoding(rs io.ReadSeeker) (Encoding, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return EncodingBinary, fmt.Errorf("locating stream position: %w", err)
	}

	magic := make([]byte, len(textMagic))
	if _, err := io.ReadFull(rs, magic); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return EncodingBinary, fmt.Errorf("%w: reading magic", ErrTruncated)
		}
		return EncodingBinary, fmt.Errorf("reading magic: %w", err)
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return EncodingBinary, fmt.Errorf("restoring stream position: %w", err)
	}

	if bytes.Equal(magic, []byte(textMagic)) {
		return EncodingText, nil
	}
	return EncodingBinary, nil
}

// NewReader detects the encoding of rs and returns the matching reader.
func NewReader(rs io.ReadSeeker) (VertexReader, Encoding, error) {
	enc, err := DetectEncoding(rs)
	if err != nil {
		return nil, enc, err
	}
	if enc == EncodingText {
		return NewTextReader(rs), enc, nil
	}
	return NewBinaryReader(rs), enc, nil
}

// IsRecordError reports whether err concerns a single text record, after
// which reading may continue.
func IsRecordError(err error) bool {
	return errors.Is(err, ErrIncompleteVertex) || errors.Is(err, ErrInvalidCoordinate)
}

// Vertices adapts r into a range-over-func sequence. Record errors are
// yielded in place and iteration continues; a terminal error is yielded
// once and ends the sequence.
func Vertices(r VertexReader) iter.Seq2[Vertex, error] {
	return func(yield func(Vertex, error) bool) {
		for {
			v, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(v, err) {
				return
			}
			if err != nil && !IsRecordError(err) {
				return
			}
		}
	}
}
