package stl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	vertexKeyword = "vertex"
	maxLineLength = 1 << 20
)

// TextReader yields vertices from a text-encoded STL stream. Only lines whose
// first token is exactly "vertex" are considered; all other lines are skipped.
type TextReader struct {
	scanner *bufio.Scanner
	line    int
	done    bool
}

// NewTextReader returns a reader over a text-encoded STL stream.
func NewTextReader(r io.Reader) *TextReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &TextReader{scanner: scanner}
}

// Next returns the next vertex record. Malformed records produce an error
// wrapping ErrIncompleteVertex or ErrInvalidCoordinate and do not end the
// stream.
func (r *TextReader) Next() (Vertex, error) {
	if r.done {
		return Vertex{}, io.EOF
	}

	for r.scanner.Scan() {
		r.line++
		coords, ok := vertexRecord(r.scanner.Text())
		if !ok {
			continue
		}
		v, err := parseVertex(coords)
		if err != nil {
			return Vertex{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return v, nil
	}

	r.done = true
	if err := r.scanner.Err(); err != nil {
		return Vertex{}, fmt.Errorf("reading line %d: %w", r.line+1, err)
	}
	return Vertex{}, io.EOF
}

// vertexRecord returns the text following the "vertex" keyword when the
// keyword is followed by whitespace.
func vertexRecord(line string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), vertexKeyword)
	if !ok {
		return "", false
	}
	first, _ := utf8.DecodeRuneInString(rest)
	if first == utf8.RuneError || !unicode.IsSpace(first) {
		return "", false
	}
	return rest, true
}

func parseVertex(coords string) (Vertex, error) {
	fields := strings.Fields(coords)
	if len(fields) < 3 {
		return Vertex{}, fmt.Errorf("%w: got %d of 3 values", ErrIncompleteVertex, len(fields))
	}

	var xyz [3]float32
	for i := range xyz {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return Vertex{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, fields[i])
		}
		xyz[i] = float32(f)
	}
	return Vertex{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}
