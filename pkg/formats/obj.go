package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrFileNotFound         = errors.New("file not found")
	ErrFileUnreadable       = errors.New("file unreadable")
	ErrMalformedRecord      = errors.New("malformed record")
	ErrUnsupportedFaceArity = errors.New("unsupported face arity: only triangles are supported")
	ErrIndexOutOfRange      = errors.New("index out of range")
)

// NoIndex marks an absent texcoord or normal reference in a face corner.
const NoIndex = -1

// OBJError locates a parse failure.
type OBJError struct {
	Path string // empty when parsing from a reader
	Line int
	Err  error
}

func (e *OBJError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("obj line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *OBJError) Unwrap() error { return e.Err }

// OBJCorner references attributes of one face corner. Indices are 0-based;
// TexCoord and Normal are NoIndex when the face omits them.
type OBJCorner struct {
	Position int
	TexCoord int
	Normal   int
}

// OBJFace is a triangle.
type OBJFace [3]OBJCorner

// OBJ holds the raw, un-deduplicated attributes of a Wavefront OBJ file.
type OBJ struct {
	Positions [][3]float32
	TexCoords [][2]float32
	Normals   [][3]float32
	Faces     []OBJFace
}

// Validate checks that every face references attributes that exist.
func (o *OBJ) Validate() error {
	for i, f := range o.Faces {
		if err := o.checkFace(f); err != nil {
			return fmt.Errorf("face %d: %w", i, err)
		}
	}
	return nil
}

func (o *OBJ) checkFace(f OBJFace) error {
	for _, c := range f {
		if c.Position < 0 || c.Position >= len(o.Positions) {
			return fmt.Errorf("%w: position %d of %d", ErrIndexOutOfRange, c.Position+1, len(o.Positions))
		}
		if c.TexCoord != NoIndex && (c.TexCoord < 0 || c.TexCoord >= len(o.TexCoords)) {
			return fmt.Errorf("%w: texcoord %d of %d", ErrIndexOutOfRange, c.TexCoord+1, len(o.TexCoords))
		}
		if c.Normal != NoIndex && (c.Normal < 0 || c.Normal >= len(o.Normals)) {
			return fmt.Errorf("%w: normal %d of %d", ErrIndexOutOfRange, c.Normal+1, len(o.Normals))
		}
	}
	return nil
}

// ParseOBJFile loads and parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}
	defer f.Close()

	return parseOBJ(f, path)
}

// ParseOBJ parses OBJ text. Only v, vt, vn and triangular f records are
// interpreted; other records are skipped. The first error aborts the parse.
func ParseOBJ(r io.Reader) (*OBJ, error) {
	return parseOBJ(r, "")
}

func parseOBJ(r io.Reader, path string) (*OBJ, error) {
	obj := &OBJ{}
	// Face line numbers, for range errors reported after the whole file is read.
	var faceLines []int

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line, _, _ := strings.Cut(scanner.Text(), "#")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			var p [3]float32
			err = parseFloats(fields[1:], p[:], 3, 7)
			obj.Positions = append(obj.Positions, p)
		case "vt":
			var uv [2]float32
			err = parseFloats(fields[1:], uv[:], 2, 3)
			obj.TexCoords = append(obj.TexCoords, uv)
		case "vn":
			var n [3]float32
			err = parseFloats(fields[1:], n[:], 3, 3)
			obj.Normals = append(obj.Normals, n)
		case "f":
			var face OBJFace
			face, err = parseFace(fields[1:])
			obj.Faces = append(obj.Faces, face)
			faceLines = append(faceLines, lineNo)
		}
		if err != nil {
			return nil, &OBJError{Path: path, Line: lineNo, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &OBJError{Path: path, Line: lineNo + 1, Err: fmt.Errorf("%w: %v", ErrFileUnreadable, err)}
	}

	for i, f := range obj.Faces {
		if err := obj.checkFace(f); err != nil {
			return nil, &OBJError{Path: path, Line: faceLines[i], Err: err}
		}
	}

	return obj, nil
}

// parseFloats fills dst from the leading fields. Between min and max fields
// are accepted; fields past len(dst) are parsed but dropped.
func parseFloats(fields []string, dst []float32, min, max int) error {
	if len(fields) < min || len(fields) > max {
		return fmt.Errorf("%w: expected %d..%d values, got %d", ErrMalformedRecord, min, max, len(fields))
	}
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: bad number %q", ErrMalformedRecord, s)
		}
		if i < len(dst) {
			dst[i] = float32(v)
		}
	}
	return nil
}

func parseFace(fields []string) (OBJFace, error) {
	var face OBJFace
	if len(fields) != 3 {
		return face, fmt.Errorf("%w: got %d corners", ErrUnsupportedFaceArity, len(fields))
	}
	for i, s := range fields {
		c, err := parseCorner(s)
		if err != nil {
			return face, err
		}
		face[i] = c
	}
	return face, nil
}

// parseCorner accepts v, v/vt, v//vn and v/vt/vn.
func parseCorner(s string) (OBJCorner, error) {
	c := OBJCorner{TexCoord: NoIndex, Normal: NoIndex}
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return c, fmt.Errorf("%w: bad face corner %q", ErrMalformedRecord, s)
	}

	var err error
	if c.Position, err = parseIndex(parts[0]); err != nil {
		return c, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.TexCoord, err = parseIndex(parts[1]); err != nil {
			return c, err
		}
	}
	if len(parts) > 2 {
		if parts[2] == "" {
			return c, fmt.Errorf("%w: empty normal index in %q", ErrMalformedRecord, s)
		}
		if c.Normal, err = parseIndex(parts[2]); err != nil {
			return c, err
		}
	}
	return c, nil
}

// parseIndex converts a 1-based index to 0-based.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad index %q", ErrMalformedRecord, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: relative index %d not supported", ErrMalformedRecord, n)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: index 0 (indices are 1-based)", ErrIndexOutOfRange)
	}
	return n - 1, nil
}

// WriteOBJFile writes obj to path, creating or truncating it.
func WriteOBJFile(path string, obj *OBJ) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOBJ(f, obj); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteOBJ serializes obj with 1-based indices. Floats use the shortest
// representation that parses back to the same float32.
func WriteOBJ(w io.Writer, obj *OBJ) error {
	if err := obj.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, p := range obj.Positions {
		fmt.Fprintf(bw, "v %s %s %s\n", fmtFloat(p[0]), fmtFloat(p[1]), fmtFloat(p[2]))
	}
	for _, uv := range obj.TexCoords {
		fmt.Fprintf(bw, "vt %s %s\n", fmtFloat(uv[0]), fmtFloat(uv[1]))
	}
	for _, n := range obj.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", fmtFloat(n[0]), fmtFloat(n[1]), fmtFloat(n[2]))
	}
	for _, f := range obj.Faces {
		fmt.Fprintf(bw, "f %s %s %s\n", fmtCorner(f[0]), fmtCorner(f[1]), fmtCorner(f[2]))
	}
	return bw.Flush()
}

func fmtFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func fmtCorner(c OBJCorner) string {
	switch {
	case c.TexCoord == NoIndex && c.Normal == NoIndex:
		return strconv.Itoa(c.Position + 1)
	case c.Normal == NoIndex:
		return fmt.Sprintf("%d/%d", c.Position+1, c.TexCoord+1)
	case c.TexCoord == NoIndex:
		return fmt.Sprintf("%d//%d", c.Position+1, c.Normal+1)
	default:
		return fmt.Sprintf("%d/%d/%d", c.Position+1, c.TexCoord+1, c.Normal+1)
	}
}
