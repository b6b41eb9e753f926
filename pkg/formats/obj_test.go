package formats

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const quadOBJ = `# two triangles sharing an edge
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
s off
usemtl default
f 1/1/1 2/2/1 3/3/1
f 1/1/1 3/3/1 4/4/1
`

func TestParseOBJ_Valid(t *testing.T) {
	obj, err := ParseOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if len(obj.Positions) != 4 {
		t.Errorf("expected 4 positions, got %d", len(obj.Positions))
	}
	if len(obj.TexCoords) != 4 {
		t.Errorf("expected 4 texcoords, got %d", len(obj.TexCoords))
	}
	if len(obj.Normals) != 1 {
		t.Errorf("expected 1 normal, got %d", len(obj.Normals))
	}
	if len(obj.Faces) != 2 {
		t.Fatalf("expected 2 faces, got %d", len(obj.Faces))
	}

	// 1-based source indices become 0-based.
	want := OBJFace{{0, 0, 0}, {2, 2, 0}, {3, 3, 0}}
	if obj.Faces[1] != want {
		t.Errorf("face 1 = %+v, want %+v", obj.Faces[1], want)
	}
	if obj.Positions[2] != [3]float32{1, 1, 0} {
		t.Errorf("position 2 = %v", obj.Positions[2])
	}
}

func TestParseOBJ_CornerForms(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vt 0.5 0.5
vn 0 0 1
f 1 2 3
f 1/1 2/1 3/1
f 1//1 2//1 3//1
`
	obj, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	tests := []struct {
		face int
		want OBJCorner
	}{
		{0, OBJCorner{Position: 0, TexCoord: NoIndex, Normal: NoIndex}},
		{1, OBJCorner{Position: 0, TexCoord: 0, Normal: NoIndex}},
		{2, OBJCorner{Position: 0, TexCoord: NoIndex, Normal: 0}},
	}
	for _, tt := range tests {
		if got := obj.Faces[tt.face][0]; got != tt.want {
			t.Errorf("face %d corner 0 = %+v, want %+v", tt.face, got, tt.want)
		}
	}
}

func TestParseOBJ_OptionalComponents(t *testing.T) {
	src := "v 1 2 3 1.0\nv 1 2 3 0.5 0.5 0.5\nvt 0.25 0.75 0\n"
	obj, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if obj.Positions[0] != [3]float32{1, 2, 3} || obj.Positions[1] != [3]float32{1, 2, 3} {
		t.Errorf("positions = %v", obj.Positions)
	}
	if obj.TexCoords[0] != [2]float32{0.25, 0.75} {
		t.Errorf("texcoord = %v", obj.TexCoords[0])
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	header := "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\nvt 0 0\nvn 0 0 1\n"

	tests := []struct {
		name string
		src  string
		want error
		line int
	}{
		{"bad float", "v 0 zero 0\n", ErrMalformedRecord, 1},
		{"nan position", "v nan 0 0\n", ErrMalformedRecord, 1},
		{"infinite position", "v 0 inf 0\n", ErrMalformedRecord, 1},
		{"infinite texcoord", "vt -Infinity 0\n", ErrMalformedRecord, 1},
		{"nan normal", "vn 0 0 NaN\n", ErrMalformedRecord, 1},
		{"float overflow", "v 1e39 0 0\n", ErrMalformedRecord, 1},
		{"short position", "v 1 2\n", ErrMalformedRecord, 1},
		{"short texcoord", "vt 1\n", ErrMalformedRecord, 1},
		{"long normal", "vn 0 0 1 0\n", ErrMalformedRecord, 1},
		{"quad face", header + "f 1/1/1 2/1/1 3/1/1 4/1/1\n", ErrUnsupportedFaceArity, 7},
		{"line face", header + "f 1/1/1 2/1/1\n", ErrUnsupportedFaceArity, 7},
		{"bad index", header + "f a/1/1 2/1/1 3/1/1\n", ErrMalformedRecord, 7},
		{"relative index", header + "f -1/1/1 2/1/1 3/1/1\n", ErrMalformedRecord, 7},
		{"empty normal", header + "f 1/1/ 2/1/1 3/1/1\n", ErrMalformedRecord, 7},
		{"too many slashes", header + "f 1/1/1/1 2/1/1 3/1/1\n", ErrMalformedRecord, 7},
		{"zero index", header + "f 0/1/1 2/1/1 3/1/1\n", ErrIndexOutOfRange, 7},
		{"position out of range", header + "f 1/1/1 2/1/1 9/1/1\n", ErrIndexOutOfRange, 7},
		{"texcoord out of range", header + "f 1/2/1 2/1/1 3/1/1\n", ErrIndexOutOfRange, 7},
		{"normal out of range", header + "f 1/1/1 2/1/2 3/1/1\n", ErrIndexOutOfRange, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.src))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var objErr *OBJError
			if !errors.As(err, &objErr) {
				t.Fatalf("expected *OBJError, got %T", err)
			}
			if objErr.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, objErr.Line)
			}
		})
	}
}

func TestParseOBJ_InlineComments(t *testing.T) {
	src := "v 0 0 0 # origin\nv 1 0 0\nv 0 1 0#tip\nvn 0 0 1 # up\nf 1//1 2//1 3//1 # only face\n   # indented\n"
	obj, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if len(obj.Positions) != 3 || len(obj.Normals) != 1 || len(obj.Faces) != 1 {
		t.Fatalf("got %d positions, %d normals, %d faces", len(obj.Positions), len(obj.Normals), len(obj.Faces))
	}
	if obj.Positions[2] != [3]float32{0, 1, 0} {
		t.Errorf("expected third position (0,1,0), got %v", obj.Positions[2])
	}
}

func TestParseOBJ_ForwardReference(t *testing.T) {
	src := "f 1 2 3\nv 0 0 0\nv 1 0 0\nv 0 1 0\n"
	obj, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if len(obj.Faces) != 1 {
		t.Errorf("expected 1 face, got %d", len(obj.Faces))
	}
}

func TestParseOBJFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ParseOBJFile(filepath.Join(dir, "missing.obj"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}

	path := filepath.Join(dir, "broken.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nf 1 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	_, err = ParseOBJFile(path)
	if !errors.Is(err, ErrUnsupportedFaceArity) {
		t.Fatalf("expected ErrUnsupportedFaceArity, got %v", err)
	}
	if !strings.Contains(err.Error(), "broken.obj:2") {
		t.Errorf("error should name file and line, got %q", err.Error())
	}
}

func TestWriteOBJ_RoundTrip(t *testing.T) {
	src := quadOBJ + `v 0.1 -2.5e-3 123456.7
vn 0.577 0.577 0.577
f 5 1 2
f 5//2 1//1 2//2
f 5/4 1/3 2/2
`
	first, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, first); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}

	second, err := ParseOBJ(&buf)
	if err != nil {
		t.Fatalf("re-parse failed: %v\n%s", err, buf.String())
	}

	assertOBJEqual(t, first, second)
}

func TestWriteOBJ_FaceFormat(t *testing.T) {
	obj := &OBJ{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		TexCoords: [][2]float32{{0, 0}},
		Normals:   [][3]float32{{0, 0, 1}},
		Faces: []OBJFace{
			{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
			{{0, NoIndex, 0}, {1, NoIndex, 0}, {2, NoIndex, 0}},
		},
	}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, obj); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}
	out := buf.String()
	for _, line := range []string{"f 1/1/1 2/1/1 3/1/1", "f 1//1 2//1 3//1", "v 1 0 0", "vt 0 0"} {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}

func TestWriteOBJ_RejectsInvalid(t *testing.T) {
	obj := &OBJ{
		Positions: [][3]float32{{0, 0, 0}},
		Faces:     []OBJFace{{{0, NoIndex, NoIndex}, {1, NoIndex, NoIndex}, {0, NoIndex, NoIndex}}},
	}
	if err := WriteOBJ(&bytes.Buffer{}, obj); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestWriteOBJFile(t *testing.T) {
	obj, err := ParseOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.obj")
	if err := WriteOBJFile(path, obj); err != nil {
		t.Fatalf("WriteOBJFile failed: %v", err)
	}
	back, err := ParseOBJFile(path)
	if err != nil {
		t.Fatalf("ParseOBJFile failed: %v", err)
	}
	assertOBJEqual(t, obj, back)
}

func assertOBJEqual(t *testing.T, a, b *OBJ) {
	t.Helper()

	if len(a.Positions) != len(b.Positions) || len(a.TexCoords) != len(b.TexCoords) ||
		len(a.Normals) != len(b.Normals) || len(a.Faces) != len(b.Faces) {
		t.Fatalf("attribute counts differ: %d/%d/%d/%d vs %d/%d/%d/%d",
			len(a.Positions), len(a.TexCoords), len(a.Normals), len(a.Faces),
			len(b.Positions), len(b.TexCoords), len(b.Normals), len(b.Faces))
	}
	for i := range a.Positions {
		for j := 0; j < 3; j++ {
			if !floatNear(a.Positions[i][j], b.Positions[i][j]) {
				t.Errorf("position %d differs: %v vs %v", i, a.Positions[i], b.Positions[i])
			}
		}
	}
	for i := range a.TexCoords {
		for j := 0; j < 2; j++ {
			if !floatNear(a.TexCoords[i][j], b.TexCoords[i][j]) {
				t.Errorf("texcoord %d differs: %v vs %v", i, a.TexCoords[i], b.TexCoords[i])
			}
		}
	}
	for i := range a.Normals {
		for j := 0; j < 3; j++ {
			if !floatNear(a.Normals[i][j], b.Normals[i][j]) {
				t.Errorf("normal %d differs: %v vs %v", i, a.Normals[i], b.Normals[i])
			}
		}
	}
	for i := range a.Faces {
		if a.Faces[i] != b.Faces[i] {
			t.Errorf("face %d differs: %+v vs %+v", i, a.Faces[i], b.Faces[i])
		}
	}
}

func floatNear(a, b float32) bool {
	return math.Abs(float64(a-b)) <= 1e-5*math.Max(1, math.Abs(float64(a)))
}
