package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/roam3d/pkg/formats"
)

const triOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
`

func TestCompareRoundTrip(t *testing.T) {
	in, err := formats.ParseOBJ(strings.NewReader(triOBJ))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.obj")
	if err := formats.WriteOBJFile(path, in); err != nil {
		t.Fatal(err)
	}
	out, err := formats.ParseOBJFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := compare(in, out); err != nil {
		t.Errorf("round trip differs: %v", err)
	}
}

func TestCompareDetectsChanges(t *testing.T) {
	a, _ := formats.ParseOBJ(strings.NewReader(triOBJ))
	b, _ := formats.ParseOBJ(strings.NewReader(triOBJ))
	b.Positions[2][1] = 2
	if err := compare(a, b); err == nil || !strings.Contains(err.Error(), "position 3") {
		t.Errorf("expected position mismatch, got %v", err)
	}

	b, _ = formats.ParseOBJ(strings.NewReader(triOBJ))
	b.TexCoords[0][0] = 0.5
	if err := compare(a, b); err == nil || !strings.Contains(err.Error(), "texcoord 1") {
		t.Errorf("expected texcoord mismatch, got %v", err)
	}

	b, _ = formats.ParseOBJ(strings.NewReader(triOBJ))
	b.Normals[0][2] = -1
	if err := compare(a, b); err == nil || !strings.Contains(err.Error(), "normal 1") {
		t.Errorf("expected normal mismatch, got %v", err)
	}

	b, _ = formats.ParseOBJ(strings.NewReader(triOBJ))
	b.Faces = b.Faces[:0]
	if err := compare(a, b); err == nil || !strings.Contains(err.Error(), "face count") {
		t.Errorf("expected face count mismatch, got %v", err)
	}
}
