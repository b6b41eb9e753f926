package debug

import (
	"testing"

	"github.com/Faultbox/roam3d/internal/engine/model"
	"github.com/Faultbox/roam3d/pkg/math"
)

func unitBox() model.Bounds {
	return model.Bounds{Min: [3]float32{-1, -1, -1}, Max: [3]float32{1, 1, 1}}
}

func TestBoxLines(t *testing.T) {
	lines := BoxLines(unitBox())
	if len(lines) != BoxLineVertexCount*3 {
		t.Fatalf("expected %d floats, got %d", BoxLineVertexCount*3, len(lines))
	}

	// Every edge joins two corners differing on exactly one axis.
	for e := 0; e < 12; e++ {
		a := lines[e*6 : e*6+3]
		b := lines[e*6+3 : e*6+6]
		diff := 0
		for k := 0; k < 3; k++ {
			if a[k] != b[k] {
				diff++
			}
			if a[k] != -1 && a[k] != 1 {
				t.Fatalf("edge %d endpoint %v is not a corner", e, a)
			}
		}
		if diff != 1 {
			t.Errorf("edge %d (%v -> %v) is not an axis-aligned edge", e, a, b)
		}
	}
}

func TestOrientedBoxLinesTransforms(t *testing.T) {
	m := math.Translate(10, 0, 0).Mul(math.Scale(2, 2, 2))
	lines := OrientedBoxLines(unitBox(), m)

	for i := 0; i < len(lines); i += 3 {
		x := lines[i]
		if x != 8 && x != 12 {
			t.Fatalf("vertex %d x = %v, want 8 or 12", i/3, x)
		}
	}
}

func TestEmptyBoxHasNoLines(t *testing.T) {
	if lines := BoxLines(model.EmptyBounds()); lines != nil {
		t.Errorf("expected nil for empty box, got %d floats", len(lines))
	}
}

func TestPad(t *testing.T) {
	b := Pad(unitBox(), 0.5)
	if b.Min != [3]float32{-1.5, -1.5, -1.5} || b.Max != [3]float32{1.5, 1.5, 1.5} {
		t.Errorf("padded = %+v", b)
	}
	if !Pad(model.EmptyBounds(), 1).Empty() {
		t.Error("padding an empty box should keep it empty")
	}
}
