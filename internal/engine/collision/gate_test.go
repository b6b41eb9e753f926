package collision

import (
	"testing"

	"github.com/Faultbox/roam3d/internal/engine/model"
	"github.com/Faultbox/roam3d/pkg/math"
)

var unit = model.Bounds{Min: [3]float32{-1, -1, -1}, Max: [3]float32{1, 1, 1}}

func TestBlocksMove(t *testing.T) {
	tr := math.NewTransform()
	tr.Position = math.Vec3{X: 10, Y: 0, Z: 0}
	tr.SetUniformScale(2)
	m := tr.ModelMatrix()

	// World box is [8,12] x [-2,2] x [-2,2].
	tests := []struct {
		name  string
		point math.Vec3
		want  bool
	}{
		{"center", math.Vec3{X: 10}, true},
		{"inside near edge", math.Vec3{X: 11.99, Y: 1.99, Z: -1.99}, true},
		{"on max corner", math.Vec3{X: 12, Y: 2, Z: 2}, false},
		{"on max face", math.Vec3{X: 12, Y: 0, Z: 0}, false},
		{"on min face", math.Vec3{X: 8, Y: 0, Z: 0}, false},
		{"outside", math.Vec3{X: 0, Y: 0, Z: 0}, false},
		{"outside on one axis", math.Vec3{X: 10, Y: 5, Z: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlocksMove(unit, m, tt.point); got != tt.want {
				t.Errorf("BlocksMove(%+v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestBlocksMoveEmptyBounds(t *testing.T) {
	if BlocksMove(model.EmptyBounds(), math.Identity(), math.Vec3{}) {
		t.Error("an empty box must never block")
	}
}

type body struct {
	bounds model.Bounds
	tr     math.Transform
}

func (b body) CollisionBounds() model.Bounds { return b.bounds }
func (b body) ModelMatrix() math.Mat4        { return b.tr.ModelMatrix() }

func TestFirstBlocking(t *testing.T) {
	a := body{bounds: unit, tr: math.NewTransform()}
	a.tr.Position = math.Vec3{X: -5}
	b := body{bounds: unit, tr: math.NewTransform()}
	b.tr.Position = math.Vec3{X: 5}

	bodies := []body{a, b}
	if got := FirstBlocking(bodies, math.Vec3{X: 5.5}); got != 1 {
		t.Errorf("FirstBlocking = %d, want 1", got)
	}
	if got := FirstBlocking(bodies, math.Vec3{}); got != -1 {
		t.Errorf("FirstBlocking = %d, want -1", got)
	}
}
