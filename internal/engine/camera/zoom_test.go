package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/roam3d/pkg/math"
)

func TestZoomMovesAlongFront(t *testing.T) {
	cam := NewPerspective(1, 1, 0.1, 100)
	cam.Transform.Position = math.Vec3{Z: 20}

	var z Zoom
	z.Add(2)
	z.Step(cam, 5, 0.1)

	// 5 * 2 * 0.1 = 1 unit toward -Z.
	if !near(cam.Position(), math.Vec3{Z: 19}) {
		t.Errorf("position = %+v, want (0,0,19)", cam.Position())
	}
	// 2 - max(0.1, 2/20) = 1.9
	if gomath.Abs(float64(z.pending-1.9)) > 1e-5 {
		t.Errorf("pending = %v, want 1.9", z.pending)
	}
}

func TestZoomDecaysToZero(t *testing.T) {
	for _, scroll := range []float32{40, 3, -7, 0.05} {
		cam := NewPerspective(1, 1, 0.1, 100)
		var z Zoom
		z.Add(scroll)

		prev := float32(gomath.Abs(float64(z.pending)))
		steps := 0
		for z.pending != 0 {
			z.Step(cam, 1, 1.0/60)
			cur := float32(gomath.Abs(float64(z.pending)))
			if cur >= prev {
				t.Fatalf("scroll %v: magnitude did not shrink (%v -> %v)", scroll, prev, cur)
			}
			if z.pending != 0 && (z.pending > 0) != (scroll > 0) {
				t.Fatalf("scroll %v: accumulator crossed zero: %v", scroll, z.pending)
			}
			prev = cur
			steps++
			if steps > 1000 {
				t.Fatalf("scroll %v: zoom never settled", scroll)
			}
		}
	}
}

func TestZoomIdleDoesNothing(t *testing.T) {
	cam := NewPerspective(1, 1, 0.1, 100)
	cam.Transform.Position = math.Vec3{X: 1}

	var z Zoom
	z.Step(cam, 5, 1)
	if cam.Position() != (math.Vec3{X: 1}) {
		t.Errorf("idle zoom moved camera to %+v", cam.Position())
	}

	z.Add(4)
	z.Reset()
	if z.pending != 0 {
		t.Errorf("pending after reset = %v", z.pending)
	}
}
