// Package collision vetoes camera moves that would enter a model's bounding box.
package collision

import (
	"github.com/Faultbox/roam3d/internal/engine/model"
	"github.com/Faultbox/roam3d/pkg/math"
)

// Body is anything with model-space bounds placed in the world by a matrix.
type Body interface {
	CollisionBounds() model.Bounds
	ModelMatrix() math.Mat4
}

// BlocksMove reports whether point lies strictly inside box after box.Min and
// box.Max are transformed by modelMatrix. Points on the boundary do not block.
func BlocksMove(box model.Bounds, modelMatrix math.Mat4, point math.Vec3) bool {
	lo := modelMatrix.TransformPoint(box.Min)
	hi := modelMatrix.TransformPoint(box.Max)
	p := point.Array()
	for i := 0; i < 3; i++ {
		if !(lo[i] < p[i] && p[i] < hi[i]) {
			return false
		}
	}
	return true
}

// FirstBlocking returns the index of the first body that blocks point, or -1.
func FirstBlocking[B Body](bodies []B, point math.Vec3) int {
	for i, b := range bodies {
		if BlocksMove(b.CollisionBounds(), b.ModelMatrix(), point) {
			return i
		}
	}
	return -1
}
