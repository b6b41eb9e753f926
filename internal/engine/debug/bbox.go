// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/roam3d/internal/engine/model"
	"github.com/Faultbox/roam3d/pkg/math"
)

// BoxLineVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const BoxLineVertexCount = 24

// boxEdges indexes the corners returned by corners, two per edge.
var boxEdges = [24]int{
	// Bottom face
	0, 1, 1, 5, 5, 4, 4, 0,
	// Top face
	2, 3, 3, 7, 7, 6, 6, 2,
	// Vertical edges
	0, 2, 1, 3, 5, 7, 4, 6,
}

// corners returns the 8 box corners; bit 0 selects max X, bit 1 max Y and
// bit 2 max Z.
func corners(b model.Bounds) [8][3]float32 {
	var c [8][3]float32
	for i := range c {
		for axis, bit := range [3]int{1, 2, 4} {
			if i&bit != 0 {
				c[i][axis] = b.Max[axis]
			} else {
				c[i][axis] = b.Min[axis]
			}
		}
	}
	return c
}

// BoxLines creates line vertices for an axis-aligned wireframe box,
// format: [x, y, z] per vertex. An empty box yields nil.
func BoxLines(b model.Bounds) []float32 {
	return OrientedBoxLines(b, math.Identity())
}

// OrientedBoxLines creates line vertices for box b transformed by m, so the
// wireframe follows the model's rotation and scale.
func OrientedBoxLines(b model.Bounds, m math.Mat4) []float32 {
	if b.Empty() {
		return nil
	}
	c := corners(b)
	for i := range c {
		c[i] = m.TransformPoint(c[i])
	}

	out := make([]float32, 0, BoxLineVertexCount*3)
	for _, idx := range boxEdges {
		out = append(out, c[idx][0], c[idx][1], c[idx][2])
	}
	return out
}

// Pad returns b grown by padding on every side.
func Pad(b model.Bounds, padding float32) model.Bounds {
	if b.Empty() {
		return b
	}
	for i := 0; i < 3; i++ {
		b.Min[i] -= padding
		b.Max[i] += padding
	}
	return b
}
