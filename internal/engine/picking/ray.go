// Package picking casts rays from the screen into the scene.
package picking

import (
	gomath "math"

	"github.com/Faultbox/roam3d/internal/engine/model"
	"github.com/Faultbox/roam3d/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    [3]float32
	Direction [3]float32 // Normalized direction
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	nearWorld := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	farWorld := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	dir := farWorld.Sub(nearWorld).Normalize()
	return Ray{Origin: nearWorld.Array(), Direction: dir.Array()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) [3]float32 {
	return [3]float32{
		r.Origin[0] + t*r.Direction[0],
		r.Origin[1] + t*r.Direction[1],
		r.Origin[2] + t*r.Direction[2],
	}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box
// using the slab method. If the ray starts inside the box, the exit distance
// is returned.
func (r Ray) IntersectAABB(box model.Bounds) (t float32, hit bool) {
	if box.Empty() {
		return 0, false
	}

	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] == 0 {
			if r.Origin[axis] < box.Min[axis] || r.Origin[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - r.Origin[axis]) / r.Direction[axis]
		t2 := (box.Max[axis] - r.Origin[axis]) / r.Direction[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// WorldBounds returns the axis-aligned box enclosing all eight corners of a
// model-space box after transformation by m.
func WorldBounds(b model.Bounds, m math.Mat4) model.Bounds {
	out := model.EmptyBounds()
	if b.Empty() {
		return out
	}
	for i := 0; i < 8; i++ {
		corner := [3]float32{b.Min[0], b.Min[1], b.Min[2]}
		if i&1 != 0 {
			corner[0] = b.Max[0]
		}
		if i&2 != 0 {
			corner[1] = b.Max[1]
		}
		if i&4 != 0 {
			corner[2] = b.Max[2]
		}
		out.Extend(m.TransformPoint(corner))
	}
	return out
}

// Nearest returns the index of the closest box hit by the ray, or -1.
func (r Ray) Nearest(boxes []model.Bounds) (index int, t float32) {
	index = -1
	for i, box := range boxes {
		d, ok := r.IntersectAABB(box)
		if ok && (index < 0 || d < t) {
			index, t = i, d
		}
	}
	return index, t
}
