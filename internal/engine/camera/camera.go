// Package camera provides perspective and orthographic cameras driven by a Transform.
package camera

import (
	gomath "math"

	"github.com/Faultbox/roam3d/internal/engine/picking"
	"github.com/Faultbox/roam3d/pkg/math"
)

// Projection selects how a camera maps view space to clip space.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

// String returns the projection name.
func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return "unknown"
	}
}

// Mode controls constraints applied after rotation.
type Mode int

const (
	// Free cameras rotate in place.
	Free Mode = iota
	// Orbit cameras keep looking at the world origin at a constant radius.
	Orbit
)

func (m Mode) String() string {
	if m == Orbit {
		return "orbit"
	}
	return "free"
}

// Camera is a view into the scene.
type Camera struct {
	Transform  math.Transform
	Projection Projection
	Mode       Mode

	FovY   float32 // radians, perspective only
	Height float32 // half height of the view volume, orthographic only
	Aspect float32
	Near   float32
	Far    float32
}

// NewPerspective creates a perspective camera at the origin looking down -Z.
func NewPerspective(fovY, aspect, near, far float32) *Camera {
	return &Camera{
		Transform:  math.NewTransform(),
		Projection: Perspective,
		FovY:       fovY,
		Aspect:     aspect,
		Near:       near,
		Far:        far,
	}
}

// NewOrthographic creates an orthographic camera whose view volume spans
// [-halfHeight, halfHeight] vertically.
func NewOrthographic(halfHeight, aspect, near, far float32) *Camera {
	return &Camera{
		Transform:  math.NewTransform(),
		Projection: Orthographic,
		Height:     halfHeight,
		Aspect:     aspect,
		Near:       near,
		Far:        far,
	}
}

// Position returns the camera position in world space.
func (c *Camera) Position() math.Vec3 { return c.Transform.Position }

// Front returns the viewing direction.
func (c *Camera) Front() math.Vec3 { return c.Transform.Front() }

// Up returns the camera up vector.
func (c *Camera) Up() math.Vec3 { return c.Transform.Up() }

// Right returns the camera right vector.
func (c *Camera) Right() math.Vec3 { return c.Transform.Right() }

// ViewMatrix returns inverse(translate * rotate). Scale never affects the view.
func (c *Camera) ViewMatrix() math.Mat4 {
	return c.Transform.RigidMatrix().Inverse()
}

// ProjectionMatrix returns the clip-space projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	if c.Projection == Orthographic {
		w := c.Height * c.Aspect
		return math.Ortho(-w, w, -c.Height, c.Height, c.Near, c.Far)
	}
	return math.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// SetAspect updates the aspect ratio after a viewport resize.
func (c *Camera) SetAspect(aspect float32) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// Move translates the camera along dir.
func (c *Camera) Move(dir math.Vec3, amount float32) {
	c.Transform.Translate(dir, amount)
}

// Rotate applies a world-space rotation and then the mode constraint.
func (c *Camera) Rotate(axis math.Vec3, angle float32) {
	c.Transform.Rotate(axis, angle)
	c.constrain()
}

// ResetView restores identity orientation at position.
func (c *Camera) ResetView(position math.Vec3) {
	c.Transform.Rotation = math.QuatIdentity()
	c.Transform.Position = position
	c.constrain()
}

func (c *Camera) constrain() {
	if c.Mode != Orbit {
		return
	}
	radius := c.Transform.Position.Length()
	c.Transform.Position = c.Front().Negate().Scale(radius)
}

// ScreenRay returns the world-space ray through pixel (x, y) of a w by h viewport.
func (c *Camera) ScreenRay(x, y, w, h float32) picking.Ray {
	return picking.ScreenToRay(x, y, w, h, c.ViewProjection().Inverse())
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * gomath.Pi / 180
}
