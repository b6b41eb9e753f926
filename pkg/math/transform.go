package math

// Transform is a position, rotation and scale triple shared by cameras and models.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// Local basis directions. Front looks down -Z like OpenGL cameras.
var (
	WorldFront = Vec3{X: 0, Y: 0, Z: -1}
	WorldUp    = Vec3{X: 0, Y: 1, Z: 0}
	WorldRight = Vec3{X: 1, Y: 0, Z: 0}
)

// NewTransform returns a transform at the origin with identity rotation and unit scale.
func NewTransform() Transform {
	return Transform{
		Rotation: QuatIdentity(),
		Scale:    Vec3{X: 1, Y: 1, Z: 1},
	}
}

// ModelMatrix returns translate(position) * rotate(rotation) * scale(scale).
func (t Transform) ModelMatrix() Mat4 {
	return t.RigidMatrix().Mul(Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
}

// RigidMatrix returns translate(position) * rotate(rotation), ignoring scale.
func (t Transform) RigidMatrix() Mat4 {
	return Translate(t.Position.X, t.Position.Y, t.Position.Z).Mul(t.Rotation.ToMat4())
}

// Front returns the rotated -Z axis.
func (t Transform) Front() Vec3 {
	return t.Rotation.RotateVec3(WorldFront)
}

// Up returns the rotated +Y axis.
func (t Transform) Up() Vec3 {
	return t.Rotation.RotateVec3(WorldUp)
}

// Right returns the rotated +X axis.
func (t Transform) Right() Vec3 {
	return t.Rotation.RotateVec3(WorldRight)
}

// Rotate composes a world-space rotation of angle radians about axis onto the
// current orientation (left multiplication).
func (t *Transform) Rotate(axis Vec3, angle float32) {
	if angle == 0 {
		return
	}
	delta := QuatFromAxisAngle(axis.Normalize(), angle)
	t.Rotation = delta.Mul(t.Rotation).Normalize()
}

// Translate moves the position by dir * amount.
func (t *Transform) Translate(dir Vec3, amount float32) {
	t.Position = t.Position.Add(dir.Scale(amount))
}

// UniformScale returns the X scale, which all axes share for uniformly scaled entities.
func (t Transform) UniformScale() float32 {
	return t.Scale.X
}

// SetUniformScale sets all three scale axes to s.
func (t *Transform) SetUniformScale(s float32) {
	t.Scale = Vec3{X: s, Y: s, Z: s}
}
