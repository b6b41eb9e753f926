// Package lighting holds the Phong light rig and material parameters shared by
// the renderer and the control panel.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/roam3d/pkg/math"
)

// Ambient is a constant, direction-less light.
type Ambient struct {
	Color     [3]float32
	Intensity float32
}

// Directional is a light infinitely far away, shining along Direction.
type Directional struct {
	Direction math.Vec3
	Color     [3]float32
	Intensity float32
}

// NewDirectional aims a directional light along the front vector of rotation.
func NewDirectional(rotation math.Quat, color [3]float32, intensity float32) Directional {
	return Directional{
		Direction: rotation.RotateVec3(math.WorldFront).Normalize(),
		Color:     color,
		Intensity: intensity,
	}
}

// Spot is a cone light with distance attenuation 1/(kc + kl*d + kq*d^2).
type Spot struct {
	Position  math.Vec3
	Direction math.Vec3
	Color     [3]float32
	Intensity float32
	Cutoff    float32 // cone half angle, radians

	Constant  float32
	Linear    float32
	Quadratic float32
}

// Rig is the fixed set of lights in a scene.
type Rig struct {
	Ambient     Ambient
	Directional Directional
	Spot        Spot
}

// DefaultRig returns a dim ambient term, a white key light from the upper
// right and a spot light in front of the origin looking down -Z.
func DefaultRig() Rig {
	white := [3]float32{1, 1, 1}
	keyAxis := math.Vec3{X: -1, Y: -1, Z: -1}.Normalize()
	return Rig{
		Ambient: Ambient{Color: white, Intensity: 0.8},
		Directional: NewDirectional(
			math.QuatFromAxisAngle(keyAxis, float32(gomath.Pi/4)),
			white, 0.5,
		),
		Spot: Spot{
			Position:  math.Vec3{X: 0, Y: 0, Z: 5},
			Direction: math.WorldFront,
			Color:     white,
			Intensity: 1,
			Cutoff:    float32(gomath.Pi / 6),
			Constant:  1,
			Linear:    0.09,
			Quadratic: 0.032,
		},
	}
}
