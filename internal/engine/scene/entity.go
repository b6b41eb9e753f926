package scene

import (
	"github.com/Faultbox/roam3d/internal/engine/lighting"
	"github.com/Faultbox/roam3d/internal/engine/model"
	"github.com/Faultbox/roam3d/internal/engine/picking"
	"github.com/Faultbox/roam3d/pkg/math"
)

// Entity is a placed instance of a mesh. Several entities may share a mesh.
type Entity struct {
	Name      string
	Mesh      *model.Mesh
	Transform math.Transform
	Material  lighting.Material

	// Texture is the asset path of the diffuse map; empty draws Color.
	Texture string
	Color   [3]float32

	Hidden bool
}

// NewEntity places mesh at the origin with the default material.
func NewEntity(name string, mesh *model.Mesh) *Entity {
	return &Entity{
		Name:      name,
		Mesh:      mesh,
		Transform: math.NewTransform(),
		Material:  lighting.DefaultMaterial(),
		Color:     [3]float32{0.8, 0.8, 0.8},
	}
}

// ModelMatrix returns the entity's local-to-world matrix.
func (e *Entity) ModelMatrix() math.Mat4 {
	return e.Transform.ModelMatrix()
}

// CollisionBounds returns the model-space box used by the collision gate.
// Hidden entities and entities without geometry never collide.
func (e *Entity) CollisionBounds() model.Bounds {
	if e.Hidden || e.Mesh == nil {
		return model.EmptyBounds()
	}
	return e.Mesh.Bounds()
}

// WorldBounds returns the world-space box enclosing the transformed mesh.
func (e *Entity) WorldBounds() model.Bounds {
	return picking.WorldBounds(e.CollisionBounds(), e.ModelMatrix())
}
