// Package scene holds the cameras, models and lights that make up a stage.
// It is pure data plus the bookkeeping around the active camera and the
// selected model; drawing lives in the renderer.
package scene

import (
	"github.com/Faultbox/roam3d/internal/engine/camera"
	"github.com/Faultbox/roam3d/internal/engine/collision"
	"github.com/Faultbox/roam3d/internal/engine/lighting"
	"github.com/Faultbox/roam3d/pkg/math"
)

// Scene is the world state rendered each frame.
type Scene struct {
	Cameras  []*camera.Camera
	Entities []*Entity
	Lights   lighting.Rig

	ClearColor [3]float32
	ShowBounds bool

	activeCamera int
	selected     int
}

// New creates an empty scene with the default light rig.
func New() *Scene {
	return &Scene{
		Lights:     lighting.DefaultRig(),
		ClearColor: [3]float32{0.1, 0.1, 0.12},
	}
}

// AddCamera appends a camera. The first camera added becomes active.
func (s *Scene) AddCamera(c *camera.Camera) {
	s.Cameras = append(s.Cameras, c)
}

// Camera returns the active camera, or nil if the scene has none.
func (s *Scene) Camera() *camera.Camera {
	if len(s.Cameras) == 0 {
		return nil
	}
	return s.Cameras[s.activeCamera]
}

// ActiveCamera returns the index of the active camera.
func (s *Scene) ActiveCamera() int { return s.activeCamera }

// NextCamera activates the next camera, wrapping around.
func (s *Scene) NextCamera() {
	if len(s.Cameras) == 0 {
		return
	}
	s.activeCamera = (s.activeCamera + 1) % len(s.Cameras)
}

// SetAspect updates every camera after a viewport resize.
func (s *Scene) SetAspect(aspect float32) {
	for _, c := range s.Cameras {
		c.SetAspect(aspect)
	}
}

// Add appends an entity and returns it.
func (s *Scene) Add(e *Entity) *Entity {
	s.Entities = append(s.Entities, e)
	return e
}

// Selected returns the model that receives model controls, or nil.
func (s *Scene) Selected() *Entity {
	if len(s.Entities) == 0 {
		return nil
	}
	return s.Entities[s.selected]
}

// SelectedIndex returns the index of the selected model.
func (s *Scene) SelectedIndex() int { return s.selected }

// Select makes entity i the selected model. Out of range indices wrap.
func (s *Scene) Select(i int) {
	if n := len(s.Entities); n > 0 {
		s.selected = ((i % n) + n) % n
	}
}

// NextEntity selects the next model, wrapping around.
func (s *Scene) NextEntity() {
	s.Select(s.selected + 1)
}

// Blocking returns the index of the first entity whose box strictly contains
// point, or -1.
func (s *Scene) Blocking(point math.Vec3) int {
	return collision.FirstBlocking(s.Entities, point)
}
