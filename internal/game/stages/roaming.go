package stages

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Faultbox/roam3d/internal/config"
	"github.com/Faultbox/roam3d/internal/engine/camera"
	"github.com/Faultbox/roam3d/internal/engine/scene"
	"github.com/Faultbox/roam3d/pkg/math"
)

// Roaming is the free scene viewer: two cameras and a set of movable models.
type Roaming struct {
	env   Env
	opts  RoamingOptions
	scene *scene.Scene
	nav   navigator
}

func newRoaming(env Env, opts RoamingOptions, aspect float32) (*Roaming, error) {
	r := &Roaming{
		env:   env,
		opts:  opts,
		scene: scene.New(),
		nav:   navigator{speeds: opts.Speeds, home: opts.Camera.Home},
	}
	for _, c := range newCameras(opts.Camera, aspect, camera.Perspective) {
		r.scene.AddCamera(c)
	}
	for _, spec := range opts.Models {
		if _, err := place(env, r.scene, spec); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Scene returns the stage's scene.
func (r *Roaming) Scene() *scene.Scene { return r.scene }

// AddModel loads an OBJ file, places it at the origin and selects it.
func (r *Roaming) AddModel(path string) (*scene.Entity, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	e, err := place(r.env, r.scene, ModelSpec{Name: name, Path: path, Scale: 1})
	if err != nil {
		return nil, err
	}
	r.scene.Select(len(r.scene.Entities) - 1)
	return e, nil
}

func (r *Roaming) update(ctl Controls, dt float32) Result {
	var res Result

	if ctl.SwitchModel {
		r.scene.NextEntity()
		return res
	}
	if r.nav.update(r.scene, ctl, dt, &res) {
		return res
	}

	if e := r.scene.Selected(); e != nil {
		moveModel(e, ctl, r.opts.Speeds, dt)
	}
	return res
}

// moveModel applies model controls. Translation uses fixed world axes and
// rotation composes in world space.
func moveModel(e *scene.Entity, ctl Controls, s Speeds, dt float32) {
	step := s.ModelMove * dt
	tr := &e.Transform

	if ctl.ModelUp {
		tr.Translate(math.WorldUp, step)
	}
	if ctl.ModelDown {
		tr.Translate(math.WorldUp, -step)
	}
	if ctl.ModelRight {
		tr.Translate(math.WorldRight, step)
	}
	if ctl.ModelLeft {
		tr.Translate(math.WorldRight, -step)
	}
	if ctl.ModelForward {
		tr.Translate(math.WorldFront, step)
	}
	if ctl.ModelBackward {
		tr.Translate(math.WorldFront, -step)
	}

	angle := -s.ModelRotate * dt
	if ctl.ModelYaw {
		tr.Rotate(math.WorldUp, angle)
	}
	if ctl.ModelPitch {
		tr.Rotate(math.WorldRight, angle)
	}
	if ctl.ModelRoll {
		tr.Rotate(math.Vec3{Z: 1}, angle)
	}

	if ctl.ScaleUp {
		tr.SetUniformScale(tr.UniformScale() + s.ScaleRate*dt)
	}
	if ctl.ScaleDown {
		tr.SetUniformScale(max(s.MinScale, config.ScaleFloor, tr.UniformScale()-s.ScaleRate*dt))
	}
}

// place loads spec's mesh and adds an entity for it.
func place(env Env, sc *scene.Scene, spec ModelSpec) (*scene.Entity, error) {
	mesh, err := env.LoadMesh(spec.Path)
	if err != nil {
		return nil, fmt.Errorf("loading model %q: %w", spec.Name, err)
	}
	e := scene.NewEntity(spec.Name, mesh)
	e.Texture = spec.Texture
	e.Transform.Position = spec.Position
	if spec.Scale > 0 {
		e.Transform.SetUniformScale(spec.Scale)
	}
	return sc.Add(e), nil
}
