package stages

import (
	"fmt"

	"github.com/Faultbox/roam3d/internal/engine/camera"
	"github.com/Faultbox/roam3d/internal/engine/lighting"
	"github.com/Faultbox/roam3d/internal/engine/model"
	"github.com/Faultbox/roam3d/internal/engine/scene"
	"github.com/Faultbox/roam3d/pkg/math"
)

// gridSide is the number of moles per row and column.
const gridSide = 3

// MiniGame is the whack-a-mole stage.
type MiniGame struct {
	opts  MiniGameOptions
	scene *scene.Scene
	nav   navigator
	state *MiniGameState
	moles []*scene.Entity
}

func newMiniGame(env Env, opts MiniGameOptions, aspect float32) (*MiniGame, error) {
	g := &MiniGame{
		opts:  opts,
		scene: scene.New(),
		nav:   navigator{speeds: opts.Speeds, home: opts.Camera.Home},
		state: NewMiniGameState(gridSide*gridSide, opts.Rules, opts.Seed),
	}
	g.scene.Lights = miniGameLights()
	for _, c := range newCameras(opts.Camera, aspect, camera.Orthographic) {
		g.scene.AddCamera(c)
	}

	hole := opts.Hole
	hole.Position = math.Vec3{}
	if _, err := place(env, g.scene, hole); err != nil {
		return nil, err
	}

	for i := 0; i < gridSide*gridSide; i++ {
		spec := opts.Mole
		spec.Name = fmt.Sprintf("%s-%d", opts.Mole.Name, i)
		spec.Position = MolePosition(i, opts.Spacing)
		e, err := place(env, g.scene, spec)
		if err != nil {
			return nil, err
		}
		g.moles = append(g.moles, e)
	}
	return g, nil
}

// miniGameLights brightens the default rig and lifts the spot above the grid.
func miniGameLights() lighting.Rig {
	rig := lighting.DefaultRig()
	rig.Ambient.Intensity = 2
	rig.Directional.Intensity = 1
	rig.Spot.Position = math.Vec3{Y: 5, Z: 5}
	return rig
}

// MolePosition returns the ground position of grid cell i, centered on the origin.
func MolePosition(i int, spacing float32) math.Vec3 {
	offset := spacing * (gridSide - 1) / 2
	return math.Vec3{
		X: float32(i/gridSide)*spacing - offset,
		Z: float32(i%gridSide)*spacing - offset,
	}
}

// Scene returns the stage's scene.
func (g *MiniGame) Scene() *scene.Scene { return g.scene }

// State returns the game state.
func (g *MiniGame) State() *MiniGameState { return g.state }

func (g *MiniGame) update(ctl Controls, dt float32) Result {
	var res Result

	if g.nav.update(g.scene, ctl, dt, &res) {
		return res
	}

	if ctl.Click && ctl.ViewportW > 0 && ctl.ViewportH > 0 {
		if g.whackAt(ctl.CursorX, ctl.CursorY, ctl.ViewportW, ctl.ViewportH) {
			res.Whacked = true
		} else {
			res.Missed = true
		}
	}

	g.state.Step(dt)
	g.syncMoles()
	return res
}

// whackAt picks the nearest mole under the cursor and hits it.
func (g *MiniGame) whackAt(x, y, w, h float32) bool {
	ray := g.scene.Camera().ScreenRay(x, y, w, h)

	boxes := make([]model.Bounds, len(g.moles))
	for i, e := range g.moles {
		boxes[i] = e.WorldBounds()
	}
	i, _ := ray.Nearest(boxes)
	if i < 0 {
		g.state.Miss()
		return false
	}
	return g.state.Whack(i)
}

// syncMoles moves mole entities to their current heights.
func (g *MiniGame) syncMoles() {
	for i, e := range g.moles {
		e.Transform.Position.Y = g.opts.Mole.Position.Y + g.state.Moles[i].Height
	}
}
