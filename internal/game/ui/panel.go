// Package ui draws the control panel overlay.
package ui

import (
	"errors"
	"fmt"
	gomath "math"
	"sync/atomic"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/roam3d/internal/engine/camera"
	"github.com/Faultbox/roam3d/internal/engine/lighting"
	"github.com/Faultbox/roam3d/internal/engine/scene"
	"github.com/Faultbox/roam3d/internal/engine/ui2d"
	"github.com/Faultbox/roam3d/internal/game/stages"
	"github.com/Faultbox/roam3d/internal/logger"
)

const (
	panelX = float32(10)
	panelY = float32(10)
	panelW = float32(280)
	rowH   = float32(20)
)

// Widgets is the immediate-mode toolkit the panel draws with.
type Widgets interface {
	BeginWindow(id string, x, y, w, h float32, title string) bool
	EndWindow()
	Row(height float32)
	Separator()
	Label(text string)
	LabelColored(text string, color ui2d.Color)
	Checkbox(id, label string, checked bool) bool
	SliderFloat(id, label string, value *float32, min, max float32) bool
	ColorEdit(id string, rgb *[3]float32) bool
	Button(id string, width float32, label string) bool
}

// View is what the panel shows and edits for one frame.
type View struct {
	Stage      stages.Kind
	Scene      *scene.Scene
	MiniGame   *stages.MiniGameState // nil outside the mini-game
	ShowBounds *bool
	FPS        int

	// Resource counts: meshes parsed from disk, and meshes and textures
	// uploaded to the GPU.
	LoadedMeshes int
	GPUMeshes    int
	GPUTextures  int
}

// Panel is the live control panel. Files picked with "Load model" arrive on
// Picked; the native dialog runs off the render thread.
type Panel struct {
	ctx     Widgets
	picked  chan string
	picking atomic.Bool

	Visible bool
}

// NewPanel creates a panel drawing into ctx.
func NewPanel(ctx Widgets) *Panel {
	return &Panel{
		ctx:     ctx,
		picked:  make(chan string, 1),
		Visible: true,
	}
}

// Picked delivers model paths chosen in the file dialog.
func (p *Panel) Picked() <-chan string {
	return p.picked
}

// Draw lays out the panel. Slider edits apply to the scene immediately.
func (p *Panel) Draw(v View) {
	if !p.Visible || v.Scene == nil {
		return
	}
	c := p.ctx

	height := float32(540)
	if v.MiniGame != nil {
		height = float32(430)
	}
	if !c.BeginWindow("panel", panelX, panelY, panelW, height, "Controls") {
		return
	}
	defer c.EndWindow()

	c.Row(rowH)
	c.Label(fmt.Sprintf("Stage: %s", v.Stage))
	c.Row(rowH)
	c.LabelColored(fmt.Sprintf("FPS: %d", v.FPS), ui2d.ColorTextDim)
	c.Row(rowH)
	c.LabelColored(resourceLabel(v), ui2d.ColorTextDim)
	c.Row(rowH)
	c.Label(cameraLabel(v.Scene))
	if v.ShowBounds != nil {
		c.Row(rowH)
		*v.ShowBounds = c.Checkbox("bounds", "Show bounds", *v.ShowBounds)
	}

	if v.MiniGame != nil {
		p.drawScore(v.MiniGame)
	} else {
		p.drawModel(v.Scene)
	}
	p.drawLights(&v.Scene.Lights)
}

func (p *Panel) drawScore(g *stages.MiniGameState) {
	c := p.ctx
	c.Separator()
	c.Row(rowH)
	c.LabelColored(fmt.Sprintf("Score: %d", g.Score), ui2d.ColorHighlight)
	c.Row(rowH)
	c.Label(fmt.Sprintf("Misses: %d", g.Misses))
	c.Row(rowH)
	c.LabelColored(fmt.Sprintf("Escaped: %d", g.Escaped), ui2d.ColorWarning)
}

func (p *Panel) drawModel(sc *scene.Scene) {
	c := p.ctx
	c.Separator()
	c.Row(rowH)
	e := sc.Selected()
	if e == nil {
		c.LabelColored("No model", ui2d.ColorTextDim)
	} else {
		c.Label(fmt.Sprintf("Model %d/%d: %s", sc.SelectedIndex()+1, len(sc.Entities), e.Name))
		m := &e.Material
		c.Row(rowH)
		c.LabelColored("Color", ui2d.RGB(e.Color))
		sliderRGB(c, "ka", "ka", &m.Ambient, 0, 1)
		sliderRGB(c, "kd", "kd", &m.Diffuse, 0, 1)
		sliderRGB(c, "ks", "ks", &m.Specular, 0, 1)
		c.Row(rowH)
		if c.SliderFloat("ns", "ns", &m.Shininess, 1, 256) {
			m.ClampShininess()
		}
	}

	c.Row(rowH + 4)
	if c.Button("load", 0, "Load model...") {
		p.openDialog()
	}
}

func (p *Panel) drawLights(rig *lighting.Rig) {
	c := p.ctx
	c.Separator()
	lightRows(c, "ambient", "ambient", &rig.Ambient.Intensity, &rig.Ambient.Color, 2)
	lightRows(c, "key", "key light", &rig.Directional.Intensity, &rig.Directional.Color, 2)
	lightRows(c, "spot", "spot", &rig.Spot.Intensity, &rig.Spot.Color, 5)

	deg := rig.Spot.Cutoff * 180 / gomath.Pi
	c.Row(rowH)
	if c.SliderFloat("cutoff", "cutoff", &deg, 1, 89) {
		rig.Spot.Cutoff = camera.Radians(deg)
	}
}

// lightRows edits one light's intensity, then its color on the next row.
func lightRows(c Widgets, id, label string, intensity *float32, color *[3]float32, max float32) {
	c.Row(rowH)
	c.SliderFloat(id, label, intensity, 0, max)
	c.Row(rowH)
	c.ColorEdit(id+"_color", color)
}

// sliderRGB edits a grey level; all three channels take the slider value.
func sliderRGB(c Widgets, id, label string, rgb *[3]float32, min, max float32) {
	v := rgb[0]
	c.Row(rowH)
	if c.SliderFloat(id, label, &v, min, max) {
		*rgb = [3]float32{v, v, v}
	}
}

func resourceLabel(v View) string {
	return fmt.Sprintf("Meshes: %d loaded, %d on GPU; textures: %d",
		v.LoadedMeshes, v.GPUMeshes, v.GPUTextures)
}

func cameraLabel(sc *scene.Scene) string {
	cam := sc.Camera()
	if cam == nil {
		return "No camera"
	}
	return fmt.Sprintf("Camera %d/%d: %s %s",
		sc.ActiveCamera()+1, len(sc.Cameras), cam.Mode, cam.Projection)
}

// openDialog shows the native file picker unless one is already open.
func (p *Panel) openDialog() {
	if !p.picking.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer p.picking.Store(false)

		path, err := dialog.File().
			Filter("Wavefront OBJ", "obj").
			Filter("All Files", "*").
			Title("Load model").
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				logger.Warn("file dialog failed", zap.Error(err))
			}
			return
		}

		select {
		case p.picked <- path:
		default:
			logger.Warn("model load already pending, dropping pick", zap.String("path", path))
		}
	}()
}
