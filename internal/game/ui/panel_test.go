package ui

import (
	gomath "math"
	"slices"
	"testing"

	"github.com/Faultbox/roam3d/internal/engine/camera"
	"github.com/Faultbox/roam3d/internal/engine/scene"
	"github.com/Faultbox/roam3d/internal/engine/ui2d"
	"github.com/Faultbox/roam3d/internal/game/stages"
)

// fakeWidgets records what the panel draws and applies scripted edits to
// the widgets it names.
type fakeWidgets struct {
	sliders map[string]float32
	colors  map[string][3]float32
	checks  map[string]bool

	ids    []string
	labels []string
}

func newFakeWidgets() *fakeWidgets {
	return &fakeWidgets{
		sliders: make(map[string]float32),
		colors:  make(map[string][3]float32),
		checks:  make(map[string]bool),
	}
}

func (f *fakeWidgets) BeginWindow(id string, x, y, w, h float32, title string) bool { return true }
func (f *fakeWidgets) EndWindow()                                                   {}
func (f *fakeWidgets) Row(height float32)                                           {}
func (f *fakeWidgets) Separator()                                                   {}
func (f *fakeWidgets) Label(text string)                                            { f.labels = append(f.labels, text) }

func (f *fakeWidgets) LabelColored(text string, color ui2d.Color) {
	f.labels = append(f.labels, text)
}

func (f *fakeWidgets) Checkbox(id, label string, checked bool) bool {
	f.ids = append(f.ids, id)
	if v, ok := f.checks[id]; ok {
		return v
	}
	return checked
}

func (f *fakeWidgets) SliderFloat(id, label string, value *float32, min, max float32) bool {
	f.ids = append(f.ids, id)
	v, ok := f.sliders[id]
	if !ok {
		return false
	}
	*value = v
	return true
}

func (f *fakeWidgets) ColorEdit(id string, rgb *[3]float32) bool {
	f.ids = append(f.ids, id)
	v, ok := f.colors[id]
	if !ok {
		return false
	}
	*rgb = v
	return true
}

func (f *fakeWidgets) Button(id string, width float32, label string) bool {
	f.ids = append(f.ids, id)
	return false
}

func TestDrawEditsLights(t *testing.T) {
	w := newFakeWidgets()
	w.colors["key_color"] = [3]float32{1, 0.5, 0}
	w.sliders["spot"] = 3
	w.sliders["cutoff"] = 45

	sc := scene.New()
	before := sc.Lights
	NewPanel(w).Draw(View{Stage: stages.KindRoaming, Scene: sc})

	l := sc.Lights
	if l.Directional.Color != [3]float32{1, 0.5, 0} {
		t.Errorf("key light color = %v", l.Directional.Color)
	}
	if l.Ambient.Color != before.Ambient.Color || l.Spot.Color != before.Spot.Color {
		t.Error("untouched light colors changed")
	}
	if l.Spot.Intensity != 3 {
		t.Errorf("spot intensity = %v, want 3", l.Spot.Intensity)
	}
	if gomath.Abs(float64(l.Spot.Cutoff)-gomath.Pi/4) > 1e-6 {
		t.Errorf("cutoff = %v rad, want pi/4", l.Spot.Cutoff)
	}
	for _, id := range []string{"ambient_color", "key_color", "spot_color"} {
		if !slices.Contains(w.ids, id) {
			t.Errorf("missing color editor %q", id)
		}
	}
}

func TestDrawModelSection(t *testing.T) {
	w := newFakeWidgets()
	w.sliders["kd"] = 0.4
	w.sliders["ns"] = 1000
	w.checks["bounds"] = true

	sc := scene.New()
	e := scene.NewEntity("cabin", nil)
	sc.Add(e)
	show := false

	NewPanel(w).Draw(View{
		Stage: stages.KindRoaming, Scene: sc, ShowBounds: &show,
		LoadedMeshes: 2, GPUMeshes: 1, GPUTextures: 3,
	})

	if e.Material.Diffuse != [3]float32{0.4, 0.4, 0.4} {
		t.Errorf("diffuse = %v", e.Material.Diffuse)
	}
	if e.Material.Shininess != 256 {
		t.Errorf("shininess = %v, want clamp to 256", e.Material.Shininess)
	}
	if !show {
		t.Error("bounds checkbox should write through")
	}
	if !slices.Contains(w.ids, "load") {
		t.Error("roaming panel should offer Load model")
	}
	if !slices.Contains(w.labels, "Meshes: 2 loaded, 1 on GPU; textures: 3") {
		t.Errorf("labels = %q", w.labels)
	}
}

func TestDrawMiniGameScore(t *testing.T) {
	w := newFakeWidgets()
	g := stages.NewMiniGameState(9, stages.MoleRules{}, 1)
	g.Score, g.Misses = 4, 2

	NewPanel(w).Draw(View{Stage: stages.KindMiniGame, Scene: scene.New(), MiniGame: g})

	if !slices.Contains(w.labels, "Score: 4") || !slices.Contains(w.labels, "Misses: 2") {
		t.Errorf("labels = %q", w.labels)
	}
	if slices.Contains(w.ids, "load") {
		t.Error("mini-game panel should not offer Load model")
	}
	if !slices.Contains(w.ids, "spot_color") {
		t.Error("light controls should show in every stage")
	}
}

func TestHiddenPanelDrawsNothing(t *testing.T) {
	w := newFakeWidgets()
	p := NewPanel(w)
	p.Visible = false
	p.Draw(View{Scene: scene.New()})
	if len(w.ids)+len(w.labels) != 0 {
		t.Errorf("hidden panel drew %v %v", w.ids, w.labels)
	}
}

func TestCameraLabel(t *testing.T) {
	sc := scene.New()
	if got := cameraLabel(sc); got != "No camera" {
		t.Errorf("empty scene label = %q", got)
	}

	orbit := camera.NewPerspective(1, 1, 0.1, 100)
	orbit.Mode = camera.Orbit
	sc.AddCamera(orbit)
	sc.AddCamera(camera.NewOrthographic(5, 1, 0.1, 100))

	if got, want := cameraLabel(sc), "Camera 1/2: orbit perspective"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}
	sc.NextCamera()
	if got, want := cameraLabel(sc), "Camera 2/2: free orthographic"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}
}
