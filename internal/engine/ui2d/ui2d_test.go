package ui2d

import (
	"testing"
)

func testContext() *Context {
	return newContext(&Renderer{
		screenWidth:  800,
		screenHeight: 600,
		font:         &Font{atlas: newAtlas()},
	})
}

// frame runs one UI frame with the mouse at (x, y).
func frame(c *Context, x, y float32, down bool, draw func()) {
	in := c.Input()
	in.MouseX, in.MouseY, in.MouseLeftDown = x, y, down
	c.Begin()
	draw()
}

func TestAtlasGlyphs(t *testing.T) {
	a := newAtlas()
	if a.cellHeight() != 13 {
		t.Errorf("cell height = %d, want 13", a.cellHeight())
	}
	if a.cell('A') == a.cell('B') {
		t.Error("distinct runes should map to distinct cells")
	}
	if a.cell('\U0001F600') != a.cell('?') {
		t.Error("unknown runes should fall back to '?'")
	}

	u0, v0, u1, v1 := a.uv('A')
	if u0 != 0 || u1 <= 0 || u1 > 1 || v1 <= v0 || v1 > 1 {
		t.Errorf("uv('A') = %v %v %v %v", u0, v0, u1, v1)
	}

	img := a.pixels()
	if img.Bounds().Dx() != a.width || img.Bounds().Dy() != a.height {
		t.Errorf("atlas image size = %v", img.Bounds())
	}
}

func TestMeasure(t *testing.T) {
	a := newAtlas()
	w, h := a.measure("abc", 2)
	if w != 3*7*2 || h != 13*2 {
		t.Errorf("measure(abc) = %v x %v", w, h)
	}
	w, h = a.measure("ab\nlonger", 1)
	if w != 6*7 || h != 2*13 {
		t.Errorf("measure multi-line = %v x %v", w, h)
	}
}

func TestButtonClick(t *testing.T) {
	c := testContext()
	var clicked bool
	draw := func() {
		c.BeginWindow("w", 0, 0, 200, 200, "Panel")
		c.Row(20)
		clicked = c.Button("ok", 100, "OK")
		c.EndWindow()
	}

	// Button spans x 8..108, y 34..54 (title bar 22, padding 8, row gap 4).
	frame(c, 50, 40, false, draw)
	if clicked {
		t.Fatal("hover alone should not click")
	}
	frame(c, 50, 40, true, draw)
	if !clicked {
		t.Fatal("press should click")
	}
	frame(c, 50, 40, true, draw)
	if clicked {
		t.Error("holding should not click again")
	}
	if !c.WantsMouse() {
		t.Error("UI should own the mouse while a button is held")
	}
	frame(c, 50, 40, false, draw)
	if c.activeWidget != "" {
		t.Errorf("active widget %q not cleared on release", c.activeWidget)
	}
}

func TestSliderDrag(t *testing.T) {
	c := testContext()
	value := float32(0)
	var changed bool
	draw := func() {
		c.BeginWindow("w", 0, 0, 216, 200, "Panel")
		c.Row(20)
		changed = c.SliderFloat("v", "value", &value, 0, 10)
		c.EndWindow()
	}

	// Track spans x 8..208.
	frame(c, 108, 40, true, draw)
	if !changed || value < 4.9 || value > 5.1 {
		t.Fatalf("press at middle: changed=%v value=%v", changed, value)
	}

	// Dragging past the end clamps, even outside the track.
	frame(c, 500, 300, true, draw)
	if value != 10 {
		t.Errorf("value = %v, want 10", value)
	}

	frame(c, 500, 300, false, draw)
	frame(c, 8, 40, false, draw)
	if value != 10 {
		t.Errorf("hover after release changed value to %v", value)
	}
}

func TestColorEditChannels(t *testing.T) {
	c := testContext()
	rgb := [3]float32{0.25, 0, 0.75}
	var changed bool
	draw := func() {
		c.BeginWindow("w", 0, 0, 216, 200, "Panel")
		c.Row(20)
		changed = c.ColorEdit("light", &rgb)
		c.EndWindow()
	}

	// Swatch 8..28; channel sliders are 56 wide at 32, 92 and 152.
	frame(c, 120, 40, true, draw)
	if !changed || rgb[1] < 0.49 || rgb[1] > 0.51 {
		t.Fatalf("press on green: changed=%v rgb=%v", changed, rgb)
	}
	frame(c, 500, 40, true, draw)
	frame(c, 500, 40, false, draw)
	if rgb != [3]float32{0.25, 1, 0.75} {
		t.Errorf("rgb = %v, only green should move", rgb)
	}

	frame(c, 60, 40, true, draw)
	if rgb[0] < 0.49 || rgb[0] > 0.51 {
		t.Errorf("press on red: rgb = %v", rgb)
	}
}

func TestCheckboxToggles(t *testing.T) {
	c := testContext()
	checked := false
	draw := func() {
		c.BeginWindow("w", 0, 0, 200, 200, "Panel")
		c.Row(20)
		checked = c.Checkbox("c", "bounds", checked)
		c.EndWindow()
	}

	frame(c, 12, 38, true, draw)
	if checked {
		t.Fatal("checkbox toggles on release, not press")
	}
	frame(c, 12, 38, false, draw)
	if !checked {
		t.Fatal("checkbox should toggle on release")
	}
}

func TestWindowDragAndWantsMouse(t *testing.T) {
	c := testContext()
	draw := func() {
		c.BeginWindow("w", 10, 10, 100, 100, "Panel")
		c.EndWindow()
	}

	frame(c, 500, 500, false, draw)
	if c.WantsMouse() {
		t.Error("cursor outside the window should not be captured")
	}

	frame(c, 20, 15, true, draw)
	frame(c, 60, 45, true, draw)
	frame(c, 60, 45, false, draw)

	ws := c.windows["w"]
	if ws.X != 50 || ws.Y != 40 {
		t.Errorf("window at (%v, %v), want (50, 40)", ws.X, ws.Y)
	}
	if !c.WantsMouse() {
		t.Error("cursor over the window should be captured")
	}
}
