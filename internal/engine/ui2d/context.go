package ui2d

import "fmt"

const (
	textScale   = float32(1)
	titleBarH   = float32(22)
	padding     = float32(8)
	defaultRowH = float32(22)
)

// Context is the main UI context that manages rendering and input.
type Context struct {
	renderer *Renderer
	input    *InputState

	// Widget holding the mouse, if any
	activeWidget string

	windows       map[string]*WindowState
	currentWindow *WindowState

	// Layout state
	cursorX float32
	cursorY float32
	rowH    float32
}

// WindowState holds state for a UI window.
type WindowState struct {
	ID     string
	X, Y   float32
	W, H   float32
	Open   bool
	Moving bool
	moved  bool
}

// NewContext creates a new UI context. Requires a GL context.
func NewContext(width, height int) (*Context, error) {
	r, err := New(width, height)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	return newContext(r), nil
}

func newContext(r *Renderer) *Context {
	return &Context{
		renderer: r,
		input:    &InputState{},
		windows:  make(map[string]*WindowState),
	}
}

// Close releases resources.
func (c *Context) Close() {
	if c.renderer != nil {
		c.renderer.Close()
	}
}

// Resize updates the screen size.
func (c *Context) Resize(width, height int) {
	c.renderer.Resize(width, height)
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
	c.renderer.Begin()
}

// End finishes the UI frame.
func (c *Context) End() {
	c.renderer.End()
}

// WantsMouse reports whether the cursor is over a window or a widget is
// being dragged, so the scene should ignore the mouse this frame.
func (c *Context) WantsMouse() bool {
	if c.activeWidget != "" {
		return true
	}
	for _, ws := range c.windows {
		if ws.Open && c.input.IsMouseInRect(ws.X, ws.Y, ws.W, ws.H) {
			return true
		}
	}
	return false
}

// BeginWindow starts a new window. The title bar drags the window; once
// moved, later position arguments are ignored.
// Returns false if the window is closed.
func (c *Context) BeginWindow(id string, x, y, w, h float32, title string) bool {
	ws, ok := c.windows[id]
	if !ok {
		ws = &WindowState{ID: id, X: x, Y: y, W: w, H: h, Open: true}
		c.windows[id] = ws
	} else if !ws.moved {
		ws.X, ws.Y = x, y
	}
	ws.W, ws.H = w, h

	if !ws.Open {
		return false
	}
	c.currentWindow = ws

	titleBar := Rect{ws.X, ws.Y, ws.W, titleBarH}
	if c.input.MouseLeftPressed && titleBar.Contains(c.input.MouseX, c.input.MouseY) {
		ws.Moving = true
		c.activeWidget = id + "_titlebar"
	} else if ws.Moving && c.input.MouseLeftDown {
		ws.X += c.input.MouseDeltaX
		ws.Y += c.input.MouseDeltaY
		ws.moved = true
	}
	if c.input.MouseLeftReleased && ws.Moving {
		ws.Moving = false
		if c.activeWidget == id+"_titlebar" {
			c.activeWidget = ""
		}
	}

	c.renderer.DrawPanel(ws.X, ws.Y, ws.W, ws.H, ColorPanelBg, ColorPanelBorder)
	c.renderer.DrawRect(ws.X+1, ws.Y+1, ws.W-2, titleBarH-1, ColorButtonNormal.Darken(0.2))
	_, textH := c.renderer.MeasureText(title, textScale)
	c.renderer.DrawText(ws.X+padding, ws.Y+(titleBarH-textH)/2, title, textScale, ColorText)

	c.cursorX = ws.X + padding
	c.cursorY = ws.Y + titleBarH + padding
	c.rowH = 0
	return true
}

// EndWindow ends the current window.
func (c *Context) EndWindow() {
	c.currentWindow = nil
}

// Row starts a new row with the given height.
func (c *Context) Row(height float32) {
	if c.currentWindow == nil {
		return
	}
	c.cursorX = c.currentWindow.X + padding
	c.cursorY += c.rowH + 4
	c.rowH = height
}

func (c *Context) contentWidth() float32 {
	return c.currentWindow.W - 2*padding
}

func (c *Context) rowHeight() float32 {
	if c.rowH == 0 {
		return defaultRowH
	}
	return c.rowH
}

// Button draws a button and returns true on the frame it is pressed.
// A zero width fills the row.
func (c *Context) Button(id string, width float32, label string) bool {
	if c.currentWindow == nil {
		return false
	}

	x, y, h := c.cursorX, c.cursorY, c.rowHeight()
	if width == 0 {
		width = c.contentWidth()
	}

	fullID := c.currentWindow.ID + "_" + id
	hovered := Rect{x, y, width, h}.Contains(c.input.MouseX, c.input.MouseY)
	clicked := false

	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
		clicked = true
	}
	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		c.activeWidget = ""
	}

	color := ColorButtonNormal
	if c.activeWidget == fullID {
		color = ColorButtonActive
	} else if hovered {
		color = ColorButtonHover
	}
	c.renderer.DrawRect(x, y, width, h, color)
	c.renderer.DrawRectOutline(x, y, width, h, 1, ColorPanelBorder)

	textW, textH := c.renderer.MeasureText(label, textScale)
	c.renderer.DrawText(x+(width-textW)/2, y+(h-textH)/2, label, textScale, ColorText)

	c.cursorX += width + 4
	return clicked
}

// Label draws a text label.
func (c *Context) Label(text string) {
	c.LabelColored(text, ColorText)
}

// LabelColored draws a text label with a specific color.
func (c *Context) LabelColored(text string, color Color) {
	if c.currentWindow == nil {
		return
	}
	c.renderer.DrawText(c.cursorX, c.cursorY, text, textScale, color)
	w, _ := c.renderer.MeasureText(text, textScale)
	c.cursorX += w + 4
}

// Checkbox draws a checkbox and returns its new state.
func (c *Context) Checkbox(id string, label string, checked bool) bool {
	if c.currentWindow == nil {
		return checked
	}

	x, y := c.cursorX, c.cursorY
	boxSize := float32(16)

	fullID := c.currentWindow.ID + "_" + id
	hovered := Rect{x, y, boxSize, boxSize}.Contains(c.input.MouseX, c.input.MouseY)

	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
	}
	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		if hovered {
			checked = !checked
		}
		c.activeWidget = ""
	}

	bg := ColorInputBg
	if hovered {
		bg = ColorButtonHover
	}
	c.renderer.DrawRect(x, y, boxSize, boxSize, bg)
	c.renderer.DrawRectOutline(x, y, boxSize, boxSize, 1, ColorPanelBorder)
	if checked {
		inner := float32(4)
		c.renderer.DrawRect(x+inner, y+inner, boxSize-inner*2, boxSize-inner*2, ColorHighlight)
	}

	labelW, textH := c.renderer.MeasureText(label, textScale)
	c.renderer.DrawText(x+boxSize+8, y+(boxSize-textH)/2, label, textScale, ColorText)

	c.cursorX += boxSize + 8 + labelW + 8
	return checked
}

// SliderFloat draws a horizontal slider for *value in [min, max] and
// reports whether the value changed. Dragging anywhere after pressing on
// the track keeps updating the value.
func (c *Context) SliderFloat(id, label string, value *float32, min, max float32) bool {
	if c.currentWindow == nil || max <= min {
		return false
	}
	return c.slider(id, label, value, min, max, c.currentWindow.X+c.currentWindow.W-padding-c.cursorX)
}

// ColorEdit draws a swatch followed by one [0, 1] slider per channel and
// reports whether any channel changed.
func (c *Context) ColorEdit(id string, rgb *[3]float32) bool {
	if c.currentWindow == nil {
		return false
	}

	h := c.rowHeight()
	c.renderer.DrawRect(c.cursorX, c.cursorY, h, h, RGB(*rgb))
	c.renderer.DrawRectOutline(c.cursorX, c.cursorY, h, h, 1, ColorPanelBorder)
	c.cursorX += h + 4

	width := (c.currentWindow.X + c.currentWindow.W - padding - c.cursorX - 8) / 3
	changed := false
	for i, name := range [3]string{"r", "g", "b"} {
		if c.slider(id+"_"+name, name, &rgb[i], 0, 1, width) {
			changed = true
		}
	}
	return changed
}

func (c *Context) slider(id, label string, value *float32, min, max, width float32) bool {
	x, y, h := c.cursorX, c.cursorY, c.rowHeight()

	fullID := c.currentWindow.ID + "_" + id
	hovered := Rect{x, y, width, h}.Contains(c.input.MouseX, c.input.MouseY)
	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
	}

	changed := false
	if c.activeWidget == fullID {
		if c.input.MouseLeftDown || c.input.MouseLeftPressed {
			t := (c.input.MouseX - x) / width
			t = clamp01(t)
			v := min + t*(max-min)
			if v != *value {
				*value = v
				changed = true
			}
		}
		if c.input.MouseLeftReleased {
			c.activeWidget = ""
		}
	}

	frac := clamp01((*value - min) / (max - min))
	c.renderer.DrawRect(x, y, width, h, ColorInputBg)
	if fill := (width - 2) * frac; fill > 0 {
		c.renderer.DrawRect(x+1, y+1, fill, h-2, ColorHighlight.WithAlpha(0.6))
	}
	c.renderer.DrawRectOutline(x, y, width, h, 1, ColorPanelBorder)

	text := fmt.Sprintf("%s: %.2f", label, *value)
	textW, textH := c.renderer.MeasureText(text, textScale)
	c.renderer.DrawText(x+(width-textW)/2, y+(h-textH)/2, text, textScale, ColorText)

	c.cursorX += width + 4
	return changed
}

// Spacer adds vertical space.
func (c *Context) Spacer(height float32) {
	c.cursorY += height
}

// Separator draws a horizontal separator line.
func (c *Context) Separator() {
	if c.currentWindow == nil {
		return
	}
	c.cursorY += c.rowH + 4
	c.rowH = 0
	x := c.currentWindow.X + padding
	c.renderer.DrawRect(x, c.cursorY, c.contentWidth(), 1, ColorPanelBorder)
	c.cursorY += padding
	c.cursorX = x
}

// GetScreenSize returns the current screen dimensions.
func (c *Context) GetScreenSize() (float32, float32) {
	w, h := c.renderer.GetScreenSize()
	return float32(w), float32(h)
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
