// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	Wheel  float32
}

// Input collects one frame of events and tracks held keys and buttons
// across frames.
type Input struct {
	events []Event

	held     map[sdl.Scancode]bool
	pressed  map[sdl.Scancode]bool
	buttons  map[uint8]bool
	clicked  map[uint8]bool
	released map[uint8]bool

	mouseX, mouseY   int
	mouseDX, mouseDY float32
	scroll           float32
	quit             bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:   make([]Event, 0, 16),
		held:     make(map[sdl.Scancode]bool),
		pressed:  make(map[sdl.Scancode]bool),
		buttons:  make(map[uint8]bool),
		clicked:  make(map[uint8]bool),
		released: make(map[uint8]bool),
	}
}

// Update polls SDL events. Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.begin()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.handle(event)
	}
	return i.quit
}

// begin clears per-frame state.
func (i *Input) begin() {
	i.events = i.events[:0]
	clear(i.pressed)
	clear(i.clicked)
	clear(i.released)
	i.mouseDX, i.mouseDY = 0, 0
	i.scroll = 0
}

func (i *Input) handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		i.quit = true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		}
		if e.Event == sdl.WINDOWEVENT_FOCUS_LOST {
			// Keys released while unfocused never report KEYUP.
			clear(i.held)
			clear(i.buttons)
		}

	case *sdl.KeyboardEvent:
		sc := e.Keysym.Scancode
		if e.Type == sdl.KEYDOWN {
			if e.Repeat == 0 {
				i.pressed[sc] = true
			}
			i.held[sc] = true
			i.events = append(i.events, Event{Type: EventKeyDown, Key: sc})
		} else if e.Type == sdl.KEYUP {
			delete(i.held, sc)
			i.events = append(i.events, Event{Type: EventKeyUp, Key: sc})
		}

	case *sdl.MouseMotionEvent:
		i.mouseX, i.mouseY = int(e.X), int(e.Y)
		i.mouseDX += float32(e.XRel)
		i.mouseDY += float32(e.YRel)
		i.events = append(i.events, Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
		})

	case *sdl.MouseButtonEvent:
		i.mouseX, i.mouseY = int(e.X), int(e.Y)
		if e.Type == sdl.MOUSEBUTTONDOWN {
			i.buttons[e.Button] = true
			i.clicked[e.Button] = true
			i.events = append(i.events, Event{
				Type:   EventMouseDown,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})
		} else if e.Type == sdl.MOUSEBUTTONUP {
			delete(i.buttons, e.Button)
			i.released[e.Button] = true
			i.events = append(i.events, Event{
				Type:   EventMouseUp,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})
		}

	case *sdl.MouseWheelEvent:
		dy := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		i.scroll += dy
		i.events = append(i.events, Event{Type: EventMouseWheel, Wheel: dy})
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports whether key went down this frame. Auto-repeat does
// not count.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	return i.pressed[scancode]
}

// IsKeyDown reports whether key is currently held.
func (i *Input) IsKeyDown(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// IsMouseDown reports whether button is currently held.
func (i *Input) IsMouseDown(button uint8) bool {
	return i.buttons[button]
}

// IsMouseClicked reports whether button went down this frame.
func (i *Input) IsMouseClicked(button uint8) bool {
	return i.clicked[button]
}

// IsMouseReleased reports whether button went up this frame.
func (i *Input) IsMouseReleased(button uint8) bool {
	return i.released[button]
}

// Mouse returns the last known cursor position in window coordinates.
func (i *Input) Mouse() (int, int) {
	return i.mouseX, i.mouseY
}

// MouseDelta returns the cursor motion accumulated this frame.
func (i *Input) MouseDelta() (float32, float32) {
	return i.mouseDX, i.mouseDY
}

// Scroll returns the vertical wheel motion this frame, positive away from
// the user.
func (i *Input) Scroll() float32 {
	return i.scroll
}
