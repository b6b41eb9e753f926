package game

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/roam3d/internal/game/stages"
)

// inputState is the part of input.Input the bindings read.
type inputState interface {
	IsKeyPressed(sdl.Scancode) bool
	IsKeyDown(sdl.Scancode) bool
	IsMouseDown(button uint8) bool
	IsMouseClicked(button uint8) bool
	Mouse() (int, int)
	MouseDelta() (float32, float32)
	Scroll() float32
}

// Key bindings.
const (
	keyQuit         = sdl.SCANCODE_ESCAPE
	keyNextStage    = sdl.SCANCODE_RETURN
	keySwitchCamera = sdl.SCANCODE_SPACE
	keySwitchModel  = sdl.SCANCODE_K

	keyCameraUp    = sdl.SCANCODE_W
	keyCameraLeft  = sdl.SCANCODE_A
	keyCameraDown  = sdl.SCANCODE_S
	keyCameraRight = sdl.SCANCODE_D

	keyModelUp       = sdl.SCANCODE_UP
	keyModelDown     = sdl.SCANCODE_DOWN
	keyModelLeft     = sdl.SCANCODE_LEFT
	keyModelRight    = sdl.SCANCODE_RIGHT
	keyModelForward  = sdl.SCANCODE_COMMA
	keyModelBackward = sdl.SCANCODE_PERIOD
	keyModelYaw      = sdl.SCANCODE_Z
	keyModelPitch    = sdl.SCANCODE_X
	keyModelRoll     = sdl.SCANCODE_C
	keyScaleDown     = sdl.SCANCODE_LEFTBRACKET
	keyScaleUp       = sdl.SCANCODE_RIGHTBRACKET

	buttonRotate = sdl.BUTTON_LEFT
	buttonReset  = sdl.BUTTON_MIDDLE
)

// controls maps one frame of device state to stage controls. When the UI
// owns the mouse, mouse input is left out. Viewport size is in window
// coordinates, matching the cursor.
func controls(in inputState, uiWantsMouse bool, viewportW, viewportH float32) stages.Controls {
	ctl := stages.Controls{
		NextStage:    in.IsKeyPressed(keyNextStage),
		SwitchCamera: in.IsKeyPressed(keySwitchCamera),
		SwitchModel:  in.IsKeyPressed(keySwitchModel),

		CameraUp:    in.IsKeyDown(keyCameraUp),
		CameraDown:  in.IsKeyDown(keyCameraDown),
		CameraLeft:  in.IsKeyDown(keyCameraLeft),
		CameraRight: in.IsKeyDown(keyCameraRight),

		ModelUp:       in.IsKeyDown(keyModelUp),
		ModelDown:     in.IsKeyDown(keyModelDown),
		ModelLeft:     in.IsKeyDown(keyModelLeft),
		ModelRight:    in.IsKeyDown(keyModelRight),
		ModelForward:  in.IsKeyDown(keyModelForward),
		ModelBackward: in.IsKeyDown(keyModelBackward),
		ModelYaw:      in.IsKeyDown(keyModelYaw),
		ModelPitch:    in.IsKeyDown(keyModelPitch),
		ModelRoll:     in.IsKeyDown(keyModelRoll),
		ScaleUp:       in.IsKeyDown(keyScaleUp),
		ScaleDown:     in.IsKeyDown(keyScaleDown),

		ViewportW: viewportW,
		ViewportH: viewportH,
	}
	if uiWantsMouse {
		return ctl
	}

	x, y := in.Mouse()
	ctl.CursorX, ctl.CursorY = float32(x), float32(y)
	ctl.ResetView = in.IsMouseClicked(buttonReset)
	ctl.Click = in.IsMouseClicked(buttonRotate)
	ctl.Dragging = in.IsMouseDown(buttonRotate)
	ctl.MouseDX, ctl.MouseDY = in.MouseDelta()
	ctl.Scroll = in.Scroll()
	return ctl
}
