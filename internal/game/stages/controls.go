package stages

// Controls is one frame of input, already mapped from raw device events.
type Controls struct {
	NextStage    bool
	SwitchCamera bool
	SwitchModel  bool
	ResetView    bool

	CameraUp    bool
	CameraDown  bool
	CameraLeft  bool
	CameraRight bool

	ModelUp       bool
	ModelDown     bool
	ModelLeft     bool
	ModelRight    bool
	ModelForward  bool
	ModelBackward bool
	ModelYaw      bool // about world Y
	ModelPitch    bool // about world X
	ModelRoll     bool // about world Z
	ScaleUp       bool
	ScaleDown     bool

	// Dragging is true while the rotate button is held; MouseDX/DY are the
	// cursor motion in pixels since the last frame.
	Dragging bool
	MouseDX  float32
	MouseDY  float32
	Scroll   float32

	// Click is a fresh primary button press at the cursor.
	Click     bool
	CursorX   float32
	CursorY   float32
	ViewportW float32
	ViewportH float32
}

// Result reports what happened during an update.
type Result struct {
	StageChanged  bool
	CameraBlocked bool
	BlockedBy     int // entity index, valid when CameraBlocked
	Whacked       bool
	Missed        bool
}
