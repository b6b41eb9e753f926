// Package config handles configuration loading and management.
package config

// ScaleFloor is the smallest uniform scale a model can be shrunk to.
const ScaleFloor = 0.1

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Media    MediaConfig    `yaml:"media"`
	Controls ControlsConfig `yaml:"controls"`
	Roaming  RoamingConfig  `yaml:"roaming"`
	MiniGame MiniGameConfig `yaml:"minigame"`
	UI       UIConfig       `yaml:"ui"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	MSAA       int        `yaml:"msaa"`        // samples, 0 disables
	FOV        float32    `yaml:"fov"`         // vertical, degrees
	ClearColor [3]float32 `yaml:"clear_color"` // RGB 0-1
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float32 `yaml:"master_volume"`
	SFXVolume    float32 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
	WhackSound   string  `yaml:"whack_sound"` // WAV under the media dir
	MissSound    string  `yaml:"miss_sound"`
}

// MediaConfig locates models, textures and sounds.
type MediaConfig struct {
	Dir string `yaml:"dir"`
}

// ControlsConfig holds movement speeds. Rotation speeds are radians per
// second for keys and per pixel per second for mouse drags.
type ControlsConfig struct {
	CameraMoveSpeed     float32 `yaml:"camera_move_speed"`
	CameraRotateSpeed   float32 `yaml:"camera_rotate_speed"`
	MiniGameRotateSpeed float32 `yaml:"minigame_rotate_speed"`
	ModelMoveSpeed      float32 `yaml:"model_move_speed"`
	ModelRotateSpeed    float32 `yaml:"model_rotate_speed"`
	ZoomSpeed           float32 `yaml:"zoom_speed"`
	ScaleRate           float32 `yaml:"scale_rate"`
	MinScale            float32 `yaml:"min_scale"`
}

// ModelConfig places one model.
type ModelConfig struct {
	Name     string     `yaml:"name"`
	Path     string     `yaml:"path"`
	Texture  string     `yaml:"texture"`
	Position [3]float32 `yaml:"position"`
	Scale    float32    `yaml:"scale"`
}

// RoamingConfig describes the free-roaming scene.
type RoamingConfig struct {
	CameraStart   [3]float32    `yaml:"camera_start"`
	ResetPosition [3]float32    `yaml:"reset_position"`
	Models        []ModelConfig `yaml:"models"`
}

// MiniGameConfig describes the whack-a-mole scene and its pace.
type MiniGameConfig struct {
	CameraStart [3]float32  `yaml:"camera_start"`
	Mole        ModelConfig `yaml:"mole"`
	Hole        ModelConfig `yaml:"hole"`
	Spacing     float32     `yaml:"spacing"`
	Seed        int64       `yaml:"seed"` // 0 = random

	RiseSpeed float32 `yaml:"rise_speed"`
	MaxHeight float32 `yaml:"max_height"`
	HoldTime  float32 `yaml:"hold_time"` // seconds
	RestTime  float32 `yaml:"rest_time"` // seconds
	MaxActive int     `yaml:"max_active"`
	MinOdds   int     `yaml:"min_odds"`
	MaxOdds   int     `yaml:"max_odds"`
}

// UIConfig holds overlay settings.
type UIConfig struct {
	StartStage string `yaml:"start_stage"`
	ShowPanel  bool   `yaml:"show_panel"`
	ShowBounds bool   `yaml:"show_bounds"`
	ShowFPS    bool   `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			VSync:      true,
			MSAA:       4,
			FOV:        60,
			ClearColor: [3]float32{0.1, 0.1, 0.12},
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.8,
			WhackSound:   "whack.wav",
			MissSound:    "miss.wav",
		},
		Media: MediaConfig{
			Dir: "media",
		},
		Controls: ControlsConfig{
			CameraMoveSpeed:     5,
			CameraRotateSpeed:   0.2,
			MiniGameRotateSpeed: 0.1,
			ModelMoveSpeed:      5,
			ModelRotateSpeed:    5,
			ZoomSpeed:           5,
			ScaleRate:           1,
			MinScale:            ScaleFloor,
		},
		Roaming: RoamingConfig{
			CameraStart:   [3]float32{0, 5, 20},
			ResetPosition: [3]float32{0, 0, 15},
			Models: []ModelConfig{
				{Name: "bunny", Path: "bunny.obj", Texture: "bunny.png", Position: [3]float32{8.8, 7, 2}, Scale: 1},
				{Name: "cabin", Path: "cabin.obj", Texture: "cabin.png", Position: [3]float32{0, 0, -10}, Scale: 1},
			},
		},
		MiniGame: MiniGameConfig{
			CameraStart: [3]float32{0, 3, 15},
			Mole:        ModelConfig{Name: "gopher", Path: "gopher.obj", Texture: "gopher.png", Scale: 0.9},
			Hole:        ModelConfig{Name: "hole", Path: "hole.obj", Texture: "hole.png", Scale: 0.5},
			Spacing:     5,
			RiseSpeed:   3,
			MaxHeight:   5,
			HoldTime:    100.0 / 60,
			RestTime:    50.0 / 60,
			MaxActive:   3,
			MinOdds:     7,
			MaxOdds:     21,
		},
		UI: UIConfig{
			StartStage: "roaming",
			ShowPanel:  true,
			ShowFPS:    true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}
