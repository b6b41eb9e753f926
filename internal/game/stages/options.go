package stages

import (
	gomath "math"

	"github.com/Faultbox/roam3d/internal/config"
	"github.com/Faultbox/roam3d/pkg/math"
)

// Speeds scale the per-second effect of held controls.
type Speeds struct {
	CameraMove   float32
	CameraRotate float32 // radians per pixel per second
	ModelMove    float32
	ModelRotate  float32 // radians per second
	Zoom         float32
	ScaleRate    float32 // uniform scale units per second
	MinScale     float32
}

// ModelSpec places a mesh from the media directory.
type ModelSpec struct {
	Name     string
	Path     string
	Texture  string
	Position math.Vec3
	Scale    float32
}

// CameraSpec configures the perspective parameters shared by a stage's cameras.
type CameraSpec struct {
	FovY  float32 // radians
	Near  float32
	Far   float32
	Start math.Vec3
	Home  math.Vec3 // reset view position
}

// RoamingOptions configures the free-roaming stage.
type RoamingOptions struct {
	Camera CameraSpec
	Models []ModelSpec
	Speeds Speeds
}

// MiniGameOptions configures the whack-a-mole stage.
type MiniGameOptions struct {
	Camera  CameraSpec
	Mole    ModelSpec
	Hole    ModelSpec
	Spacing float32 // distance between grid cells
	Speeds  Speeds
	Rules   MoleRules
	Seed    int64 // 0 picks a time-based seed
}

// Options configures every stage.
type Options struct {
	Roaming  RoamingOptions
	MiniGame MiniGameOptions
}

// DefaultOptions returns the options built from the default config.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig maps the user config to stage options. Model paths stay
// relative to the media directory; the Env resolves them.
func OptionsFromConfig(cfg *config.Config) Options {
	fov := cfg.Graphics.FOV * gomath.Pi / 180
	ctl := cfg.Controls
	rg := cfg.Roaming
	mg := cfg.MiniGame

	models := make([]ModelSpec, 0, len(rg.Models))
	for _, m := range rg.Models {
		models = append(models, modelSpec(m))
	}

	return Options{
		Roaming: RoamingOptions{
			Camera: CameraSpec{
				FovY: fov, Near: 0.1, Far: 10000,
				Start: math.Vec3From(rg.CameraStart),
				Home:  math.Vec3From(rg.ResetPosition),
			},
			Models: models,
			Speeds: Speeds{
				CameraMove:   ctl.CameraMoveSpeed,
				CameraRotate: ctl.CameraRotateSpeed,
				ModelMove:    ctl.ModelMoveSpeed,
				ModelRotate:  ctl.ModelRotateSpeed,
				Zoom:         ctl.ZoomSpeed,
				ScaleRate:    ctl.ScaleRate,
				MinScale:     ctl.MinScale,
			},
		},
		MiniGame: MiniGameOptions{
			Camera: CameraSpec{
				FovY: fov, Near: 0.1, Far: 10000,
				Start: math.Vec3From(mg.CameraStart),
				Home:  math.Vec3From(mg.CameraStart),
			},
			Mole:    modelSpec(mg.Mole),
			Hole:    modelSpec(mg.Hole),
			Spacing: mg.Spacing,
			Speeds: Speeds{
				CameraMove:   ctl.CameraMoveSpeed,
				CameraRotate: ctl.MiniGameRotateSpeed,
				Zoom:         ctl.ZoomSpeed,
				ScaleRate:    ctl.ScaleRate,
				MinScale:     ctl.MinScale,
			},
			Rules: MoleRules{
				RiseSpeed: mg.RiseSpeed,
				MaxHeight: mg.MaxHeight,
				HoldTime:  mg.HoldTime,
				RestTime:  mg.RestTime,
				MaxActive: mg.MaxActive,
				MinOdds:   mg.MinOdds,
				MaxOdds:   mg.MaxOdds,
			},
			Seed: mg.Seed,
		},
	}
}

func modelSpec(m config.ModelConfig) ModelSpec {
	return ModelSpec{
		Name:     m.Name,
		Path:     m.Path,
		Texture:  m.Texture,
		Position: math.Vec3From(m.Position),
		Scale:    m.Scale,
	}
}
