// Package game implements the main loop tying window, input, stages,
// rendering, audio and the control panel together.
package game

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/roam3d/internal/assets"
	"github.com/Faultbox/roam3d/internal/config"
	"github.com/Faultbox/roam3d/internal/engine/audio"
	"github.com/Faultbox/roam3d/internal/engine/input"
	"github.com/Faultbox/roam3d/internal/engine/renderer"
	"github.com/Faultbox/roam3d/internal/engine/ui2d"
	"github.com/Faultbox/roam3d/internal/engine/window"
	"github.com/Faultbox/roam3d/internal/game/stages"
	"github.com/Faultbox/roam3d/internal/game/ui"
	"github.com/Faultbox/roam3d/internal/logger"
)

// Title is the window title prefix.
const Title = "roam3d"

// Sound names in the audio bank.
const (
	soundWhack = "whack"
	soundMiss  = "miss"
)

// maxFrameTime caps dt so a stall (window drag, breakpoint) does not launch
// the camera across the scene.
const maxFrameTime = 0.1

// Game is the application instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	ui       *ui2d.Context
	panel    *ui.Panel
	audio    *audio.Manager
	input    *input.Input
	assets   *assets.Manager
	stages   *stages.Controller

	showBounds bool
	fps        int
}

// New opens the window and starts the configured stage.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("media", cfg.Media.Dir),
	)

	start, err := stages.ParseKind(cfg.UI.StartStage)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		input:      input.New(),
		assets:     assets.NewManager(cfg.Media.Dir),
		showBounds: cfg.UI.ShowBounds,
	}

	// Window first: it creates the GL context everything else needs.
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		MSAA:       cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  dw,
		Height: dh,
		MSAA:   cfg.Graphics.MSAA > 0,
	}, g.assets)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to create renderer: %w", err), g.Close())
	}

	ww, wh := g.window.Size()
	g.ui, err = ui2d.NewContext(ww, wh)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to create UI: %w", err), g.Close())
	}
	g.panel = ui.NewPanel(g.ui)
	g.panel.Visible = cfg.UI.ShowPanel

	g.audio = newAudio(cfg.Audio, g.assets)

	g.stages = stages.NewController(g.assets, stages.OptionsFromConfig(cfg), aspect(ww, wh))
	if err := g.stages.Init(start); err != nil {
		return nil, errors.Join(err, g.Close())
	}

	logger.Info("game initialized", zap.Stringer("stage", start))
	return g, nil
}

// newAudio loads the sound bank. Audio is optional: a missing device or
// sound file is logged and the game runs silent.
func newAudio(cfg config.AudioConfig, src *assets.Manager) *audio.Manager {
	m := audio.New()
	m.SetMasterVolume(float64(cfg.MasterVolume))
	m.SetSFXVolume(float64(cfg.SFXVolume))
	m.SetMuted(cfg.Muted)

	for name, path := range map[string]string{soundWhack: cfg.WhackSound, soundMiss: cfg.MissSound} {
		if path == "" {
			continue
		}
		data, err := src.Load(path)
		if err == nil {
			err = m.Load(name, data)
		}
		if err != nil {
			logger.Warn("sound unavailable", zap.String("sound", name), zap.Error(err))
		}
	}

	if err := m.Init(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	}
	return m
}

// Run drives frames until the window closes or Escape is pressed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := min(float32(now.Sub(lastTime).Seconds()), maxFrameTime)
		lastTime = now

		if g.input.Update() || g.input.IsKeyPressed(keyQuit) {
			break
		}
		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				g.resize()
			}
		}

		g.loadPicked()

		if err := g.update(dt); err != nil {
			return err
		}
		g.render()
		g.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			g.fps = int(float64(frameCount) / elapsed.Seconds())
			if g.cfg.UI.ShowFPS {
				g.window.SetTitle(fmt.Sprintf("%s - %s - %d FPS", Title, g.stages.Active(), g.fps))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("game loop stopped")
	return nil
}

func (g *Game) resize() {
	dw, dh := g.window.DrawableSize()
	g.renderer.Resize(dw, dh)
	ww, wh := g.window.Size()
	g.ui.Resize(ww, wh)
	g.stages.Resize(aspect(ww, wh))
}

// loadPicked adds a model chosen in the file dialog, if one arrived.
func (g *Game) loadPicked() {
	select {
	case path := <-g.panel.Picked():
		e, err := g.stages.AddModel(path)
		if err != nil {
			logger.Warn("failed to load model", zap.String("path", path), zap.Error(err))
			return
		}
		logger.Info("model added", zap.String("name", e.Name), zap.String("path", path))
	default:
	}
}

func (g *Game) update(dt float32) error {
	mx, my := g.input.Mouse()
	in := g.ui.Input()
	in.MouseX, in.MouseY = float32(mx), float32(my)
	in.MouseLeftDown = g.input.IsMouseDown(buttonRotate)

	ww, wh := g.window.Size()
	ctl := controls(g.input, g.ui.WantsMouse(), float32(ww), float32(wh))

	if ctl.NextStage {
		if err := g.renderer.Release(); err != nil {
			logger.Warn("releasing GPU resources", zap.Error(err))
		}
	}

	res, err := g.stages.Update(ctl, dt)
	if err != nil {
		if !g.stages.Live() {
			return fmt.Errorf("stage switch: %w", err)
		}
		logger.Error("stage switch failed, staying", zap.Stringer("stage", g.stages.Active()), zap.Error(err))
	}

	switch {
	case res.StageChanged:
		logger.Info("stage changed", zap.Stringer("stage", g.stages.Active()))
	case res.Whacked:
		g.play(soundWhack)
	case res.Missed:
		g.play(soundMiss)
	case res.CameraBlocked:
		logger.Debug("camera blocked", zap.Int("entity", res.BlockedBy))
	}
	return nil
}

func (g *Game) play(name string) {
	if err := g.audio.Play(name); err != nil && !errors.Is(err, audio.ErrNotInitialized) {
		logger.Debug("sound not played", zap.String("sound", name), zap.Error(err))
	}
}

func (g *Game) render() {
	sc := g.stages.Scene()
	if sc == nil {
		return
	}
	sc.ClearColor = g.cfg.Graphics.ClearColor
	sc.ShowBounds = g.showBounds
	g.renderer.Draw(sc)

	gpuMeshes, gpuTextures := g.renderer.Cached()
	g.ui.Begin()
	g.panel.Draw(ui.View{
		Stage:        g.stages.Active(),
		Scene:        sc,
		MiniGame:     g.stages.MiniGame(),
		ShowBounds:   &g.showBounds,
		FPS:          g.fps,
		LoadedMeshes: g.assets.MeshCount(),
		GPUMeshes:    gpuMeshes,
		GPUTextures:  gpuTextures,
	})
	g.ui.End()
}

// Close tears everything down in reverse order of creation. Safe on a
// partially constructed Game.
func (g *Game) Close() error {
	logger.Info("closing game")

	var err error
	if g.stages != nil {
		g.stages.Deinit()
	}
	if g.audio != nil {
		g.audio.Close()
	}
	if g.ui != nil {
		g.ui.Close()
	}
	if g.renderer != nil {
		err = multierr.Append(err, g.renderer.Close())
	}
	if g.assets != nil {
		g.assets.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
	return err
}

func aspect(w, h int) float32 {
	if h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}
