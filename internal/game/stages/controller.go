// Package stages implements the two interchangeable scenes and the controller
// that switches between them.
package stages

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/roam3d/internal/engine/model"
	"github.com/Faultbox/roam3d/internal/engine/scene"
)

// Stage errors.
var (
	ErrUnknownStage = errors.New("unknown stage")
	ErrWrongStage   = errors.New("operation not available in the active stage")
)

// Kind identifies a stage. The set is closed.
type Kind int

const (
	KindRoaming Kind = iota
	KindMiniGame
)

func (k Kind) String() string {
	switch k {
	case KindRoaming:
		return "roaming"
	case KindMiniGame:
		return "minigame"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a stage name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "roaming", "roam":
		return KindRoaming, nil
	case "minigame", "game", "moles":
		return KindMiniGame, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStage, name)
	}
}

// Env supplies stage resources.
type Env interface {
	LoadMesh(path string) (*model.Mesh, error)
}

// Controller owns the active stage and switches stages round-robin.
type Controller struct {
	env    Env
	opts   Options
	order  []Kind
	index  int
	aspect float32

	// Exactly one of these is non-nil while a stage is live.
	roaming  *Roaming
	miniGame *MiniGame
}

// NewController creates a controller cycling through order, which defaults
// to roaming then the mini-game. No stage is live until Init.
func NewController(env Env, opts Options, aspect float32, order ...Kind) *Controller {
	if len(order) == 0 {
		order = []Kind{KindRoaming, KindMiniGame}
	}
	return &Controller{env: env, opts: opts, order: order, aspect: aspect}
}

// Init starts stage k, replacing any live stage.
func (c *Controller) Init(k Kind) error {
	idx := -1
	for i, o := range c.order {
		if o == k {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s is not in the stage order", ErrUnknownStage, k)
	}
	c.deinit()
	c.index = idx
	return c.init(k)
}

// Next deinitializes the current stage and initializes the next one. If the
// next stage fails to start, the previous one is restarted and the error returned.
func (c *Controller) Next() error {
	prev := c.index
	c.deinit()
	c.index = (c.index + 1) % len(c.order)

	err := c.init(c.order[c.index])
	if err == nil {
		return nil
	}
	c.index = prev
	if rerr := c.init(c.order[prev]); rerr != nil {
		return errors.Join(err, rerr)
	}
	return err
}

// Active returns the kind of the current stage.
func (c *Controller) Active() Kind { return c.order[c.index] }

// Live reports whether a stage is running.
func (c *Controller) Live() bool { return c.roaming != nil || c.miniGame != nil }

// Update runs one frame of input handling. A stage switch requested by ctl is
// applied first and ends the frame's handling.
func (c *Controller) Update(ctl Controls, dt float32) (Result, error) {
	if ctl.NextStage {
		if err := c.Next(); err != nil {
			return Result{}, err
		}
		return Result{StageChanged: true}, nil
	}

	switch c.Active() {
	case KindRoaming:
		if c.roaming != nil {
			return c.roaming.update(ctl, dt), nil
		}
	case KindMiniGame:
		if c.miniGame != nil {
			return c.miniGame.update(ctl, dt), nil
		}
	}
	return Result{}, nil
}

// Scene returns the live stage's scene, or nil.
func (c *Controller) Scene() *scene.Scene {
	switch c.Active() {
	case KindRoaming:
		if c.roaming != nil {
			return c.roaming.Scene()
		}
	case KindMiniGame:
		if c.miniGame != nil {
			return c.miniGame.Scene()
		}
	}
	return nil
}

// Resize updates the aspect ratio of the live stage's cameras and of cameras
// created later.
func (c *Controller) Resize(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
	if sc := c.Scene(); sc != nil {
		sc.SetAspect(aspect)
	}
}

// AddModel loads an OBJ file into the roaming stage.
func (c *Controller) AddModel(path string) (*scene.Entity, error) {
	if c.Active() != KindRoaming || c.roaming == nil {
		return nil, fmt.Errorf("%w: adding models needs %s", ErrWrongStage, KindRoaming)
	}
	return c.roaming.AddModel(path)
}

// MiniGame returns the game state while the mini-game is live, else nil.
func (c *Controller) MiniGame() *MiniGameState {
	if c.Active() == KindMiniGame && c.miniGame != nil {
		return c.miniGame.State()
	}
	return nil
}

// Deinit stops the live stage.
func (c *Controller) Deinit() {
	c.deinit()
}

func (c *Controller) init(k Kind) error {
	var err error
	switch k {
	case KindRoaming:
		c.roaming, err = newRoaming(c.env, c.opts.Roaming, c.aspect)
	case KindMiniGame:
		c.miniGame, err = newMiniGame(c.env, c.opts.MiniGame, c.aspect)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownStage, k)
	}
	if err != nil {
		return fmt.Errorf("starting %s stage: %w", k, err)
	}
	return nil
}

func (c *Controller) deinit() {
	c.roaming = nil
	c.miniGame = nil
}
