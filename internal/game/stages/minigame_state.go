package stages

import (
	"math/rand"
	"time"
)

// MoleState is the lifecycle phase of one mole.
type MoleState int

const (
	MoleHidden MoleState = iota
	MoleRising
	MoleUp
	MoleSinking
	MoleResting
)

var moleStateNames = [...]string{"hidden", "rising", "up", "sinking", "resting"}

func (s MoleState) String() string {
	if int(s) < len(moleStateNames) {
		return moleStateNames[s]
	}
	return "unknown"
}

// Whackable reports whether a hit in this state scores.
func (s MoleState) Whackable() bool {
	return s == MoleRising || s == MoleUp
}

// MoleRules tunes the pace of the game.
type MoleRules struct {
	RiseSpeed float32 // height units per second, rising and sinking
	MaxHeight float32
	HoldTime  float32 // seconds spent fully up
	RestTime  float32 // seconds spent down before another mole can pop
	MaxActive int     // moles out of their hole at once
	MinOdds   int     // a new mole pops with probability 1/odds per step,
	MaxOdds   int     // odds re-rolled uniformly in [MinOdds, MaxOdds]
}

// DefaultMoleRules matches a 60 Hz pace of 0.05 units per frame, 100 frames
// up and 50 frames resting.
func DefaultMoleRules() MoleRules {
	return MoleRules{
		RiseSpeed: 3,
		MaxHeight: 5,
		HoldTime:  100.0 / 60,
		RestTime:  50.0 / 60,
		MaxActive: 3,
		MinOdds:   7,
		MaxOdds:   21,
	}
}

// Mole is one grid cell of the game.
type Mole struct {
	State  MoleState
	Height float32
	Timer  float32
}

// MiniGameState is the whole mutable state of a whack-a-mole round.
type MiniGameState struct {
	Moles []Mole
	Rules MoleRules

	Score   int
	Misses  int
	Escaped int

	active  int
	odds    int
	started bool
	rng     *rand.Rand
}

// NewMiniGameState creates n hidden moles. A zero seed uses the clock.
func NewMiniGameState(n int, rules MoleRules, seed int64) *MiniGameState {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if rules.MinOdds < 1 {
		rules.MinOdds = 1
	}
	if rules.MaxOdds < rules.MinOdds {
		rules.MaxOdds = rules.MinOdds
	}
	s := &MiniGameState{
		Moles: make([]Mole, n),
		Rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
	s.rerollOdds()
	return s
}

// Active returns the number of moles out of the hidden state.
func (s *MiniGameState) Active() int { return s.active }

// Step advances every mole by dt seconds and possibly pops new ones.
func (s *MiniGameState) Step(dt float32) {
	if len(s.Moles) == 0 {
		return
	}
	if !s.started {
		s.started = true
		s.popRandom()
	}
	if s.active < s.Rules.MaxActive && s.rng.Intn(s.odds) == 0 {
		s.popRandom()
		s.rerollOdds()
	}

	for i := range s.Moles {
		s.advance(i, dt)
	}
}

// Whack hits mole i. It scores and sends the mole down if it was rising or
// up; otherwise it counts as a miss.
func (s *MiniGameState) Whack(i int) bool {
	if i < 0 || i >= len(s.Moles) || !s.Moles[i].State.Whackable() {
		s.Misses++
		return false
	}
	s.Moles[i].State = MoleSinking
	s.Score++
	return true
}

// Miss records a click that hit no mole.
func (s *MiniGameState) Miss() {
	s.Misses++
}

func (s *MiniGameState) advance(i int, dt float32) {
	m := &s.Moles[i]
	switch m.State {
	case MoleRising:
		m.Height += s.Rules.RiseSpeed * dt
		if m.Height >= s.Rules.MaxHeight {
			m.Height = s.Rules.MaxHeight
			m.State = MoleUp
			m.Timer = 0
		}
	case MoleUp:
		m.Timer += dt
		if m.Timer >= s.Rules.HoldTime {
			m.State = MoleSinking
			s.Escaped++
		}
	case MoleSinking:
		m.Height -= s.Rules.RiseSpeed * dt
		if m.Height <= 0 {
			m.Height = 0
			m.State = MoleResting
			m.Timer = 0
		}
	case MoleResting:
		m.Timer += dt
		if m.Timer >= s.Rules.RestTime {
			m.State = MoleHidden
			m.Timer = 0
			s.active--
			s.popRandom()
		}
	}
}

// popRandom raises a random mole if it is hidden.
func (s *MiniGameState) popRandom() bool {
	m := &s.Moles[s.rng.Intn(len(s.Moles))]
	if m.State != MoleHidden {
		return false
	}
	m.State = MoleRising
	m.Height = 0
	m.Timer = 0
	s.active++
	return true
}

func (s *MiniGameState) rerollOdds() {
	s.odds = s.Rules.MinOdds + s.rng.Intn(s.Rules.MaxOdds-s.Rules.MinOdds+1)
}
