// Package core holds the Egg Drop simulation: state, spawner, per-tick
// simulator, skills and the event vocabulary. It performs no I/O.
package core

import (
	"encoding/binary"
	"hash/fnv"
	"maps"
	"math"
	"slices"

	"github.com/vovakirdan/eggdrop/internal/config"
	platformcore "github.com/vovakirdan/eggdrop/internal/core"
)

// Controls are the player's held inputs for a tick.
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
	// TouchTarget is an absolute board x the player eases toward.
	// When set it overrides Left and Right.
	TouchTarget *float64
}

// Player is the catcher.
type Player struct {
	X float64 // Left edge, clamped to [0, boardWidth-playerWidth]
	Y float64 // Vertical offset, clamped to [-maxJumpHeight, 0]; 0 is the ground
	Controls
}

// Economy holds score, lives, combo and power-up timers. Timers are ms.
type Economy struct {
	Score           int
	Lives           int
	ComboCounter    int
	ComboActive     bool
	ComboTimer      float64
	ScoreMultiplier int
	MultiplierTimer float64
	SlowMoTimer     float64
}

// Shield is the kitsune pet's periodic protection.
type Shield struct {
	Active         bool
	Remaining      float64 // ms
	NextActivation float64 // Session clock ms
}

// Environment holds weather and pet state.
type Environment struct {
	Weather      Weather
	WeatherTimer float64 // ms until the next transition
	Pet          Pet
	Shield       Shield
}

// Stats are reporting counters. They only grow.
type Stats struct {
	GoldenEggs  int
	BombsHit    int
	RottenHit   int
	StarsCaught int
}

// StatusEffects are temporary modifiers granted by skills.
type StatusEffects struct {
	Invulnerable    bool
	SpeedMultiplier float64 // Horizontal speed factor, 1 when idle
	SkillMultiplier int     // Stacks on top of the star multiplier, 1 when idle
}

// SkillState is one skill's per-session cooldown bookkeeping.
type SkillState struct {
	LastActivated float64 // Session clock ms
	Active        bool
	ExpiresAt     float64 // Session clock ms
}

// State is a complete session snapshot. The Simulator is its only writer
// during a tick; renderers read it between ticks.
type State struct {
	Epoch uint64  // Session generation; chest results from other epochs are dropped
	Tick  uint64  // Ticks simulated so far
	Now   float64 // Session clock in ms, advanced by real time

	Player  Player
	Economy Economy
	Env     Environment
	Stats   Stats
	Status  StatusEffects
	Skills  map[string]*SkillState

	Items            []Item
	SpawnAccumulator float64 // Logical seconds since the last spawn
	NextItemID       uint64
}

// NewState creates a fresh session.
func NewState(cfg *config.EggdropConfig, epoch uint64) *State {
	return &State{
		Epoch: epoch,
		Player: Player{
			X: cfg.Board.Width/2 - cfg.Player.Width/2,
		},
		Economy: Economy{
			Lives:           cfg.Lives.Start,
			ScoreMultiplier: 1,
		},
		Env: Environment{
			Weather:      WeatherSunny,
			WeatherTimer: cfg.Weather.InitialMs,
		},
		Status: StatusEffects{
			SpeedMultiplier: 1,
			SkillMultiplier: 1,
		},
		Skills: make(map[string]*SkillState),
		Items:  make([]Item, 0, 16),
	}
}

// Protection returns the active protection. Skill invulnerability takes
// precedence over the pet shield.
func (s *State) Protection() Protection {
	switch {
	case s.Status.Invulnerable:
		return ProtectionInvulnerable
	case s.Env.Shield.Active:
		return ProtectionShield
	default:
		return ProtectionNone
	}
}

// Protected reports whether life loss is currently blocked.
func (s *State) Protected() bool {
	return s.Protection() != ProtectionNone
}

// Multiplier returns the combined score multiplier from stars and skills.
func (s *State) Multiplier() int {
	m := max(s.Economy.ScoreMultiplier, 1)
	return m * max(s.Status.SkillMultiplier, 1)
}

// GameOver reports whether the session has run out of lives.
func (s *State) GameOver() bool {
	return s.Economy.Lives <= 0
}

// Basket returns the catch rectangle for the current player position.
func Basket(cfg *config.EggdropConfig, p Player) platformcore.Box {
	return platformcore.Box{
		X: p.X + (cfg.Player.Width-cfg.Basket.Width)/2,
		Y: cfg.Board.Height - cfg.Player.Height + cfg.Basket.OffsetY + p.Y,
		W: cfg.Basket.Width,
		H: cfg.Basket.Height,
	}
}

// TimeScale returns the factor a host applies to logical time.
// It drops to the slow-motion factor while a clock power-up runs.
func TimeScale(cfg *config.EggdropConfig, s *State) float64 {
	if s.Economy.SlowMoTimer > 0 {
		return cfg.PowerUps.SlowMotionFactor
	}
	return 1
}

// Hash returns a digest of the simulation-relevant state for determinism testing.
func (s *State) Hash() uint64 {
	h := fnv.New64a()
	var buf []byte
	u := func(v uint64) { buf = binary.LittleEndian.AppendUint64(buf, v) }
	f := func(v float64) { u(math.Float64bits(v)) }
	i := func(v int) { u(uint64(v)) } //#nosec G115 -- hash computation
	b := func(v bool) {
		if v {
			u(1)
		} else {
			u(0)
		}
	}

	u(s.Epoch)
	u(s.Tick)
	f(s.Now)
	f(s.Player.X)
	f(s.Player.Y)
	i(s.Economy.Score)
	i(s.Economy.Lives)
	i(s.Economy.ComboCounter)
	b(s.Economy.ComboActive)
	f(s.Economy.ComboTimer)
	i(s.Economy.ScoreMultiplier)
	f(s.Economy.MultiplierTimer)
	f(s.Economy.SlowMoTimer)
	i(int(s.Env.Weather))
	f(s.Env.WeatherTimer)
	i(int(s.Env.Pet))
	b(s.Env.Shield.Active)
	f(s.Env.Shield.Remaining)
	f(s.Env.Shield.NextActivation)
	i(s.Stats.GoldenEggs)
	i(s.Stats.BombsHit)
	i(s.Stats.RottenHit)
	i(s.Stats.StarsCaught)
	b(s.Status.Invulnerable)
	f(s.Status.SpeedMultiplier)
	i(s.Status.SkillMultiplier)
	for _, id := range slices.Sorted(maps.Keys(s.Skills)) {
		sk := s.Skills[id]
		buf = append(buf, id...)
		f(sk.LastActivated)
		b(sk.Active)
		f(sk.ExpiresAt)
	}
	f(s.SpawnAccumulator)
	u(s.NextItemID)
	for _, it := range s.Items {
		u(it.ID)
		i(int(it.Type))
		f(it.X)
		f(it.Y)
		f(it.VX)
		f(it.VY)
	}

	_, _ = h.Write(buf)
	return h.Sum64()
}
