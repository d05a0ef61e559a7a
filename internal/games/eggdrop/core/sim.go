package core

import (
	"github.com/vovakirdan/eggdrop/internal/config"
	platformcore "github.com/vovakirdan/eggdrop/internal/core"
)

// ChestResult is a resolved chest delivered back to the session that
// caught it. Results whose Epoch does not match the state are stale.
type ChestResult struct {
	Epoch  uint64
	Reward Reward
}

// TickInput is everything the host feeds into one tick.
type TickInput struct {
	RealDt    float64 // Wall-clock seconds since the previous tick
	LogicalDt float64 // Gameplay seconds; 0 while paused
	Controls  Controls
	Chests    []ChestResult // Applied before anything else this tick
}

// Simulator advances a State one tick at a time.
type Simulator struct {
	cfg        *config.EggdropConfig
	rng        RNG
	difficulty *config.DifficultyManager
	spawner    *Spawner
}

// NewSimulator creates a simulator. The rng is shared with its spawner so
// a single seed reproduces a whole session.
func NewSimulator(cfg *config.EggdropConfig, rng RNG) *Simulator {
	dm := config.NewDifficultyManager(cfg.Difficulty)
	return &Simulator{
		cfg:        cfg,
		rng:        rng,
		difficulty: dm,
		spawner:    NewSpawner(cfg, rng, dm),
	}
}

// Config returns the configuration the simulator runs with.
func (sim *Simulator) Config() *config.EggdropConfig {
	return sim.cfg
}

// Spawner returns the simulator's spawner.
func (sim *Simulator) Spawner() *Spawner {
	return sim.spawner
}

// Difficulty returns the current difficulty level in [0, 1].
func (sim *Simulator) Difficulty(s *State) float64 {
	return sim.difficulty.Level(s.Economy.Score, s.Now)
}

// FallSpeed returns the base vertical item speed at the state's difficulty.
func (sim *Simulator) FallSpeed(s *State) float64 {
	return sim.difficulty.Speed(sim.cfg.Fall.BaseSpeed, s.Economy.Score, s.Now)
}

// Tick advances the state and returns what happened, in order.
//
// Order:
//  0. merge chest results for this epoch
//  1. player movement
//  2. spawn
//  3. power-up decay (real time)
//  4. item advection under weather
//  5. catch and miss resolution
//  6. pet shield
//  7. weather transition (real time)
//
// The simulator never ends a session; callers stop ticking once
// State.GameOver reports true.
func (sim *Simulator) Tick(s *State, in TickInput) []Event {
	events := make([]Event, 0, 4)
	realDt := max(in.RealDt, 0)
	logicalDt := max(in.LogicalDt, 0)

	events = sim.MergeChests(s, in.Chests, events)

	// A paused tick stops the session clock too when weather is frozen.
	frozen := logicalDt == 0 && sim.cfg.Weather.FreezeOnPause

	s.Tick++
	if !frozen {
		s.Now += realDt * 1000
	}
	s.Player.Controls = in.Controls

	if logicalDt > 0 {
		sim.movePlayer(s, logicalDt)
		sim.spawner.MaybeSpawn(s, logicalDt)
	}

	sim.decayPowerUps(s, realDt)

	if logicalDt > 0 {
		sim.advectItems(s, logicalDt)
		events = sim.resolveItems(s, events)
	}

	if !frozen {
		events = sim.updateShield(s, realDt, events)
		events = sim.updateWeather(s, realDt, events)
	}

	return events
}

func (sim *Simulator) movePlayer(s *State, dt float64) {
	p := &s.Player
	pw := sim.cfg.Player.Width

	if p.TouchTarget != nil {
		p.X += (*p.TouchTarget - pw/2 - p.X) * sim.cfg.Player.TouchEasing
	} else {
		speed := sim.cfg.Player.Speed * max(s.Status.SpeedMultiplier, 1)
		if p.Left {
			p.X -= speed * dt
		}
		if p.Right {
			p.X += speed * dt
		}
	}
	p.X = platformcore.Clamp(p.X, 0, sim.cfg.Board.Width-pw)

	jump := sim.cfg.Player.JumpSpeed
	if p.Jump {
		if s.Env.Pet == PetDragonfly {
			jump *= sim.cfg.Pets.FlyMultiplier
		}
		p.Y = max(p.Y-jump*dt, -sim.cfg.Player.MaxJumpHeight)
	} else {
		p.Y = min(p.Y+jump*dt, 0)
	}
}

func (sim *Simulator) decayPowerUps(s *State, realDt float64) {
	e := &s.Economy
	ms := realDt * 1000

	if e.SlowMoTimer > 0 {
		e.SlowMoTimer = max(0, e.SlowMoTimer-ms)
	}
	if e.MultiplierTimer > 0 {
		e.MultiplierTimer = max(0, e.MultiplierTimer-ms)
	}
	if e.MultiplierTimer == 0 {
		e.ScoreMultiplier = 1
	}
	if e.ComboActive {
		e.ComboTimer = max(0, e.ComboTimer-ms)
		if e.ComboTimer == 0 {
			e.ComboActive = false
		}
	}
}

func (sim *Simulator) advectItems(s *State, dt float64) {
	vy := sim.FallSpeed(s)
	bw := sim.cfg.Board.Width
	wc := &sim.cfg.Weather

	for i := range s.Items {
		it := &s.Items[i]
		it.VY = vy

		switch s.Env.Weather {
		case WeatherWind:
			it.VX += wc.WindPush * dt
		case WeatherRain:
			it.VY += wc.RainPush * dt
		case WeatherSnow:
			it.VY *= wc.SnowDrag
		case WeatherLightning:
			if sim.rng.Float64() < wc.LightningChance {
				it.VY += wc.LightningBoost
			}
		}

		it.X += it.VX * dt
		it.Y += it.VY * dt

		if it.X <= 0 || it.X+it.W >= bw {
			it.VX = -it.VX
			it.X = platformcore.Clamp(it.X, 0, bw-it.W)
		}
	}
}

// resolveItems catches or misses each item at most once and removes the
// resolved ones in place.
func (sim *Simulator) resolveItems(s *State, events []Event) []Event {
	basket := Basket(sim.cfg, s.Player)
	bottom := sim.cfg.Board.Height

	kept := s.Items[:0]
	for _, it := range s.Items {
		switch {
		case it.Bounds().Intersects(basket):
			events = sim.catchItem(s, it, events)
		case it.Y > bottom:
			events = sim.missItem(s, it, events)
		default:
			kept = append(kept, it)
		}
	}
	clear(s.Items[len(kept):])
	s.Items = kept
	return events
}

func (sim *Simulator) catchItem(s *State, it Item, events []Event) []Event {
	e := &s.Economy
	ev := Event{Kind: catchKind(it.Type), X: it.X, Y: it.Y, Item: it.Type, ItemID: it.ID}
	points := 0

	switch it.Type {
	case ItemNormal:
		points = sim.cfg.Scoring.Normal
	case ItemGolden:
		points = sim.cfg.Scoring.Golden
		s.Stats.GoldenEggs++
	case ItemRotten:
		ev.Blocked = sim.loseLife(s)
		s.Stats.RottenHit++
	case ItemBomb:
		ev.Blocked = sim.loseLife(s)
		s.Stats.BombsHit++
	case ItemHeart:
		if e.Lives < sim.cfg.Lives.Max {
			e.Lives++
		}
	case ItemClock:
		e.SlowMoTimer = sim.cfg.PowerUps.SlowMotionMs
	case ItemStar:
		e.MultiplierTimer = sim.cfg.PowerUps.MultiplierMs
		e.ScoreMultiplier = sim.cfg.PowerUps.Multiplier
		s.Stats.StarsCaught++
	case ItemChest:
		// Resolution happens out of band; the host answers through TickInput.Chests.
	}
	events = append(events, ev)

	if points <= 0 {
		sim.breakCombo(s)
		return events
	}

	e.ComboCounter++
	if e.ComboCounter >= sim.cfg.Scoring.ComboThreshold {
		e.ComboActive = true
		e.ComboTimer = sim.cfg.Scoring.ComboWindowMs
	}
	awarded := points
	if e.ComboActive {
		awarded *= 2
	}
	awarded *= s.Multiplier()
	e.Score += awarded

	return append(events, Event{
		Kind:   EventScoreAdded,
		X:      it.X,
		Y:      it.Y,
		Item:   it.Type,
		ItemID: it.ID,
		Amount: awarded,
	})
}

func (sim *Simulator) missItem(s *State, it Item, events []Event) []Event {
	if !it.Type.Scoring() {
		return events
	}
	blocked := sim.loseLife(s)
	sim.breakCombo(s)
	return append(events, Event{
		Kind:    EventMiss,
		X:       it.X,
		Y:       sim.cfg.Board.Height,
		Item:    it.Type,
		ItemID:  it.ID,
		Blocked: blocked,
	})
}

// loseLife takes a life unless the player is protected.
// It returns true when protection absorbed the hit.
func (sim *Simulator) loseLife(s *State) bool {
	if s.Protected() {
		return true
	}
	s.Economy.Lives = platformcore.Clamp(s.Economy.Lives-1, 0, sim.cfg.Lives.Max)
	return false
}

func (sim *Simulator) breakCombo(s *State) {
	s.Economy.ComboCounter = 0
	s.Economy.ComboActive = false
}
