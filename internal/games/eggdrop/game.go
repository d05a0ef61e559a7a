// Package eggdrop provides the Egg Drop catching game for the arcade.
package eggdrop

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eggdrop/internal/chest"
	"github.com/vovakirdan/eggdrop/internal/config"
	platformcore "github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/games/eggdrop/core"
	"github.com/vovakirdan/eggdrop/internal/registry"
)

// GameMode selects which ruleset a Game plays.
type GameMode int

const (
	ModeClassic GameMode = iota // Catching only
	ModeSkills                  // Catching plus the skill hotbar
)

// Longest frame the simulation accepts; slower frames are clipped.
const maxFrameDt = 0.1

// settings are shared by every Game created after they are set.
type settings struct {
	configPath string
	preset     config.DifficultyPreset
	resolver   chest.Resolver
	chestOpts  []chest.Option
	logger     *log.Logger
}

var (
	settingsMu sync.RWMutex
	current    = settings{resolver: chest.NewLottery(time.Now().UnixNano())}
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	current.configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	current.preset = config.ParsePreset(preset)
}

// SetChestResolver sets how caught chests are resolved. Options are passed
// to each game's dispatcher.
func SetChestResolver(r chest.Resolver, opts ...chest.Option) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	current.resolver = r
	current.chestOpts = opts
}

// SetLogger sets the logger games report chest activity to.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	current.logger = l
}

func loadSettings() settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return current
}

func init() {
	registry.Register("eggdrop", func() registry.Game {
		return New()
	})
	registry.Register("eggdrop_skills", func() registry.Game {
		return NewSkills()
	})
}

// Game adapts the Egg Drop simulation to the arcade platform.
type Game struct {
	mode GameMode

	runtime platformcore.RuntimeConfig
	cfg     config.EggdropConfig
	sim     *core.Simulator
	state   *core.State
	logger  *log.Logger

	chests *chest.Dispatcher
	epoch  uint64

	paused   bool
	gameOver bool
	events   []core.Event
	fx       effects
	layout   layout
}

// New creates a classic Egg Drop game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewSkills creates an Egg Drop game with the skill hotbar enabled.
func NewSkills() *Game {
	return &Game{mode: ModeSkills}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSkills {
		return "eggdrop_skills"
	}
	return "eggdrop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSkills {
		return "Egg Drop (Skills)"
	}
	return "Egg Drop"
}

// Reset starts a new session. Chest results still in flight for the
// previous session are discarded when they arrive.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	st := loadSettings()

	if runtime.PlayerID == "" {
		runtime.PlayerID = platformcore.DefaultConfig().PlayerID
	}
	g.runtime = runtime

	cfg, err := config.LoadEggdrop(st.configPath)
	if err != nil {
		cfg = config.DefaultEggdropConfig()
	}
	config.ApplyEggdropPreset(&cfg, st.preset)
	g.cfg = cfg

	g.logger = st.logger
	if g.logger == nil {
		g.logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if g.chests == nil {
		opts := append([]chest.Option{chest.WithLogger(g.logger)}, st.chestOpts...)
		g.chests = chest.NewDispatcher(st.resolver, opts...)
	}

	g.epoch++
	g.sim = core.NewSimulator(&g.cfg, core.NewRNG(runtime.Seed+int64(g.epoch))) //#nosec G115 -- epoch is small
	g.state = core.NewState(&g.cfg, g.epoch)
	g.paused = false
	g.gameOver = false
	g.events = nil
	g.fx = effects{}
	g.layout = newLayout(&g.cfg, runtime.ScreenW, runtime.ScreenH)
}

// Step advances the game by one frame.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver {
		g.fx.tick()
		return platformcore.StepResult{State: g.State()}
	}

	if g.mode == ModeSkills && !g.paused {
		g.activateSkills(in)
	}

	realDt := in.Elapsed.Seconds()
	if realDt <= 0 {
		realDt = g.runtime.TickInterval().Seconds()
	}
	realDt = min(realDt, maxFrameDt)

	logicalDt := 0.0
	if !g.paused {
		logicalDt = realDt * core.TimeScale(&g.cfg, g.state)
	}

	g.events = g.sim.Tick(g.state, core.TickInput{
		RealDt:    realDt,
		LogicalDt: logicalDt,
		Controls:  g.controls(in),
		Chests:    g.drainChests(),
	})
	core.ExpireSkills(g.state, g.state.Now)

	for _, ev := range g.events {
		if ev.Kind == core.EventCatchChest && g.chests != nil {
			id := g.chests.Request(g.state.Epoch, g.runtime.PlayerID)
			g.logger.Debug("chest requested", "player", g.runtime.PlayerID, "epoch", g.state.Epoch, "request", id)
		}
	}

	g.fx.observe(g.events, &g.cfg, g.state)
	g.fx.tick()

	if g.state.GameOver() {
		g.gameOver = true
		g.paused = false
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) activateSkills(in platformcore.InputFrame) {
	slots := []platformcore.Action{
		platformcore.ActionSkill1,
		platformcore.ActionSkill2,
		platformcore.ActionSkill3,
	}
	for i, action := range slots {
		if !in.Has(action) || i >= len(g.cfg.Skills) {
			continue
		}
		def := g.cfg.Skills[i]
		if core.TryActivate(g.state, def, g.state.Now) {
			g.fx.skill(def, g.state, &g.cfg)
		}
	}
}

// controls maps platform actions onto engine controls. A pointer column
// becomes an absolute touch target on the board.
func (g *Game) controls(in platformcore.InputFrame) core.Controls {
	c := core.Controls{
		Left:  in.Has(platformcore.ActionLeft),
		Right: in.Has(platformcore.ActionRight),
		Jump:  in.Has(platformcore.ActionJump),
	}
	if in.PointerX != nil {
		x := g.layout.boardX(*in.PointerX)
		c.TouchTarget = &x
	}
	return c
}

func (g *Game) drainChests() []core.ChestResult {
	if g.chests == nil {
		return nil
	}
	results := g.chests.Drain()
	if len(results) == 0 {
		return nil
	}
	out := make([]core.ChestResult, 0, len(results))
	for _, r := range results {
		out = append(out, core.ChestResult{Epoch: r.Epoch, Reward: toReward(r.Reward)})
	}
	return out
}

func toReward(r chest.Reward) core.Reward {
	switch r {
	case chest.RewardKitsune:
		return core.RewardKitsune
	case chest.RewardDragonfly:
		return core.RewardDragonfly
	default:
		return core.RewardNone
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.state == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.state.Economy.Score,
		Lives:    g.state.Economy.Lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Stats: platformcore.RunStats{
			GoldenEggs:  g.state.Stats.GoldenEggs,
			BombsHit:    g.state.Stats.BombsHit,
			RottenHit:   g.state.Stats.RottenHit,
			StarsCaught: g.state.Stats.StarsCaught,
		},
	}
}

// Close stops chest resolution for this game.
func (g *Game) Close() error {
	if g.chests != nil {
		g.chests.Close()
		if n := g.chests.Dropped(); n > 0 {
			g.logger.Warn("chest results dropped", "player", g.runtime.PlayerID, "count", n)
		}
		g.chests = nil
	}
	return nil
}
