package eggdrop

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/eggdrop/internal/chest"
	"github.com/vovakirdan/eggdrop/internal/config"
	"github.com/vovakirdan/eggdrop/internal/games/eggdrop/core"
)

// Defaults for headless runs.
const (
	DefaultHeadlessDt       = 1.0 / 60
	DefaultHeadlessMaxTicks = 60 * 60 * 10 // Ten minutes of play
)

// HeadlessOptions configures one autopilot session.
type HeadlessOptions struct {
	Config   config.EggdropConfig
	Seed     int64
	PlayerID string
	Skills   bool           // Fire skills as soon as they are ready
	Resolver chest.Resolver // Nil draws from a lottery seeded with Seed
	MaxTicks int
	Dt       float64 // Seconds per tick
}

// HeadlessResult summarizes an autopilot session.
type HeadlessResult struct {
	Seed     int64
	Score    int
	Ticks    uint64
	Seconds  float64
	GameOver bool
	Stats    core.Stats
	Chests   int
	Pet      core.Pet
	Hash     uint64
}

// RunHeadless plays one session with the autopilot and no terminal.
// Chests resolve inline and land on the following tick, so a run is
// reproducible from its seed when the resolver is.
func RunHeadless(ctx context.Context, opts HeadlessOptions) (HeadlessResult, error) {
	cfg := opts.Config
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = DefaultHeadlessMaxTicks
	}
	if opts.Dt <= 0 {
		opts.Dt = DefaultHeadlessDt
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = chest.NewLottery(opts.Seed)
	}

	sim := core.NewSimulator(&cfg, core.NewRNG(opts.Seed))
	s := core.NewState(&cfg, 1)
	res := HeadlessResult{Seed: opts.Seed}

	var pending []core.ChestResult
	for range opts.MaxTicks {
		if s.Tick%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("eggdrop: headless seed %d: %w", opts.Seed, err)
			}
		}

		if opts.Skills {
			for _, def := range cfg.Skills {
				core.TryActivate(s, def, s.Now)
			}
		}

		events := sim.Tick(s, core.TickInput{
			RealDt:    opts.Dt,
			LogicalDt: opts.Dt * core.TimeScale(&cfg, s),
			Controls:  core.Autopilot(&cfg, s),
			Chests:    pending,
		})
		pending = nil
		core.ExpireSkills(s, s.Now)

		for _, ev := range events {
			if ev.Kind != core.EventCatchChest {
				continue
			}
			res.Chests++
			reward, err := resolver.Resolve(ctx, opts.PlayerID)
			if err != nil {
				reward = chest.RewardNone
			}
			pending = append(pending, core.ChestResult{Epoch: s.Epoch, Reward: toReward(reward)})
		}

		if s.GameOver() {
			res.GameOver = true
			break
		}
	}

	res.Score = s.Economy.Score
	res.Ticks = s.Tick
	res.Seconds = s.Now / 1000
	res.Stats = s.Stats
	res.Pet = s.Env.Pet
	res.Hash = s.Hash()
	return res, nil
}

// Simulate runs count sessions with consecutive seeds starting at
// base.Seed, at most parallel at a time. Results are in seed order.
func Simulate(ctx context.Context, base HeadlessOptions, count, parallel int) ([]HeadlessResult, error) {
	if count <= 0 {
		return nil, nil
	}
	if parallel <= 0 {
		parallel = 1
	}

	results := make([]HeadlessResult, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i := range count {
		opts := base
		opts.Seed = base.Seed + int64(i)
		g.Go(func() error {
			r, err := RunHeadless(ctx, opts)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
