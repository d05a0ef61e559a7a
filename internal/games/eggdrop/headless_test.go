package eggdrop

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/eggdrop/internal/chest"
	"github.com/vovakirdan/eggdrop/internal/config"
)

func headlessOptions(seed int64) HeadlessOptions {
	return HeadlessOptions{
		Config:   config.DefaultEggdropConfig(),
		Seed:     seed,
		PlayerID: "bot",
		MaxTicks: 60 * 120,
	}
}

func TestRunHeadlessDeterministic(t *testing.T) {
	a, err := RunHeadless(context.Background(), headlessOptions(7))
	if err != nil {
		t.Fatalf("RunHeadless() error: %v", err)
	}
	b, err := RunHeadless(context.Background(), headlessOptions(7))
	if err != nil {
		t.Fatalf("RunHeadless() error: %v", err)
	}

	if a.Hash != b.Hash || a.Score != b.Score || a.Ticks != b.Ticks {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
	if a.Ticks == 0 || a.Seconds <= 0 {
		t.Errorf("run = %+v, expected ticks and seconds to advance", a)
	}
}

func TestRunHeadlessStopsAtMaxTicks(t *testing.T) {
	opts := headlessOptions(3)
	opts.MaxTicks = 100

	r, err := RunHeadless(context.Background(), opts)
	if err != nil {
		t.Fatalf("RunHeadless() error: %v", err)
	}
	if r.Ticks > 100 {
		t.Errorf("Ticks = %d, expected at most 100", r.Ticks)
	}
}

func TestRunHeadlessResolvesChests(t *testing.T) {
	opts := headlessOptions(11)
	opts.Config.Spawn.ChestChance = 1
	opts.Config.Spawn.Weights = config.SpawnWeights{}
	opts.Resolver = fixedReward(chest.RewardDragonfly)
	opts.MaxTicks = 60 * 30

	r, err := RunHeadless(context.Background(), opts)
	if err != nil {
		t.Fatalf("RunHeadless() error: %v", err)
	}
	if r.Chests == 0 {
		t.Fatal("Chests = 0, expected chest catches")
	}
	if r.Pet.String() != "dragonfly" {
		t.Errorf("Pet = %v, expected dragonfly", r.Pet)
	}
}

func TestRunHeadlessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunHeadless(ctx, headlessOptions(1))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RunHeadless() error = %v, expected context.Canceled", err)
	}
}

func TestSimulateSeedOrder(t *testing.T) {
	results, err := Simulate(context.Background(), headlessOptions(100), 4, 2)
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("len(results) = %d, expected 4", len(results))
	}
	for i, r := range results {
		if r.Seed != int64(100+i) {
			t.Errorf("results[%d].Seed = %d, expected %d", i, r.Seed, 100+i)
		}
	}

	single, err := RunHeadless(context.Background(), headlessOptions(102))
	if err != nil {
		t.Fatalf("RunHeadless() error: %v", err)
	}
	if results[2].Hash != single.Hash {
		t.Error("batched run should match the same seed run alone")
	}
}

func TestSimulateEmpty(t *testing.T) {
	results, err := Simulate(context.Background(), headlessOptions(1), 0, 4)
	if err != nil || results != nil {
		t.Errorf("Simulate(0) = (%v, %v), expected (nil, nil)", results, err)
	}
}
