package core

import (
	"github.com/vovakirdan/eggdrop/internal/config"
)

// typeThreshold is one bucket of the cumulative type table.
type typeThreshold struct {
	upTo float64
	typ  ItemType
}

// Spawner decides when a new item appears and what it is.
type Spawner struct {
	cfg        *config.EggdropConfig
	rng        RNG
	difficulty *config.DifficultyManager
	table      []typeThreshold
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg *config.EggdropConfig, rng RNG, difficulty *config.DifficultyManager) *Spawner {
	w := cfg.Spawn.Weights
	table := make([]typeThreshold, 0, 6)
	acc := 0.0
	for _, e := range []struct {
		p   float64
		typ ItemType
	}{
		{w.Heart, ItemHeart},
		{w.Clock, ItemClock},
		{w.Star, ItemStar},
		{w.Bomb, ItemBomb},
		{w.Golden, ItemGolden},
		{w.Rotten, ItemRotten},
	} {
		acc += e.p
		table = append(table, typeThreshold{upTo: acc, typ: e.typ})
	}
	return &Spawner{cfg: cfg, rng: rng, difficulty: difficulty, table: table}
}

// Interval returns the seconds between spawns at the state's difficulty.
func (sp *Spawner) Interval(s *State) float64 {
	return sp.difficulty.Interval(sp.cfg.Spawn.BaseInterval, sp.cfg.Spawn.MinInterval, s.Economy.Score, s.Now)
}

// MaybeSpawn advances the spawn accumulator by logical time and appends
// a new item once it exceeds the current interval.
func (sp *Spawner) MaybeSpawn(s *State, logicalDt float64) (Item, bool) {
	s.SpawnAccumulator += logicalDt
	if s.SpawnAccumulator <= sp.Interval(s) {
		return Item{}, false
	}
	s.SpawnAccumulator = 0

	it := sp.NewItem(s, sp.RollType(sp.rng.Float64()))
	s.Items = append(s.Items, it)
	return it, true
}

// RollType maps a uniform draw in [0, 1) onto the type table.
// Draws past the last threshold are normal eggs.
func (sp *Spawner) RollType(r float64) ItemType {
	chest := sp.cfg.Spawn.ChestChance
	if r < chest {
		return ItemChest
	}
	if chest >= 1 {
		return ItemChest
	}
	rr := (r - chest) / (1 - chest)
	for _, th := range sp.table {
		if rr < th.upTo {
			return th.typ
		}
	}
	return ItemNormal
}

// NewItem builds an item of the given type just above the board.
func (sp *Spawner) NewItem(s *State, t ItemType) Item {
	w, h := Dimensions(sp.cfg, t)
	s.NextItemID++
	drift := sp.cfg.Items.MaxDrift
	return Item{
		ID:   s.NextItemID,
		Type: t,
		X:    sp.rng.Float64() * (sp.cfg.Board.Width - w),
		Y:    -h,
		W:    w,
		H:    h,
		VX:   (sp.rng.Float64()*2 - 1) * drift,
	}
}
