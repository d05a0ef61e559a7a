package core

import (
	"math"
	"testing"

	"github.com/vovakirdan/eggdrop/internal/config"
)

func newTestSpawner(seed int64) (*Spawner, *State, *config.EggdropConfig) {
	cfg := config.DefaultEggdropConfig()
	rng := NewRNG(seed)
	sp := NewSpawner(&cfg, rng, config.NewDifficultyManager(cfg.Difficulty))
	return sp, NewState(&cfg, 1), &cfg
}

func TestRollTypeBoundaries(t *testing.T) {
	sp, _, _ := newTestSpawner(1)

	tests := []struct {
		r        float64
		expected ItemType
	}{
		{0.0, ItemChest},
		{0.1999, ItemChest},
		{0.20, ItemHeart},
		{0.20 + 0.8*0.019, ItemHeart},
		{0.20 + 0.8*0.021, ItemClock},
		{0.20 + 0.8*0.06, ItemStar},
		{0.20 + 0.8*0.10, ItemBomb},
		{0.20 + 0.8*0.20, ItemGolden},
		{0.20 + 0.8*0.30, ItemRotten},
		{0.20 + 0.8*0.41, ItemNormal},
		{0.9999999, ItemNormal},
	}
	for _, tt := range tests {
		if got := sp.RollType(tt.r); got != tt.expected {
			t.Errorf("RollType(%v) = %s, expected %s", tt.r, got, tt.expected)
		}
	}
}

func TestSpawnFrequencies(t *testing.T) {
	sp, _, _ := newTestSpawner(2024)
	const draws = 100000

	counts := make(map[ItemType]int)
	for i := 0; i < draws; i++ {
		counts[sp.RollType(sp.rng.Float64())]++
	}

	expected := map[ItemType]float64{
		ItemChest:  0.20,
		ItemHeart:  0.80 * 0.02,
		ItemClock:  0.80 * 0.03,
		ItemStar:   0.80 * 0.04,
		ItemBomb:   0.80 * 0.06,
		ItemGolden: 0.80 * 0.10,
		ItemRotten: 0.80 * 0.15,
		ItemNormal: 0.80 * 0.60,
	}
	for typ, p := range expected {
		got := float64(counts[typ]) / draws
		if math.Abs(got-p) > 0.01 {
			t.Errorf("%s frequency = %.4f, expected %.4f ± 0.01", typ, got, p)
		}
	}
}

func TestSpawnCadence(t *testing.T) {
	sp, s, _ := newTestSpawner(1)

	spawned := 0
	for i := 0; i < 3; i++ {
		if _, ok := sp.MaybeSpawn(s, 0.5); ok {
			spawned++
		}
	}
	// 0.5, 1.0, then 1.5 > 1.2
	if spawned != 1 {
		t.Fatalf("spawned %d items, expected 1", spawned)
	}
	if s.SpawnAccumulator != 0 {
		t.Errorf("SpawnAccumulator = %v, expected reset to 0", s.SpawnAccumulator)
	}
	if len(s.Items) != 1 {
		t.Errorf("len(Items) = %d, expected 1", len(s.Items))
	}
}

func TestSpawnIntervalScalesWithScore(t *testing.T) {
	sp, s, _ := newTestSpawner(1)
	if got := sp.Interval(s); got != 1.2 {
		t.Errorf("Interval at 0 = %v, expected 1.2", got)
	}
	s.Economy.Score = 500
	if got := sp.Interval(s); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("Interval at 500 = %v, expected 0.3", got)
	}
	s.Economy.Score = 100000
	if got := sp.Interval(s); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("Interval past saturation = %v, expected 0.3", got)
	}
}

func TestSpawnPlacement(t *testing.T) {
	sp, s, cfg := newTestSpawner(77)
	seen := make(map[uint64]bool)

	for i := 0; i < 2000; i++ {
		it := sp.NewItem(s, sp.RollType(sp.rng.Float64()))
		if seen[it.ID] {
			t.Fatalf("duplicate item id %d", it.ID)
		}
		seen[it.ID] = true

		if it.X < 0 || it.X > cfg.Board.Width-it.W {
			t.Fatalf("item x %v outside [0, %v]", it.X, cfg.Board.Width-it.W)
		}
		if it.Y != -it.H {
			t.Fatalf("item y = %v, expected %v", it.Y, -it.H)
		}
		if it.VX < -30 || it.VX >= 30 {
			t.Fatalf("item vx = %v, expected [-30, 30)", it.VX)
		}
	}
}

func TestDimensions(t *testing.T) {
	cfg := config.DefaultEggdropConfig()
	tests := []struct {
		typ  ItemType
		w, h float64
	}{
		{ItemNormal, 30, 40},
		{ItemGolden, 30, 40},
		{ItemRotten, 30, 40},
		{ItemBomb, 40, 40},
		{ItemHeart, 35, 35},
		{ItemClock, 40, 40},
		{ItemStar, 35, 35},
		{ItemChest, 40, 40},
		{ItemType(99), 30, 40},
	}
	for _, tt := range tests {
		w, h := Dimensions(&cfg, tt.typ)
		if w != tt.w || h != tt.h {
			t.Errorf("Dimensions(%s) = %vx%v, expected %vx%v", tt.typ, w, h, tt.w, tt.h)
		}
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	a, sa, _ := newTestSpawner(99)
	b, sb, _ := newTestSpawner(99)
	for i := 0; i < 200; i++ {
		a.MaybeSpawn(sa, 0.3)
		b.MaybeSpawn(sb, 0.3)
	}
	if len(sa.Items) != len(sb.Items) {
		t.Fatalf("item counts differ: %d vs %d", len(sa.Items), len(sb.Items))
	}
	for i := range sa.Items {
		if sa.Items[i] != sb.Items[i] {
			t.Fatalf("item %d differs: %+v vs %+v", i, sa.Items[i], sb.Items[i])
		}
	}
}
