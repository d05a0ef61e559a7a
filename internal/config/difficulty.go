package config

import platformcore "github.com/vovakirdan/eggdrop/internal/core"

// DifficultyManager maps a session's progress to a difficulty level in
// [initial_level, 1] and derives the scaled fall speed and spawn cadence.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Level returns the difficulty for a session at score after elapsedMs of
// play. Progression "score" saturates at max_at points, "time" at max_at
// seconds. Disabled progression pins the level to initial_level.
func (d *DifficultyManager) Level(score int, elapsedMs float64) float64 {
	start := d.cfg.InitialLevel
	if !d.cfg.Enabled {
		return start
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsedMs / 1000 / maxAt
	default:
		return start
	}

	return start + platformcore.Clamp(progress, 0, 1)*(1-start)
}

// Speed scales baseSpeed from 1× at level 0 to (1 + speed_multiplier)× at level 1.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, elapsedMs float64) float64 {
	return baseSpeed * (1 + d.Level(score, elapsedMs)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shrinks linearly from base to floor as the level rises.
func (d *DifficultyManager) Interval(base, floor float64, score int, elapsedMs float64) float64 {
	return base - (base-floor)*d.Level(score, elapsedMs)
}
