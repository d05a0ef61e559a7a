package config

import (
	_ "embed"
)

//go:embed defaults/eggdrop.yaml
var defaultEggdropYAML []byte

// DefaultEggdropConfig returns the default Egg Drop configuration.
func DefaultEggdropConfig() EggdropConfig {
	return EggdropConfig{
		Board: BoardConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			Width:         80,
			Height:        100,
			Speed:         600,
			TouchEasing:   0.2,
			JumpSpeed:     300,
			MaxJumpHeight: 120,
		},
		Basket: BasketConfig{Width: 90, Height: 20, OffsetY: 60},
		Items: ItemsConfig{
			Egg:         Size{Width: 30, Height: 40},
			BombRadius:  20,
			Heart:       Size{Width: 35, Height: 35},
			ClockRadius: 20,
			Star:        Size{Width: 35, Height: 35},
			Chest:       Size{Width: 40, Height: 40},
			MaxDrift:    30,
		},
		Spawn: SpawnConfig{
			BaseInterval: 1.2,
			MinInterval:  0.3,
			ChestChance:  0.20,
			Weights: SpawnWeights{
				Heart:  0.02,
				Clock:  0.03,
				Star:   0.04,
				Bomb:   0.06,
				Golden: 0.10,
				Rotten: 0.15,
			},
		},
		Fall: FallConfig{BaseSpeed: 100},
		PowerUps: PowerUpConfig{
			SlowMotionMs:     5000,
			SlowMotionFactor: 0.5,
			MultiplierMs:     7000,
			Multiplier:       2,
		},
		Scoring: ScoringConfig{
			Normal:         1,
			Golden:         5,
			ComboThreshold: 5,
			ComboWindowMs:  5000,
		},
		Lives: LivesConfig{Start: 3, Max: 3},
		Weather: WeatherConfig{
			InitialMs:       0,
			MinDurationMs:   15000,
			MaxDurationMs:   30000,
			WindPush:        20,
			RainPush:        50,
			SnowDrag:        0.98,
			LightningChance: 0.05,
			LightningBoost:  100,
		},
		Pets: PetsConfig{
			ShieldDurationMs: 3000,
			ShieldIntervalMs: 20000,
			FlyMultiplier:    1.5,
		},
		Skills: []SkillConfig{
			{ID: "dash", Name: "Dash", CooldownMs: 8000, DurationMs: 2000},
			{ID: "shield", Name: "Guard", CooldownMs: 15000, DurationMs: 3000},
			{ID: "double-points", Name: "Double Points", CooldownMs: 12000, DurationMs: 5000},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 3.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "eggdrop", "eggdrop_skills":
		return defaultEggdropYAML
	default:
		return nil
	}
}
