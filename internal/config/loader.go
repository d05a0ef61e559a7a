package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	platformcore "github.com/vovakirdan/eggdrop/internal/core"
)

// LoadEggdrop loads Egg Drop configuration.
// Search order: customPath -> ~/.arcade/configs/eggdrop.yaml -> ./configs/eggdrop.yaml -> embedded default
//
// Every source is decoded on top of DefaultEggdropConfig, so a partial file
// only overrides the keys it names.
func LoadEggdrop(customPath string) (EggdropConfig, error) {
	cfg := DefaultEggdropConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return Validate(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("eggdrop.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "eggdrop.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	embedded := DefaultEggdropConfig()
	if err := yaml.Unmarshal(defaultEggdropYAML, &embedded); err != nil {
		return DefaultEggdropConfig(), nil // Fallback to hardcoded if embed fails
	}
	return Validate(embedded), nil
}

// tryLoad reads an optional config file. Missing or malformed files are skipped.
func tryLoad(path string) (EggdropConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EggdropConfig{}, false
	}
	cfg := DefaultEggdropConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EggdropConfig{}, false
	}
	return Validate(cfg), true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyEggdropPreset modifies the config based on a difficulty preset.
func ApplyEggdropPreset(cfg *EggdropConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Presets only change the starting hearts; the cap stays put.
	switch preset {
	case DifficultyEasy:
		cfg.Lives.Start = cfg.Lives.Max
	case DifficultyHard:
		cfg.Lives.Start = max(1, cfg.Lives.Max-1)
	}
}

// Validate repairs values that would break the simulation and returns the result.
// Non-positive sizes and rates fall back to defaults, probabilities are clamped to [0, 1].
func Validate(cfg EggdropConfig) EggdropConfig {
	def := DefaultEggdropConfig()

	if cfg.Board.Width <= 0 || cfg.Board.Height <= 0 {
		cfg.Board = def.Board
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		cfg.Player.Width, cfg.Player.Height = def.Player.Width, def.Player.Height
	}
	if cfg.Player.Speed <= 0 {
		cfg.Player.Speed = def.Player.Speed
	}
	cfg.Player.TouchEasing = platformcore.Clamp(cfg.Player.TouchEasing, 0, 1)
	if cfg.Basket.Width <= 0 || cfg.Basket.Height <= 0 {
		cfg.Basket = def.Basket
	}
	if cfg.Spawn.BaseInterval <= 0 {
		cfg.Spawn.BaseInterval = def.Spawn.BaseInterval
	}
	if cfg.Spawn.MinInterval <= 0 || cfg.Spawn.MinInterval > cfg.Spawn.BaseInterval {
		cfg.Spawn.MinInterval = min(def.Spawn.MinInterval, cfg.Spawn.BaseInterval)
	}
	cfg.Spawn.ChestChance = platformcore.Clamp(cfg.Spawn.ChestChance, 0, 1)

	w := &cfg.Spawn.Weights
	for _, p := range []*float64{&w.Heart, &w.Clock, &w.Star, &w.Bomb, &w.Golden, &w.Rotten} {
		*p = platformcore.Clamp(*p, 0, 1)
	}
	if w.Heart+w.Clock+w.Star+w.Bomb+w.Golden+w.Rotten > 1 {
		cfg.Spawn.Weights = def.Spawn.Weights
	}

	if cfg.Fall.BaseSpeed <= 0 {
		cfg.Fall.BaseSpeed = def.Fall.BaseSpeed
	}
	if cfg.PowerUps.Multiplier < 1 {
		cfg.PowerUps.Multiplier = 1
	}
	cfg.PowerUps.SlowMotionFactor = platformcore.Clamp(cfg.PowerUps.SlowMotionFactor, 0, 1)
	if cfg.Scoring.ComboThreshold < 1 {
		cfg.Scoring.ComboThreshold = def.Scoring.ComboThreshold
	}
	if cfg.Lives.Max < 1 {
		cfg.Lives.Max = def.Lives.Max
	}
	if cfg.Lives.Start < 1 || cfg.Lives.Start > cfg.Lives.Max {
		cfg.Lives.Start = cfg.Lives.Max
	}
	if cfg.Weather.MinDurationMs <= 0 {
		cfg.Weather.MinDurationMs = def.Weather.MinDurationMs
	}
	if cfg.Weather.MaxDurationMs < cfg.Weather.MinDurationMs {
		cfg.Weather.MaxDurationMs = cfg.Weather.MinDurationMs
	}
	cfg.Weather.LightningChance = platformcore.Clamp(cfg.Weather.LightningChance, 0, 1)
	if cfg.Pets.FlyMultiplier < 1 {
		cfg.Pets.FlyMultiplier = 1
	}
	if cfg.Difficulty.Progression.MaxAt <= 0 {
		cfg.Difficulty.Progression.MaxAt = def.Difficulty.Progression.MaxAt
	}
	cfg.Difficulty.InitialLevel = platformcore.Clamp(cfg.Difficulty.InitialLevel, 0, 1)
	return cfg
}
