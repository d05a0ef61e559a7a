// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// EggdropConfig contains all configuration for the Egg Drop game.
// Distances are board pixels, speeds are pixels per second and
// durations are milliseconds unless a field says otherwise.
type EggdropConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Player     PlayerConfig     `yaml:"player"`
	Basket     BasketConfig     `yaml:"basket"`
	Items      ItemsConfig      `yaml:"items"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Fall       FallConfig       `yaml:"fall"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Lives      LivesConfig      `yaml:"lives"`
	Weather    WeatherConfig    `yaml:"weather"`
	Pets       PetsConfig       `yaml:"pets"`
	Skills     []SkillConfig    `yaml:"skills"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the logical playfield.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the catcher character.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	TouchEasing   float64 `yaml:"touch_easing"`    // Fraction of the distance to the pointer covered per tick
	JumpSpeed     float64 `yaml:"jump_speed"`      // Vertical speed while rising or falling back
	MaxJumpHeight float64 `yaml:"max_jump_height"` // Highest offset above the ground
}

// BasketConfig defines the catch hitbox attached to the player.
type BasketConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetY float64 `yaml:"offset_y"` // Distance from the player's top edge
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ItemsConfig defines the falling item dimensions.
type ItemsConfig struct {
	Egg         Size    `yaml:"egg"` // Normal, golden and rotten eggs
	BombRadius  float64 `yaml:"bomb_radius"`
	Heart       Size    `yaml:"heart"`
	ClockRadius float64 `yaml:"clock_radius"`
	Star        Size    `yaml:"star"`
	Chest       Size    `yaml:"chest"`
	MaxDrift    float64 `yaml:"max_drift"` // Spawn vx is uniform in [-max_drift, max_drift)
}

// SpawnConfig defines spawn cadence and the type table.
type SpawnConfig struct {
	BaseInterval float64      `yaml:"base_interval"` // Seconds between spawns at difficulty 0
	MinInterval  float64      `yaml:"min_interval"`  // Seconds between spawns at difficulty 1
	ChestChance  float64      `yaml:"chest_chance"`
	Weights      SpawnWeights `yaml:"weights"`
}

// SpawnWeights are probabilities within the non-chest draw.
// Whatever is left after these goes to normal eggs.
type SpawnWeights struct {
	Heart  float64 `yaml:"heart"`
	Clock  float64 `yaml:"clock"`
	Star   float64 `yaml:"star"`
	Bomb   float64 `yaml:"bomb"`
	Golden float64 `yaml:"golden"`
	Rotten float64 `yaml:"rotten"`
}

// FallConfig defines item fall speed.
type FallConfig struct {
	BaseSpeed float64 `yaml:"base_speed"`
}

// PowerUpConfig defines clock and star effects.
type PowerUpConfig struct {
	SlowMotionMs     float64 `yaml:"slow_motion_ms"`
	SlowMotionFactor float64 `yaml:"slow_motion_factor"`
	MultiplierMs     float64 `yaml:"multiplier_ms"`
	Multiplier       int     `yaml:"multiplier"`
}

// ScoringConfig defines points and combo rules.
type ScoringConfig struct {
	Normal         int     `yaml:"normal"`
	Golden         int     `yaml:"golden"`
	ComboThreshold int     `yaml:"combo_threshold"`
	ComboWindowMs  float64 `yaml:"combo_window_ms"`
}

// LivesConfig defines the life economy.
type LivesConfig struct {
	Start int `yaml:"start"`
	Max   int `yaml:"max"`
}

// WeatherConfig defines weather durations and physical modifiers.
type WeatherConfig struct {
	InitialMs       float64 `yaml:"initial_ms"` // Timer value for a fresh session; 0 rolls weather on the first tick
	MinDurationMs   float64 `yaml:"min_duration_ms"`
	MaxDurationMs   float64 `yaml:"max_duration_ms"`
	// FreezeOnPause stops the weather timer and the session clock (skills,
	// pet shield, time progression) while paused.
	FreezeOnPause   bool    `yaml:"freeze_on_pause"`
	WindPush        float64 `yaml:"wind_push"` // vx gain per second
	RainPush        float64 `yaml:"rain_push"` // vy gain per second
	SnowDrag        float64 `yaml:"snow_drag"` // vy factor per tick
	LightningChance float64 `yaml:"lightning_chance"`
	LightningBoost  float64 `yaml:"lightning_boost"`
}

// PetsConfig defines pet bonuses.
type PetsConfig struct {
	ShieldDurationMs float64 `yaml:"shield_duration_ms"`
	ShieldIntervalMs float64 `yaml:"shield_interval_ms"`
	FlyMultiplier    float64 `yaml:"fly_multiplier"`
}

// SkillConfig defines one hotbar skill.
type SkillConfig struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	CooldownMs float64 `yaml:"cooldown_ms"`
	DurationMs float64 `yaml:"duration_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Points or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to fall speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown strings yield the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Skill returns the skill with the given id.
func (c EggdropConfig) Skill(id string) (SkillConfig, bool) {
	for _, s := range c.Skills {
		if s.ID == id {
			return s, true
		}
	}
	return SkillConfig{}, false
}
