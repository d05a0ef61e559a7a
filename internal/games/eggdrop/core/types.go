package core

import (
	"github.com/vovakirdan/eggdrop/internal/config"
	platformcore "github.com/vovakirdan/eggdrop/internal/core"
)

// ItemType identifies what a falling item does when caught or missed.
type ItemType int

const (
	ItemNormal ItemType = iota
	ItemGolden
	ItemRotten
	ItemBomb
	ItemHeart
	ItemClock
	ItemStar
	ItemChest
	ItemTypeCount // Sentinel for counting types
)

// String returns the name of the item type.
func (t ItemType) String() string {
	switch t {
	case ItemNormal:
		return "normal"
	case ItemGolden:
		return "golden"
	case ItemRotten:
		return "rotten"
	case ItemBomb:
		return "bomb"
	case ItemHeart:
		return "heart"
	case ItemClock:
		return "clock"
	case ItemStar:
		return "star"
	case ItemChest:
		return "chest"
	default:
		return "unknown"
	}
}

// Scoring reports whether catching the item awards points.
func (t ItemType) Scoring() bool {
	return t == ItemNormal || t == ItemGolden
}

// Hazard reports whether catching the item costs a life.
func (t ItemType) Hazard() bool {
	return t == ItemRotten || t == ItemBomb
}

// Dimensions returns the width and height of an item type.
// Anything without its own entry uses the egg size.
func Dimensions(cfg *config.EggdropConfig, t ItemType) (float64, float64) {
	switch t {
	case ItemBomb:
		return cfg.Items.BombRadius * 2, cfg.Items.BombRadius * 2
	case ItemHeart:
		return cfg.Items.Heart.Width, cfg.Items.Heart.Height
	case ItemClock:
		return cfg.Items.ClockRadius * 2, cfg.Items.ClockRadius * 2
	case ItemStar:
		return cfg.Items.Star.Width, cfg.Items.Star.Height
	case ItemChest:
		return cfg.Items.Chest.Width, cfg.Items.Chest.Height
	default:
		return cfg.Items.Egg.Width, cfg.Items.Egg.Height
	}
}

// Item is a falling object on the board.
type Item struct {
	ID   uint64
	Type ItemType
	X, Y float64 // Top-left corner in board pixels
	W, H float64
	VX   float64 // px/s
	VY   float64 // px/s, reassigned every tick
}

// Bounds returns the item's rectangle.
func (it *Item) Bounds() platformcore.Box {
	return platformcore.Box{X: it.X, Y: it.Y, W: it.W, H: it.H}
}

// Weather is the current environmental mode.
type Weather int

const (
	WeatherSunny Weather = iota
	WeatherRain
	WeatherSnow
	WeatherWind
	WeatherLightning
	WeatherFog
	WeatherCount // Sentinel for counting types
)

// String returns the name of the weather.
func (w Weather) String() string {
	switch w {
	case WeatherSunny:
		return "sunny"
	case WeatherRain:
		return "rain"
	case WeatherSnow:
		return "snow"
	case WeatherWind:
		return "wind"
	case WeatherLightning:
		return "lightning"
	case WeatherFog:
		return "fog"
	default:
		return "unknown"
	}
}

// Pet is a persistent companion won from a chest.
type Pet int

const (
	PetNone Pet = iota
	PetKitsune
	PetDragonfly
)

// String returns the name of the pet.
func (p Pet) String() string {
	switch p {
	case PetKitsune:
		return "kitsune"
	case PetDragonfly:
		return "dragonfly"
	default:
		return "none"
	}
}

// Reward is the outcome of an opened chest.
type Reward int

const (
	RewardNone Reward = iota
	RewardKitsune
	RewardDragonfly
)

// String returns the name of the reward.
func (r Reward) String() string {
	switch r {
	case RewardKitsune:
		return "pet:kitsune"
	case RewardDragonfly:
		return "pet:dragonfly"
	default:
		return "no-reward"
	}
}

// Protection is what currently stands between the player and a lost life.
type Protection int

const (
	ProtectionNone Protection = iota
	ProtectionShield
	ProtectionInvulnerable
)

// String returns the name of the protection.
func (p Protection) String() string {
	switch p {
	case ProtectionShield:
		return "shield"
	case ProtectionInvulnerable:
		return "invulnerable"
	default:
		return "none"
	}
}
