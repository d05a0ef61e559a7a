package eggdrop

import (
	"fmt"

	"github.com/vovakirdan/eggdrop/internal/config"
	platformcore "github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/games/eggdrop/core"
)

// Effect timings in frames
const (
	floaterTTL  = 45
	floaterRise = 2.0 // Board pixels per frame
	shakeFrames = 12
	bannerTTL   = 120
)

// floater is a short-lived text drifting up from where something happened.
type floater struct {
	text  string
	x, y  float64
	ttl   int
	color platformcore.Color
}

// effects is cosmetic feedback derived only from simulation events.
// It never feeds back into the simulation.
type effects struct {
	shake     int
	floaters  []floater
	banner    string
	bannerTTL int
}

func (fx *effects) observe(events []core.Event, cfg *config.EggdropConfig, s *core.State) {
	basket := core.Basket(cfg, s.Player)
	for _, ev := range events {
		switch ev.Kind {
		case core.EventScoreAdded:
			fx.float(fmt.Sprintf("+%d", ev.Amount), ev.X, ev.Y, platformcore.ColorBrightYellow)
		case core.EventCatchBomb, core.EventCatchRotten:
			if ev.Blocked {
				fx.float("blocked", ev.X, ev.Y, platformcore.ColorCyan)
			} else {
				fx.shake = shakeFrames
			}
		case core.EventMiss:
			if ev.Blocked {
				fx.float("saved", ev.X, cfg.Board.Height-cfg.Player.Height, platformcore.ColorCyan)
			} else {
				fx.float("miss", ev.X, cfg.Board.Height-cfg.Player.Height, platformcore.ColorRed)
			}
		case core.EventCatchHeart:
			fx.float("+life", ev.X, ev.Y, platformcore.ColorBrightRed)
		case core.EventCatchClock:
			fx.float("slow", ev.X, ev.Y, platformcore.ColorCyan)
		case core.EventCatchStar:
			fx.float(fmt.Sprintf("x%d", cfg.PowerUps.Multiplier), ev.X, ev.Y, platformcore.ColorYellow)
		case core.EventCatchChest:
			fx.float("chest!", ev.X, ev.Y, platformcore.ColorOrange)
		case core.EventChestResolved:
			fx.announce(rewardBanner(ev.Reward))
		case core.EventShieldUp:
			fx.float("shield", basket.X, basket.Y, platformcore.ColorBrightCyan)
		case core.EventWeatherChanged:
			fx.announce("Weather: " + ev.Weather.String())
		}
	}
}

func (fx *effects) skill(def config.SkillConfig, s *core.State, cfg *config.EggdropConfig) {
	b := core.Basket(cfg, s.Player)
	fx.float(def.Name, b.X, b.Y, platformcore.ColorBrightMagenta)
}

func (fx *effects) float(text string, x, y float64, c platformcore.Color) {
	fx.floaters = append(fx.floaters, floater{text: text, x: x, y: y, ttl: floaterTTL, color: c})
}

func (fx *effects) announce(text string) {
	fx.banner = text
	fx.bannerTTL = bannerTTL
}

// tick ages every effect by one frame.
func (fx *effects) tick() {
	if fx.shake > 0 {
		fx.shake--
	}
	if fx.bannerTTL > 0 {
		fx.bannerTTL--
		if fx.bannerTTL == 0 {
			fx.banner = ""
		}
	}
	kept := fx.floaters[:0]
	for _, f := range fx.floaters {
		f.ttl--
		f.y -= floaterRise
		if f.ttl > 0 {
			kept = append(kept, f)
		}
	}
	fx.floaters = kept
}

// offset is the horizontal jitter applied to the board while shaking.
func (fx *effects) offset() int {
	if fx.shake == 0 {
		return 0
	}
	if fx.shake%4 < 2 {
		return 1
	}
	return -1
}

func rewardBanner(r core.Reward) string {
	switch r {
	case core.RewardKitsune:
		return "Chest: a kitsune joins you!"
	case core.RewardDragonfly:
		return "Chest: a dragonfly joins you!"
	default:
		return "Chest: empty"
	}
}
