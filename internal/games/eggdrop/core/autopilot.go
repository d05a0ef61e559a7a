package core

import "github.com/vovakirdan/eggdrop/internal/config"

// Autopilot steers toward the lowest item worth catching and sidesteps
// hazards about to land in the basket. It only reads the state.
func Autopilot(cfg *config.EggdropConfig, s *State) Controls {
	basket := Basket(cfg, s.Player)
	center := s.Player.X + cfg.Player.Width/2

	var target *Item
	for i := range s.Items {
		it := &s.Items[i]
		if it.Type.Hazard() || it.Y > basket.Y {
			continue
		}
		if target == nil || it.Y > target.Y {
			target = it
		}
	}

	goal := cfg.Board.Width / 2
	if target != nil {
		goal = target.X + target.W/2
	}

	// A hazard close above the path wins over any reward.
	for i := range s.Items {
		it := &s.Items[i]
		if !it.Type.Hazard() || basket.Y-(it.Y+it.H) > cfg.Player.Height*2 {
			continue
		}
		hx := it.X + it.W/2
		reach := (basket.W + it.W) / 2
		if hx-goal > reach || goal-hx > reach {
			continue
		}
		if hx >= center {
			goal = hx - reach - basket.W/2
		} else {
			goal = hx + reach + basket.W/2
		}
		if goal < cfg.Player.Width/2 || goal > cfg.Board.Width-cfg.Player.Width/2 {
			goal = cfg.Board.Width - goal
		}
		break
	}

	return Controls{TouchTarget: &goal}
}
