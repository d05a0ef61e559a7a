package core

// MergeChests applies chest results that belong to this session.
// Results from another epoch are dropped. When several arrive together
// the last one wins.
func (sim *Simulator) MergeChests(s *State, results []ChestResult, events []Event) []Event {
	for _, r := range results {
		if r.Epoch != s.Epoch {
			continue
		}
		sim.ApplyReward(s, r.Reward)
		events = append(events, Event{
			Kind:   EventChestResolved,
			X:      s.Player.X + sim.cfg.Player.Width/2,
			Y:      sim.cfg.Board.Height - sim.cfg.Player.Height + s.Player.Y,
			Item:   ItemChest,
			Reward: r.Reward,
		})
	}
	return events
}

// ApplyReward grants the pet a chest produced. RewardNone changes nothing.
func (sim *Simulator) ApplyReward(s *State, r Reward) {
	switch r {
	case RewardKitsune:
		s.Env.Pet = PetKitsune
		s.Env.Shield.NextActivation = s.Now + sim.cfg.Pets.ShieldIntervalMs
	case RewardDragonfly:
		s.Env.Pet = PetDragonfly
	}
}

// updateShield runs the shield countdown and the kitsune auto-shield on
// real time.
func (sim *Simulator) updateShield(s *State, realDt float64, events []Event) []Event {
	sh := &s.Env.Shield

	if sh.Active {
		sh.Remaining -= realDt * 1000
		if sh.Remaining <= 0 {
			sh.Active = false
			sh.Remaining = 0
		}
	}

	if s.Env.Pet != PetKitsune {
		return events
	}
	if !sh.Active && s.Now >= sh.NextActivation {
		sh.Active = true
		sh.Remaining = sim.cfg.Pets.ShieldDurationMs
		sh.NextActivation = s.Now + sim.cfg.Pets.ShieldIntervalMs
		events = append(events, Event{
			Kind: EventShieldUp,
			X:    s.Player.X + sim.cfg.Player.Width/2,
			Y:    sim.cfg.Board.Height - sim.cfg.Player.Height + s.Player.Y,
		})
	}
	return events
}
