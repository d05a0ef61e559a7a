package core

import (
	"slices"

	"github.com/vovakirdan/eggdrop/internal/config"
)

// Skill identifiers understood by the engine.
const (
	SkillDash         = "dash"
	SkillShield       = "shield"
	SkillDoublePoints = "double-points"
)

const (
	dashSpeedMultiplier = 1.5
	doublePointsFactor  = 2
)

// SkillReady reports whether def is off cooldown at now.
// A skill that has never been used is always ready.
func SkillReady(s *State, def config.SkillConfig, now float64) bool {
	st, ok := s.Skills[def.ID]
	if !ok {
		return true
	}
	return now-st.LastActivated >= def.CooldownMs
}

// Cooldown returns the ms left before def can be used again.
func Cooldown(s *State, def config.SkillConfig, now float64) float64 {
	st, ok := s.Skills[def.ID]
	if !ok {
		return 0
	}
	return max(0, def.CooldownMs-(now-st.LastActivated))
}

// TryActivate fires def if it is off cooldown and applies its effect.
// Expiry is left to the caller, see ExpireSkills.
func TryActivate(s *State, def config.SkillConfig, now float64) bool {
	if !SkillReady(s, def, now) {
		return false
	}
	if s.Skills == nil {
		s.Skills = make(map[string]*SkillState)
	}
	st, ok := s.Skills[def.ID]
	if !ok {
		st = &SkillState{}
		s.Skills[def.ID] = st
	}
	st.LastActivated = now
	st.Active = true
	st.ExpiresAt = now + def.DurationMs

	switch def.ID {
	case SkillDash:
		s.Status.SpeedMultiplier = dashSpeedMultiplier
	case SkillShield:
		s.Status.Invulnerable = true
	case SkillDoublePoints:
		s.Status.SkillMultiplier = doublePointsFactor
	}
	return true
}

// Deactivate ends a skill's effect. Its cooldown keeps running.
func Deactivate(s *State, id string) {
	if st, ok := s.Skills[id]; ok {
		st.Active = false
	}
	switch id {
	case SkillDash:
		s.Status.SpeedMultiplier = 1
	case SkillShield:
		s.Status.Invulnerable = false
	case SkillDoublePoints:
		s.Status.SkillMultiplier = 1
	}
}

// ExpireSkills deactivates every active skill whose duration has elapsed
// at now and returns their ids in sorted order.
func ExpireSkills(s *State, now float64) []string {
	var expired []string
	for id, st := range s.Skills {
		if st.Active && now >= st.ExpiresAt {
			expired = append(expired, id)
		}
	}
	slices.Sort(expired)
	for _, id := range expired {
		Deactivate(s, id)
	}
	return expired
}
