package core

import (
	"slices"
	"testing"

	"github.com/vovakirdan/eggdrop/internal/config"
)

func skillDef(t *testing.T, id string) config.SkillConfig {
	t.Helper()
	cfg := config.DefaultEggdropConfig()
	def, ok := cfg.Skill(id)
	if !ok {
		t.Fatalf("skill %q missing from defaults", id)
	}
	return def
}

func TestTryActivateCooldown(t *testing.T) {
	_, s := newTestSim(t, 1)
	dash := skillDef(t, SkillDash)

	if !TryActivate(s, dash, 100) {
		t.Fatal("first activation should succeed")
	}
	if TryActivate(s, dash, 100+dash.CooldownMs-1) {
		t.Error("activation inside the cooldown should fail")
	}
	if got := Cooldown(s, dash, 1100); got != dash.CooldownMs-1000 {
		t.Errorf("Cooldown() = %v, expected %v", got, dash.CooldownMs-1000)
	}
	if !TryActivate(s, dash, 100+dash.CooldownMs) {
		t.Error("activation exactly at the cooldown should succeed")
	}
	if s.Skills[SkillDash].LastActivated != 100+dash.CooldownMs {
		t.Errorf("LastActivated = %v, expected %v", s.Skills[SkillDash].LastActivated, 100+dash.CooldownMs)
	}
}

func TestSkillCooldownsArePerSession(t *testing.T) {
	_, a := newTestSim(t, 1)
	_, b := newTestSim(t, 2)
	shield := skillDef(t, SkillShield)

	if !TryActivate(a, shield, 500) {
		t.Fatal("session A activation should succeed")
	}
	if !TryActivate(b, shield, 600) {
		t.Error("session B must not inherit session A's cooldown")
	}
}

func TestShieldSkillBlocksHazards(t *testing.T) {
	sim, s := newTestSim(t, 1)
	TryActivate(s, skillDef(t, SkillShield), s.Now)

	dropOnBasket(sim, s, ItemBomb)
	events := step(sim, s, Controls{})

	if s.Economy.Lives != 3 {
		t.Errorf("Lives = %d, expected 3 while invulnerable", s.Economy.Lives)
	}
	if len(events) == 0 || !events[0].Blocked {
		t.Errorf("events = %v, expected blocked bomb", events)
	}
}

func TestDoublePointsStacksWithStar(t *testing.T) {
	sim, s := newTestSim(t, 1)
	s.Economy.ScoreMultiplier = 2
	s.Economy.MultiplierTimer = 7000
	TryActivate(s, skillDef(t, SkillDoublePoints), s.Now)

	dropOnBasket(sim, s, ItemNormal)
	events := step(sim, s, Controls{})

	if got := events[len(events)-1].Amount; got != 4 {
		t.Errorf("ScoreAdded amount = %d, expected 4", got)
	}
}

func TestDashSpeedsUpMovement(t *testing.T) {
	sim, s := newTestSim(t, 1)
	TryActivate(s, skillDef(t, SkillDash), s.Now)
	start := s.Player.X

	sim.Tick(s, TickInput{RealDt: 0.1, LogicalDt: 0.1, Controls: Controls{Right: true}})

	if got := s.Player.X - start; diff(got, 90) {
		t.Errorf("dash moved %v, expected 90", got)
	}
}

func TestExpireSkills(t *testing.T) {
	_, s := newTestSim(t, 1)
	cfg := config.DefaultEggdropConfig()
	for _, def := range cfg.Skills {
		TryActivate(s, def, 0)
	}

	if got := ExpireSkills(s, 2500); !slices.Equal(got, []string{SkillDash}) {
		t.Errorf("ExpireSkills(2500) = %v, expected [dash]", got)
	}
	if s.Status.SpeedMultiplier != 1 {
		t.Errorf("SpeedMultiplier = %v after dash expired, expected 1", s.Status.SpeedMultiplier)
	}
	if !s.Status.Invulnerable || s.Status.SkillMultiplier != 2 {
		t.Errorf("Status = %+v, shield and double-points should still be active", s.Status)
	}

	if got := ExpireSkills(s, 5000); !slices.Equal(got, []string{SkillDoublePoints, SkillShield}) {
		t.Errorf("ExpireSkills(5000) = %v, expected [double-points shield]", got)
	}
	if s.Status.Invulnerable || s.Status.SkillMultiplier != 1 {
		t.Errorf("Status = %+v, expected idle", s.Status)
	}
	if got := ExpireSkills(s, 9000); len(got) != 0 {
		t.Errorf("ExpireSkills(9000) = %v, expected nothing left", got)
	}
}

func TestHashTracksSkillState(t *testing.T) {
	_, a := newTestSim(t, 1)
	_, b := newTestSim(t, 1)
	dash := skillDef(t, SkillDash)

	if a.Hash() != b.Hash() {
		t.Fatal("fresh sessions should hash equal")
	}

	TryActivate(a, dash, 100)
	if a.Hash() == b.Hash() {
		t.Error("Hash() should change when a skill activates")
	}

	TryActivate(b, dash, 100)
	if a.Hash() != b.Hash() {
		t.Error("same activation should hash equal")
	}

	ExpireSkills(a, 100+dash.DurationMs)
	if a.Hash() == b.Hash() {
		t.Error("Hash() should change when a skill expires")
	}
}
