package eggdrop

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/eggdrop/internal/chest"
	platformcore "github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/games/eggdrop/core"
	"github.com/vovakirdan/eggdrop/internal/registry"
)

func testRuntime() platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
		PlayerID: "tester",
	}
}

// newTestGame creates a reset game isolated from any user config, with
// chests resolved by r.
func newTestGame(t *testing.T, g *Game, r chest.Resolver) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")
	SetChestResolver(r)
	t.Cleanup(func() {
		_ = g.Close()
	})

	g.Reset(testRuntime())
	g.state.Env.WeatherTimer = 1e9
	return g
}

func fixedReward(r chest.Reward) chest.Resolver {
	return chest.ResolverFunc(func(context.Context, string) (chest.Reward, error) {
		return r, nil
	})
}

// placeOnBasket puts an item of type t straight onto the basket.
func placeOnBasket(g *Game, t core.ItemType) {
	b := core.Basket(&g.cfg, g.state.Player)
	w, h := core.Dimensions(&g.cfg, t)
	g.state.NextItemID++
	g.state.Items = append(g.state.Items, core.Item{
		ID:   g.state.NextItemID,
		Type: t,
		X:    b.X + (b.W-w)/2,
		Y:    b.Y - h + 5,
		W:    w,
		H:    h,
	})
}

func input(actions ...platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"eggdrop", "eggdrop_skills"} {
		if !registry.Exists(id) {
			t.Errorf("registry.Exists(%q) = false, expected true", id)
		}
	}

	g, err := registry.Create("eggdrop_skills")
	if err != nil {
		t.Fatalf("registry.Create() error: %v", err)
	}
	if g.Title() != "Egg Drop (Skills)" {
		t.Errorf("Title() = %q, expected Egg Drop (Skills)", g.Title())
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, New(), fixedReward(chest.RewardNone))

	st := g.State()
	if st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("State() = %+v, expected a fresh game", st)
	}
	if st.Lives != g.cfg.Lives.Start {
		t.Errorf("Lives = %d, expected %d", st.Lives, g.cfg.Lives.Start)
	}
	if g.state.Epoch != 1 {
		t.Errorf("Epoch = %d, expected 1", g.state.Epoch)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(t, New(), fixedReward(chest.RewardNone))
		g.state.Env.WeatherTimer = 0
		for i := range 600 {
			in := platformcore.NewInputFrame()
			switch {
			case i%40 < 15:
				in.Set(platformcore.ActionLeft)
			case i%40 < 30:
				in.Set(platformcore.ActionRight)
			default:
				in.Set(platformcore.ActionJump)
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.state.Hash()
	}

	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
}

func TestPauseFreezesBoard(t *testing.T) {
	g := newTestGame(t, New(), fixedReward(chest.RewardNone))
	placeOnBasket(g, core.ItemNormal)
	g.state.Items[0].Y = 100
	y := g.state.Items[0].Y

	res := g.Step(input(platformcore.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected game to be paused")
	}
	now := g.state.Now

	g.Step(input(platformcore.ActionLeft))
	if g.state.Items[0].Y != y {
		t.Errorf("item moved while paused: y = %v, expected %v", g.state.Items[0].Y, y)
	}
	if g.state.Now <= now {
		t.Error("session clock should keep running while paused")
	}

	g.Step(input(platformcore.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestSlowMotionHalvesMovement(t *testing.T) {
	g := newTestGame(t, New(), fixedReward(chest.RewardNone))
	x := g.state.Player.X
	dt := g.runtime.TickInterval().Seconds()

	g.Step(input(platformcore.ActionLeft))
	normal := x - g.state.Player.X

	g.state.Player.X = x
	g.state.Economy.SlowMoTimer = g.cfg.PowerUps.SlowMotionMs
	g.Step(input(platformcore.ActionLeft))
	slow := x - g.state.Player.X

	if diff(normal, g.cfg.Player.Speed*dt) > 1e-9 {
		t.Errorf("normal move = %v, expected %v", normal, g.cfg.Player.Speed*dt)
	}
	if diff(slow, normal*g.cfg.PowerUps.SlowMotionFactor) > 1e-9 {
		t.Errorf("slow move = %v, expected %v", slow, normal*g.cfg.PowerUps.SlowMotionFactor)
	}
}

func TestElapsedDrivesTimers(t *testing.T) {
	g := newTestGame(t, New(), fixedReward(chest.RewardNone))

	in := platformcore.NewInputFrame()
	in.Elapsed = 50 * time.Millisecond
	g.Step(in)
	if diff(g.state.Now, 50) > 1e-9 {
		t.Errorf("Now = %v, expected 50", g.state.Now)
	}

	in.Elapsed = time.Second
	g.Step(in)
	if diff(g.state.Now, 50+maxFrameDt*1000) > 1e-9 {
		t.Errorf("Now = %v, expected long frame clipped to %v", g.state.Now, 50+maxFrameDt*1000)
	}
}

func TestPointerBecomesTouchTarget(t *testing.T) {
	g := newTestGame(t, New(), fixedReward(chest.RewardNone))
	x := g.state.Player.X

	in := platformcore.NewInputFrame()
	in.Set(platformcore.ActionLeft)
	in.SetPointer(60)
	g.Step(in)

	target := g.layout.boardX(60)
	expected := x + (target-g.cfg.Player.Width/2-x)*g.cfg.Player.TouchEasing
	if diff(g.state.Player.X, expected) > 1e-9 {
		t.Errorf("Player.X = %v, expected %v", g.state.Player.X, expected)
	}
	if g.state.Player.X <= x {
		t.Error("pointer should override the held left key")
	}
}

func TestChestRewardReachesState(t *testing.T) {
	g := newTestGame(t, New(), fixedReward(chest.RewardKitsune))
	placeOnBasket(g, core.ItemChest)

	g.Step(platformcore.NewInputFrame())
	if kinds := core.Kinds(g.events); len(kinds) == 0 || kinds[0] != core.EventCatchChest {
		t.Fatalf("events = %v, expected CatchChest", kinds)
	}
	if g.state.Economy.Score != 0 {
		t.Errorf("Score = %d, chest should not score", g.state.Economy.Score)
	}

	g.chests.Wait()
	g.Step(platformcore.NewInputFrame())

	if g.state.Env.Pet != core.PetKitsune {
		t.Errorf("Pet = %s, expected kitsune", g.state.Env.Pet)
	}
	if g.fx.banner == "" {
		t.Error("expected a reward banner")
	}
}

func TestStaleChestDropped(t *testing.T) {
	release := make(chan struct{})
	g := newTestGame(t, New(), chest.ResolverFunc(func(ctx context.Context, _ string) (chest.Reward, error) {
		select {
		case <-release:
			return chest.RewardDragonfly, nil
		case <-ctx.Done():
			return chest.RewardNone, ctx.Err()
		}
	}))
	placeOnBasket(g, core.ItemChest)
	g.Step(platformcore.NewInputFrame())

	g.Reset(testRuntime())
	close(release)
	g.chests.Wait()
	g.Step(platformcore.NewInputFrame())

	if g.state.Epoch != 2 {
		t.Errorf("Epoch = %d, expected 2", g.state.Epoch)
	}
	if g.state.Env.Pet != core.PetNone {
		t.Errorf("Pet = %s, a result from the previous session must be dropped", g.state.Env.Pet)
	}
}

func TestChestFailureIsNoReward(t *testing.T) {
	g := newTestGame(t, New(), nil)
	placeOnBasket(g, core.ItemChest)
	g.Step(platformcore.NewInputFrame())

	g.chests.Wait()
	g.Step(platformcore.NewInputFrame())

	if g.state.Env.Pet != core.PetNone {
		t.Errorf("Pet = %s, expected none", g.state.Env.Pet)
	}
	if !strings.Contains(g.fx.banner, "empty") {
		t.Errorf("banner = %q, expected the empty chest message", g.fx.banner)
	}
}

func TestSkillsOnlyInSkillsMode(t *testing.T) {
	classic := newTestGame(t, New(), fixedReward(chest.RewardNone))
	classic.Step(input(platformcore.ActionSkill1))
	if classic.state.Status.SpeedMultiplier != 1 {
		t.Errorf("classic SpeedMultiplier = %v, expected 1", classic.state.Status.SpeedMultiplier)
	}

	g := newTestGame(t, NewSkills(), fixedReward(chest.RewardNone))
	g.Step(input(platformcore.ActionSkill1))
	if g.state.Status.SpeedMultiplier <= 1 {
		t.Fatalf("SpeedMultiplier = %v, expected dash to be active", g.state.Status.SpeedMultiplier)
	}

	g.Step(input(platformcore.ActionSkill2))
	if g.state.Protection() != core.ProtectionInvulnerable {
		t.Errorf("Protection() = %s, expected invulnerable", g.state.Protection())
	}

	dash := g.cfg.Skills[0]
	in := platformcore.NewInputFrame()
	in.Elapsed = 50 * time.Millisecond
	for g.state.Now < dash.DurationMs+100 {
		g.Step(in)
	}
	if g.state.Status.SpeedMultiplier != 1 {
		t.Errorf("SpeedMultiplier = %v, expected dash to expire", g.state.Status.SpeedMultiplier)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, New(), fixedReward(chest.RewardNone))
	g.state.Economy.Lives = 1
	placeOnBasket(g, core.ItemBomb)

	res := g.Step(platformcore.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over after the last life")
	}
	if res.State.Stats.BombsHit != 1 {
		t.Errorf("Stats.BombsHit = %d, expected 1", res.State.Stats.BombsHit)
	}

	tick := g.state.Tick
	g.Step(input(platformcore.ActionLeft))
	if g.state.Tick != tick {
		t.Error("simulation should stop after game over")
	}

	res = g.Step(input(platformcore.ActionRestart))
	if res.State.GameOver {
		t.Error("restart should start a new session")
	}
	if res.State.Lives != g.cfg.Lives.Start {
		t.Errorf("Lives = %d, expected %d", res.State.Lives, g.cfg.Lives.Start)
	}
	if g.state.Epoch != 2 {
		t.Errorf("Epoch = %d, expected 2", g.state.Epoch)
	}
}

func TestStateReportsStats(t *testing.T) {
	g := newTestGame(t, New(), fixedReward(chest.RewardNone))
	placeOnBasket(g, core.ItemGolden)

	res := g.Step(platformcore.NewInputFrame())
	if res.State.Stats.GoldenEggs != 1 {
		t.Errorf("Stats.GoldenEggs = %d, expected 1", res.State.Stats.GoldenEggs)
	}
	if res.State.Score != g.cfg.Scoring.Golden {
		t.Errorf("Score = %d, expected %d", res.State.Score, g.cfg.Scoring.Golden)
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, NewSkills(), fixedReward(chest.RewardNone))
	screen := platformcore.NewScreen(100, 30)
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "Score: 0") {
		t.Errorf("HUD row = %q, expected the score", row)
	}
	row := screen.Row(1)
	if !strings.Contains(row, "Weather: sunny") {
		t.Errorf("status row = %q, expected the weather", row)
	}
	if !strings.Contains(row, "[1]") {
		t.Errorf("status row = %q, expected the skill hotbar", row)
	}
	if screen.Get(0, hudRows) != '┌' {
		t.Errorf("board corner = %q, expected ┌", screen.Get(0, hudRows))
	}
}

func TestRenderPlayerAndItems(t *testing.T) {
	g := newTestGame(t, New(), fixedReward(chest.RewardNone))
	placeOnBasket(g, core.ItemStar)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.ContainsRune(out, BodyChar) {
		t.Error("expected the player body on screen")
	}
	if !strings.ContainsRune(out, '★') {
		t.Error("expected the star on screen")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, New(), fixedReward(chest.RewardNone))
	screen := platformcore.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too small message")
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	g := newTestGame(t, New(), fixedReward(chest.RewardNone))
	l := newLayout(&g.cfg, 80, 24)

	for _, col := range []int{1, 20, 78} {
		x := l.boardX(col)
		if got, _ := l.cell(x, 0); got != col {
			t.Errorf("cell(boardX(%d)) = %d, expected %d", col, got, col)
		}
	}
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
