package eggdrop

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/games/eggdrop/core"
)

// Visual characters for rendering
const (
	BodyChar   = '▒'
	BasketChar = '▀'
	FogChar    = '░'
	HeartFull  = "♥"
	HeartEmpty = "♡"
)

// Share of the board, from the top, hidden by fog.
const fogDepth = 0.4

// itemGlyph returns the rune and color an item is drawn with.
func itemGlyph(t core.ItemType) (rune, platformcore.Color) {
	switch t {
	case core.ItemGolden:
		return '●', platformcore.ColorBrightYellow
	case core.ItemRotten:
		return '●', platformcore.ColorGreen
	case core.ItemBomb:
		return '✱', platformcore.ColorRed
	case core.ItemHeart:
		return '♥', platformcore.ColorBrightRed
	case core.ItemClock:
		return '◷', platformcore.ColorCyan
	case core.ItemStar:
		return '★', platformcore.ColorYellow
	case core.ItemChest:
		return '▣', platformcore.ColorOrange
	default:
		return 'o', platformcore.ColorBrightWhite
	}
}

// Render draws the current game state into dst.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	if !g.layout.fits(dst.Width(), dst.Height()) {
		g.layout = newLayout(&g.cfg, dst.Width(), dst.Height())
	}
	if g.layout.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(platformcore.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows))

	shift := g.fx.offset()
	g.renderPlayer(dst, shift)
	g.renderItems(dst, shift)
	g.renderEffects(dst, shift)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.state.Economy.Score))
	}
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorBrightYellow)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), platformcore.ColorGray)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	s := g.state
	e := s.Economy

	lives := strings.Repeat(HeartFull, max(e.Lives, 0)) +
		strings.Repeat(HeartEmpty, max(g.cfg.Lives.Max-e.Lives, 0))
	line := fmt.Sprintf(" Score: %d  Lives: %s", e.Score, lives)
	if m := s.Multiplier(); m > 1 {
		line += fmt.Sprintf("  x%d", m)
	}
	if e.ComboActive {
		line += fmt.Sprintf("  COMBO %.1fs", e.ComboTimer/1000)
	} else if e.ComboCounter > 0 {
		line += fmt.Sprintf("  Combo %d/%d", e.ComboCounter, g.cfg.Scoring.ComboThreshold)
	}
	if e.SlowMoTimer > 0 {
		line += fmt.Sprintf("  Slow %.1fs", e.SlowMoTimer/1000)
	}
	dst.DrawText(0, 0, line)

	env := s.Env
	status := fmt.Sprintf(" Weather: %s  Pet: %s", env.Weather, env.Pet)
	switch s.Protection() {
	case core.ProtectionShield:
		status += fmt.Sprintf("  Shield %.1fs", env.Shield.Remaining/1000)
	case core.ProtectionInvulnerable:
		status += "  Invulnerable"
	}
	dst.DrawText(0, 1, status)

	if g.mode == ModeSkills {
		g.renderHotbar(dst, len([]rune(status))+2)
	}
}

// renderHotbar lists the skills with their cooldowns on the second HUD row.
func (g *Game) renderHotbar(dst *platformcore.Screen, x int) {
	for i, def := range g.cfg.Skills {
		if i >= 3 {
			break
		}
		label := fmt.Sprintf("[%d]%s ", i+1, def.Name)
		color := platformcore.ColorBrightGreen
		if st, ok := g.state.Skills[def.ID]; ok && st.Active {
			label = fmt.Sprintf("[%d]%s on ", i+1, def.Name)
			color = platformcore.ColorBrightMagenta
		} else if cd := core.Cooldown(g.state, def, g.state.Now); cd > 0 {
			label = fmt.Sprintf("[%d]%s %ds ", i+1, def.Name, int(cd/1000)+1)
			color = platformcore.ColorGray
		}
		dst.DrawTextColored(x, 1, label, color)
		x += len([]rune(label))
	}
}

func (g *Game) renderItems(dst *platformcore.Screen, shift int) {
	fogLine := g.cfg.Board.Height * fogDepth
	for i := range g.state.Items {
		it := &g.state.Items[i]
		glyph, color := itemGlyph(it.Type)
		if g.state.Env.Weather == core.WeatherFog && it.Y+it.H < fogLine {
			glyph, color = FogChar, platformcore.ColorGray
		}
		g.fill(dst, g.layout.rect(it.Bounds()), shift, glyph, color)
	}
}

func (g *Game) renderPlayer(dst *platformcore.Screen, shift int) {
	p := g.state.Player
	body := platformcore.Box{
		X: p.X,
		Y: g.cfg.Board.Height - g.cfg.Player.Height + p.Y,
		W: g.cfg.Player.Width,
		H: g.cfg.Player.Height,
	}
	bodyColor := platformcore.ColorWhite
	switch g.state.Env.Pet {
	case core.PetKitsune:
		bodyColor = platformcore.ColorOrange
	case core.PetDragonfly:
		bodyColor = platformcore.ColorBrightBlue
	}
	r := g.layout.rect(body)
	g.fill(dst, r, shift, BodyChar, bodyColor)
	g.fill(dst, g.layout.rect(core.Basket(&g.cfg, p)), shift, BasketChar, platformcore.ColorYellow)

	var guard platformcore.Color
	switch g.state.Protection() {
	case core.ProtectionShield:
		guard = platformcore.ColorBrightCyan
	case core.ProtectionInvulnerable:
		guard = platformcore.ColorBrightMagenta
	default:
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		g.put(dst, r.X-1+shift, y, '(', guard)
		g.put(dst, r.Right()+shift, y, ')', guard)
	}
}

func (g *Game) renderEffects(dst *platformcore.Screen, shift int) {
	for _, f := range g.fx.floaters {
		x, y := g.layout.cell(f.x, f.y)
		for i, r := range f.text {
			g.put(dst, x+i+shift, y, r, f.color)
		}
	}
	if g.fx.banner != "" {
		x := (dst.Width() - len(g.fx.banner)) / 2
		dst.DrawTextColored(x, g.layout.inner.Y, g.fx.banner, platformcore.ColorBrightWhite)
	}
}

// fill draws r clipped to the board area.
func (g *Game) fill(dst *platformcore.Screen, r platformcore.Rect, shift int, ch rune, c platformcore.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			g.put(dst, x+shift, y, ch, c)
		}
	}
}

func (g *Game) put(dst *platformcore.Screen, x, y int, ch rune, c platformcore.Color) {
	if g.layout.visible(x, y) {
		dst.SetColored(x, y, ch, c)
	}
}

// drawCenteredMessage draws a centered message box.
func (g *Game) drawCenteredMessage(dst *platformcore.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
