package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/registry"
	"github.com/vovakirdan/eggdrop/internal/storage"
)

// LeaderboardSize is how many scores the game-over overlay lists.
const LeaderboardSize = 5

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	palette    Palette
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	leaders    []storage.ScoreEntry
	embedded   bool // Inside a session: back returns to the menu instead of quitting
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.PlayerID == "" {
		cfg.PlayerID = core.DefaultConfig().PlayerID
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette:    defaultPalette,
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.Mouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if action, _ := m.keys.MapKey(msg); action == core.ActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			m.keys.Release()
			if !m.embedded {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if m.keys.Press(msg, time.Now()) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its
// session and re-lays itself out on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	m.inputFrame.Clear()
	m.keys.Frame(&m.inputFrame, now)
	if !m.lastTick.IsZero() {
		m.inputFrame.Elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.leaders = nil
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished run and loads the leaderboard.
func (m *Model) saveScore() {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.config.PlayerID, m.gameState.Score, storage.RunStats(m.gameState.Stats))
	}
	if leaders, err := m.store.TopScores(m.game.ID(), LeaderboardSize); err == nil {
		m.leaders = leaders
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.GameOver && len(m.leaders) > 0 {
		drawLeaderboard(m.screen, m.leaders)
	}
	return m.palette.Render(m.screen)
}

// drawLeaderboard lists the top scores under the game-over box.
func drawLeaderboard(dst *core.Screen, leaders []storage.ScoreEntry) {
	const boxW = 30
	boxH := len(leaders) + 3
	boxX := (dst.Width() - boxW) / 2
	boxY := dst.Height()/2 + 3
	if boxY+boxH > dst.Height() {
		return
	}

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawTextColored(boxX+2, boxY+1, "TOP SCORES", core.ColorBrightYellow)
	for i, e := range leaders {
		player := e.Player
		if len(player) > 14 {
			player = player[:13] + "."
		}
		dst.DrawText(boxX+2, boxY+2+i, fmt.Sprintf("%d. %-14s %7d", i+1, player, e.Score))
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// endReason names how a game model finished.
func endReason(m Model) string {
	switch {
	case m.gameState.GameOver:
		return "gameover"
	case m.quitting:
		return "quit"
	default:
		return "menu"
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)
	tracker := newSessionTracker(store, model.config.PlayerID, "local")
	tracker.begin(game)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	reason := "quit"
	if m, ok := final.(Model); ok {
		tracker.progress(m.gameState.Score)
		reason = endReason(m)
	}
	tracker.end(reason)
	return err
}
