package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/registry"
	"github.com/vovakirdan/eggdrop/internal/storage"
)

// sessionTracker follows the game a connection is playing so the run can
// be recorded however it ends, including a dropped connection.
type sessionTracker struct {
	mu      sync.Mutex
	store   *storage.Store
	player  string
	remote  string
	game    registry.Game
	score   int
	started time.Time
}

func newSessionTracker(store *storage.Store, player, remote string) *sessionTracker {
	return &sessionTracker{store: store, player: player, remote: remote}
}

// begin starts tracking g.
func (t *sessionTracker) begin(g registry.Game) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.game = g
	t.score = 0
	t.started = time.Now()
}

// progress records the latest score of the current game.
func (t *sessionTracker) progress(score int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.score = score
}

// end records the current game, if any, and releases it.
func (t *sessionTracker) end(reason string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.game == nil {
		return
	}

	if t.store != nil {
		//nolint:errcheck // Best-effort save
		t.store.SaveSession(storage.SessionRecord{
			SessionID:  uuid.NewString(),
			GameID:     t.game.ID(),
			Player:     t.player,
			RemoteAddr: t.remote,
			Score:      t.score,
			EndReason:  reason,
			Duration:   int(time.Since(t.started).Seconds()),
		})
	}
	//nolint:errcheck // Nothing to do about a failed close on the way out
	registry.Release(t.game)
	t.game = nil
}

// SessionModel manages the full session flow: menu -> game -> menu, with
// the scoreboard reachable from the menu. Used for SSH connections.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	palette    Palette
	tracker    *sessionTracker
	menu       MenuModel
	scoreboard *ScoreboardModel
	gameModel  *Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, palette Palette, tracker *sessionTracker) SessionModel {
	if tracker == nil {
		tracker = newSessionTracker(store, cfg.PlayerID, "")
	}
	return SessionModel{
		store:   store,
		config:  cfg,
		palette: palette,
		tracker: tracker,
		menu:    NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.gameModel != nil:
		return m.updateGame(msg)
	case m.scoreboard != nil:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode. The menu's own quit
// command is dropped; the session decides when the program ends.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.store, m.config.PlayerID, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.menu = NewMenuModel(m.store, m.config)
			return m, nil
		}

		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		gm := NewModel(game, m.store, cfg)
		gm.embedded = true
		gm.palette = m.palette
		m.gameModel = &gm
		m.tracker.begin(game)

		return m, tea.Batch(gm.Init(), tea.EnableMouseCellMotion)
	}

	return m, cmd
}

// updateScoreboard handles updates while the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSB, cmd := m.scoreboard.Update(msg)
	if sb, ok := newSB.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		m.menu = NewMenuModel(m.store, m.config)
		return m, nil
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}
	m.tracker.progress(m.gameModel.gameState.Score)

	if m.gameModel.BackToMenu() {
		m.tracker.end(endReason(*m.gameModel))
		m.gameModel = nil
		m.menu = NewMenuModel(m.store, m.config)
		return m, tea.Batch(m.menu.Init(), tea.DisableMouse)
	}

	if m.gameModel.IsQuitting() {
		m.tracker.end("quit")
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.scoreboard != nil:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
