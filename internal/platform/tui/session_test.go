package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/eggdrop/internal/games/eggdrop"
)

func TestTrackerRecordsSession(t *testing.T) {
	store := openTestStore(t)
	tr := newSessionTracker(store, "alice", "10.0.0.1:5000")
	g := &stubGame{}

	tr.begin(g)
	tr.progress(120)
	tr.end("disconnect")

	if g.closed != 1 {
		t.Errorf("closed = %d, expected 1", g.closed)
	}

	sessions, err := store.PlayerSessions("alice", 10)
	if err != nil {
		t.Fatalf("PlayerSessions() error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("len(sessions) = %d, expected 1", len(sessions))
	}
	s := sessions[0]
	if s.GameID != "stub" || s.Score != 120 || s.EndReason != "disconnect" || s.RemoteAddr != "10.0.0.1:5000" {
		t.Errorf("session = %+v, expected stub/120/disconnect from 10.0.0.1:5000", s)
	}
	if s.SessionID == "" {
		t.Error("SessionID should be set")
	}
}

func TestTrackerEndWithoutGame(t *testing.T) {
	store := openTestStore(t)
	tr := newSessionTracker(store, "bob", "")

	tr.end("disconnect")

	g := &stubGame{}
	tr.begin(g)
	tr.end("quit")
	tr.end("disconnect")

	sessions, err := store.PlayerSessions("bob", 10)
	if err != nil {
		t.Fatalf("PlayerSessions() error: %v", err)
	}
	if len(sessions) != 1 || sessions[0].EndReason != "quit" {
		t.Errorf("sessions = %+v, expected one ended by quit", sessions)
	}
	if g.closed != 1 {
		t.Errorf("closed = %d, expected 1", g.closed)
	}
}

func TestTrackerWithoutStore(t *testing.T) {
	tr := newSessionTracker(nil, "carol", "")
	g := &stubGame{}
	tr.begin(g)
	tr.end("gameover")

	if g.closed != 1 {
		t.Errorf("closed = %d, expected 1", g.closed)
	}
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := openTestStore(t)
	tr := newSessionTracker(store, "dave", "remote")
	m := NewSessionModel(store, testConfig(), NewPalette(nil), tr)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("enter should start the selected mode")
	}
	if !m.gameModel.embedded {
		t.Error("session games should be embedded")
	}

	m, _ = sessionUpdate(t, m, runeKey('p'))
	m, _ = sessionUpdate(t, m, TickMsg{})
	if !m.gameModel.gameState.Paused {
		t.Fatal("game should be paused")
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.gameModel != nil {
		t.Fatal("back should return to the menu")
	}
	if m.quitting {
		t.Error("back should not end the session")
	}
	if cmd == nil {
		t.Error("returning to the menu should emit commands")
	}

	sessions, err := store.PlayerSessions("dave", 10)
	if err != nil {
		t.Fatalf("PlayerSessions() error: %v", err)
	}
	if len(sessions) != 1 || sessions[0].EndReason != "menu" {
		t.Errorf("sessions = %+v, expected one ended via menu", sessions)
	}
}

func TestSessionScoreboardAndQuit(t *testing.T) {
	store := openTestStore(t)
	m := NewSessionModel(store, testConfig(), NewPalette(nil), nil)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Fatal("esc should close the scoreboard")
	}

	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestPlayerName(t *testing.T) {
	if got := playerName(""); got != GuestPlayer {
		t.Errorf("playerName(\"\") = %q, expected %q", got, GuestPlayer)
	}
	if got := playerName("erin"); got != "erin" {
		t.Errorf("playerName(\"erin\") = %q, expected erin", got)
	}
}
