package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return mm
}

func TestMenuShowsBestScore(t *testing.T) {
	store := openTestStore(t)
	seedScores(t, store)

	m := NewMenuModel(store, testConfig())
	if len(m.items) != 2 {
		t.Fatalf("len(items) = %d, expected 2", len(m.items))
	}
	if m.items[0].GameID != "eggdrop" || m.items[0].Best != 300 {
		t.Errorf("items[0] = %+v, expected eggdrop with best 300", m.items[0])
	}
	if !strings.Contains(m.View(), "(best 300)") {
		t.Error("View() should show the best score")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected to stay at 0", m.cursor)
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, expected 1", m.cursor)
	}
	if !strings.Contains(m.View(), modeBlurbs["eggdrop_skills"]) {
		t.Error("View() should describe the selected mode")
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Errorf("cursor = %d, expected to stop at the last item", m.cursor)
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != "eggdrop_skills" {
		t.Errorf("Selected() = %v, expected eggdrop_skills", m.Selected())
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestLegendWrapsWhenNarrow(t *testing.T) {
	if got := legendView(200); strings.Contains(got, "\n") {
		t.Error("wide legend should fit on one line")
	}
	if got := legendView(40); strings.Count(got, "\n") != 1 {
		t.Errorf("narrow legend = %q, expected two lines", got)
	}
}
