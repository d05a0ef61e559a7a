package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eggdrop/internal/core"
)

// HoldWindow is how long a movement key counts as held after its last
// press or auto-repeat. Terminals report presses only, never releases.
const HoldWindow = 180 * time.Millisecond

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Skill1  key.Binding
	Skill2  key.Binding
	Skill3  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Skill1, k.Skill2, k.Skill3},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Skill1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "skill 1"),
		),
		Skill2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "skill 2"),
		),
		Skill3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "skill 3"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// Movement keys decay: they stay held for HoldWindow after each press.
// Everything else is edge-triggered and consumed by the next frame.
type KeyMapper struct {
	keys    GameKeyMap
	held    map[core.Action]time.Time // Action -> held until
	pending map[core.Action]bool
	pointer *int
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		keys:    DefaultGameKeyMap(),
		held:    make(map[core.Action]time.Time),
		pending: make(map[core.Action]bool),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Jump):
		return core.ActionJump, false
	case key.Matches(msg, km.keys.Skill1):
		return core.ActionSkill1, false
	case key.Matches(msg, km.keys.Skill2):
		return core.ActionSkill2, false
	case key.Matches(msg, km.keys.Skill3):
		return core.ActionSkill3, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// Press records a key press at now. Returns true on a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}

	switch action {
	case core.ActionNone:
	case core.ActionLeft:
		km.held[core.ActionLeft] = now.Add(HoldWindow)
		delete(km.held, core.ActionRight)
	case core.ActionRight:
		km.held[core.ActionRight] = now.Add(HoldWindow)
		delete(km.held, core.ActionLeft)
	case core.ActionJump:
		km.held[core.ActionJump] = now.Add(HoldWindow)
	default:
		km.pending[action] = true
	}
	return false
}

// Mouse records a mouse event. The pointer is active while a button is down.
func (km *KeyMapper) Mouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonNone {
			return
		}
		x := msg.X
		km.pointer = &x
	case tea.MouseActionRelease:
		km.pointer = nil
	}
}

// Frame fills frame with everything active at now and consumes the
// edge-triggered actions.
func (km *KeyMapper) Frame(frame *core.InputFrame, now time.Time) {
	for action, until := range km.held {
		if now.Before(until) {
			frame.Set(action)
		} else {
			delete(km.held, action)
		}
	}
	for action := range km.pending {
		frame.Set(action)
		delete(km.pending, action)
	}
	if km.pointer != nil {
		frame.SetPointer(*km.pointer)
	}
}

// Release drops every held key and the pointer.
func (km *KeyMapper) Release() {
	clear(km.held)
	clear(km.pending)
	km.pointer = nil
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
