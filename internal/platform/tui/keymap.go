package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// GameKeyMap defines the key bindings used while a session is on screen.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Stop       key.Binding
	Fire       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Cancel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop, k.Fire},
		{k.Confirm, k.Cancel, k.Scores},
		{k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Stop: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "stop"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space", "fire / start"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu / quit"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a core action.
// The fire key doubles as confirm outside of play, so the same key starts a
// game and shoots. Platform-only keys map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, state invaders.State) core.Action {
	switch {
	case key.Matches(msg, km.keys.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionMoveRight
	case key.Matches(msg, km.keys.Stop):
		return core.ActionStopMove
	case key.Matches(msg, km.keys.Fire):
		if state == invaders.StatePlaying {
			return core.ActionFire
		}
		return core.ActionConfirm
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, km.keys.Cancel):
		return core.ActionCancel
	}
	return core.ActionNone
}

// holdState turns auto-repeated key presses into held movement.
// Terminals deliver no key-up, so a direction is released after a number of
// ticks without a repeat.
type holdState struct {
	dir    core.Action // ActionMoveLeft, ActionMoveRight or ActionNone
	ticks  int
	window int
}

func newHoldState(window int) holdState {
	return holdState{window: max(window, 1)}
}

// press records a movement key. It returns the action to queue, which is
// ActionNone when the direction is already held.
func (h *holdState) press(a core.Action) core.Action {
	h.ticks = h.window
	if h.dir == a {
		return core.ActionNone
	}
	h.dir = a
	return a
}

// release forgets the held direction.
func (h *holdState) release() {
	h.dir = core.ActionNone
	h.ticks = 0
}

// tick counts down the hold window and returns ActionStopMove when it runs out.
func (h *holdState) tick() core.Action {
	if h.dir == core.ActionNone {
		return core.ActionNone
	}
	h.ticks--
	if h.ticks > 0 {
		return core.ActionNone
	}
	h.release()
	return core.ActionStopMove
}
