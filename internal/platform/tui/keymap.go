package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Jump       key.Binding
	Duck       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Duck, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Duck, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("c", "down", "s"),
			key.WithHelp("c/down", "duck"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys GameKeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for keys the game does not use.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Jump):
		return core.ActionJump
	case key.Matches(msg, km.keys.Duck):
		return core.ActionDuck
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	if action == core.ActionQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return false
}

// duckHold turns repeated duck key presses into a held state. Terminals
// report no key release, so the duck ends once presses stop arriving.
// The first press must outlast the auto-repeat delay; after that repeats
// arrive quickly and a short window is enough.
type duckHold struct {
	window int // ticks the first press keeps the duck engaged
	repeat int // ticks each press keeps it once the hold is active
	left   int
}

// press records a duck key press.
func (d *duckHold) press() {
	if d.left > 0 {
		d.left = max(d.left, d.repeat)
		return
	}
	d.left = d.window
}

// tick counts down one simulation tick. Returns true on the tick the
// hold expires.
func (d *duckHold) tick() bool {
	if d.left == 0 {
		return false
	}
	d.left--
	return d.left == 0
}

// reset drops any pending hold.
func (d *duckHold) reset() {
	d.left = 0
}
