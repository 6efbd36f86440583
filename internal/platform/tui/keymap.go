package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
)

// KeyMap defines the key bindings for the game view.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Fire, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Fire},
		{k.Pause, k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f", "x"),
			key.WithHelp("f/click", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// defaultHoldWindow is how long a key press counts as held. Terminals only
// report presses and auto-repeats, never releases.
const defaultHoldWindow = 180 * time.Millisecond

// HeldKeys turns discrete key presses into held movement flags. A press
// keeps its action active until the hold window passes without a repeat.
type HeldKeys struct {
	window  time.Duration
	expires map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = defaultHoldWindow
	}
	return &HeldKeys{window: window, expires: make(map[core.Action]time.Time)}
}

// Press records a press of action at now. Left and right cancel each other.
func (h *HeldKeys) Press(action core.Action, now time.Time) {
	switch action {
	case core.ActionLeft:
		delete(h.expires, core.ActionRight)
	case core.ActionRight:
		delete(h.expires, core.ActionLeft)
	}
	h.expires[action] = now.Add(h.window)
}

// Frame returns the actions still held at now and forgets expired ones.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for action, until := range h.expires {
		if now.After(until) {
			delete(h.expires, action)
			continue
		}
		frame.Set(action)
	}
	return frame
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	for action := range h.expires {
		delete(h.expires, action)
	}
}

// ToInput converts an input frame to the simulation's input flags.
func ToInput(frame core.InputFrame) platformer.Input {
	return platformer.Input{
		Left:  frame.Has(core.ActionLeft),
		Right: frame.Has(core.ActionRight),
		Jump:  frame.Has(core.ActionJump),
	}
}
