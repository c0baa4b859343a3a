package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bird/internal/bird"
	"github.com/vovakirdan/tui-bird/internal/core"
)

// KeyMap defines the key bindings of the game.
// The bindings are fixed; the Play key means Start on the title screen and
// Restart on the end screen.
type KeyMap struct {
	Flap      key.Binding
	Play      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the game's key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Play: key.NewBinding(
			key.WithKeys("p", "enter", "r"),
			key.WithHelp("p/enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit now"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Play, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Play},
		{k.Quit, k.ForceQuit, k.Help},
	}
}

// MapKey translates a key message into a game action for the given mode.
// Keys without a binding map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg, mode bird.Mode) core.Action {
	switch {
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	case key.Matches(msg, k.Play):
		if mode == bird.ModeEnded {
			return core.ActionRestart
		}
		return core.ActionStart
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}
