// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping and the SSH server.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-guess/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Activate  key.Binding
	Restart   key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.FocusNext, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Activate, k.FocusNext, k.FocusPrev},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "deviner / valider"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r", "r"),
			key.WithHelp("ctrl+r", "rejouer"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "suivant"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "précédent"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "aide"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc", "q"),
			key.WithHelp("esc", "quitter"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// While typing is true, printable runes are never actions.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, typing bool) core.Action {
	if typing && msg.Type == tea.KeyRunes {
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Activate):
		return core.ActionActivate
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.FocusNext):
		return core.ActionFocusNext
	case key.Matches(msg, km.keys.FocusPrev):
		return core.ActionFocusPrev
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp
	}

	return core.ActionNone
}
