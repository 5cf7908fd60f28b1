package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap is the desktop's keyboard surface. Everything else is mouse driven.
type KeyMap struct {
	Esc      key.Binding
	Help     key.Binding
	Settings key.Binding
	Quit     key.Binding
}

// ShortHelp returns bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Esc, k.Settings, k.Help, k.Quit}
}

// FullHelp returns every binding.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Esc, k.Settings, k.Help, k.Quit}}
}

// Keys is the default key map.
var Keys = KeyMap{
	Esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close preview, dialog or menu"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Settings: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "settings"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
