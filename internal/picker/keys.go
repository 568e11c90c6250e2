package picker

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the picker. Letters always go to the
// filter, so movement uses arrows and control keys only.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+k", "ctrl+p"),
			key.WithHelp("↑/ctrl+k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j", "ctrl+n"),
			key.WithHelp("↓/ctrl+j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
