package tui

import "charm.land/bubbles/v2/key"

// KeyMap holds the demo key bindings.
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Jump     key.Binding
	Animate  key.Binding
	Preserve key.Binding
	Rebuild  key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
		Animate: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle animation"),
		),
		Preserve: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle keep selection"),
		),
		Rebuild: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rebuild"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump, k.Animate, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Jump},
		{k.Animate, k.Preserve, k.Rebuild, k.Quit},
	}
}
