package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the drawer app.
type KeyMap struct {
	Quit        key.Binding
	Search      key.Binding
	Blur        key.Binding
	Up          key.Binding
	Down        key.Binding
	Copy        key.Binding
	ToggleMouse key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "copy command"),
		),
		ToggleMouse: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "toggle mouse"),
		),
	}
}

// ShortHelp returns keybindings to show in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Copy, k.ToggleMouse, k.Quit}
}
