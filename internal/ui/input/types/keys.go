package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard bindings of the search bar.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Remove key.Binding
	Focus  key.Binding
	Leave  key.Binding
	Search key.Binding
	Cancel key.Binding
	// Backspace selects the last chip when pressed on an empty input.
	Backspace key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous tag"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next tag"),
		),
		Remove: key.NewBinding(
			key.WithKeys("backspace", "delete", "x", "enter"),
			key.WithHelp("x/del", "remove tag"),
		),
		Focus: key.NewBinding(
			key.WithKeys("/", "i", "tab"),
			key.WithHelp("/ or i", "type"),
		),
		Leave: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "leave input"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Search, k.Cancel, k.Remove}
}

// FullHelp returns the bindings grouped for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Remove},
		{k.Focus, k.Leave},
		{k.Search, k.Cancel},
	}
}
