package demo

import (
	"github.com/charmbracelet/bubbles/key"

	"tagbar/searchbar"
)

// KeyMap holds the host's own bindings; the bar brings its own.
type KeyMap struct {
	Quit      key.Binding
	Exit      key.Binding
	Help      key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	AddTag    key.Binding
	TagResult key.Binding
}

// DefaultKeyMap returns the host's default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous result"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next result"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		AddTag: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "text to tag"),
		),
		TagResult: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tag result"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTag, k.Help, k.Exit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.AddTag, k.TagResult},
		{k.Help, k.Exit, k.Quit},
	}
}

// helpKeys joins the bar's bindings with the host's for bubbles/help.
type helpKeys struct {
	bar  *searchbar.Model
	host KeyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	return append(h.bar.ShortHelp(), h.host.ShortHelp()...)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return append(h.bar.FullHelp(), h.host.FullHelp()...)
}
