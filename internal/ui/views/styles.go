package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tagbar/internal/config"
)

// Styles contains all the style definitions for the search bar
type Styles struct {
	Chip         lipgloss.Style
	ChipSelected lipgloss.Style
	Input        lipgloss.Style
	Placeholder  lipgloss.Style
	Cancel       lipgloss.Style
	Search       lipgloss.Style
	Strip        lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return StylesFromConfig(config.DefaultConfig())
}

// StylesFromConfig builds the styles from the [colors] and [fonts] sections
func StylesFromConfig(cfg *config.Config) *Styles {
	c := cfg.Colors
	f := cfg.Fonts

	chip := WithAttributes(lipgloss.NewStyle().
		Background(lipgloss.Color(c.ChipBackground)).
		Foreground(lipgloss.Color(c.ChipForeground)), f.Chip)

	return &Styles{
		Chip:         chip,
		ChipSelected: chip.Reverse(true),
		Input:        WithAttributes(lipgloss.NewStyle(), f.Input),
		Placeholder:  WithAttributes(lipgloss.NewStyle().Faint(true), f.Input),
		Cancel: WithAttributes(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.CancelTitle)), f.Button),
		Search: WithAttributes(lipgloss.NewStyle().
			Background(lipgloss.Color(c.SearchBackground)).
			Foreground(lipgloss.Color(c.SearchTitle)), f.Button),
		Strip: lipgloss.NewStyle().Background(lipgloss.Color(c.StripBackground)),
		Help:  lipgloss.NewStyle().Faint(true),
	}
}

// WithAttributes applies a comma separated attribute list such as
// "bold,italic". Unknown names are ignored.
func WithAttributes(s lipgloss.Style, attrs string) lipgloss.Style {
	for _, a := range strings.Split(attrs, ",") {
		switch strings.ToLower(strings.TrimSpace(a)) {
		case "bold":
			s = s.Bold(true)
		case "italic":
			s = s.Italic(true)
		case "underline":
			s = s.Underline(true)
		case "faint":
			s = s.Faint(true)
		case "reverse":
			s = s.Reverse(true)
		case "strikethrough":
			s = s.Strikethrough(true)
		}
	}
	return s
}
