package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// BarState contains all the state needed for rendering the search bar
type BarState struct {
	Width  int
	Height int

	CancelLabel   string
	CancelWidth   int
	CancelVisible bool

	SearchLabel   string
	SearchWidth   int
	SearchVisible bool

	// List is the already rendered strip, ListWidth cells wide
	List      string
	ListWidth int
}

// Renderer handles bar rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

func (r *Renderer) Styles() *Styles {
	return r.styles
}

func (r *Renderer) SetStyles(styles *Styles) {
	r.styles = styles
}

// Render produces the bar: cancel, strip, search. A region keeps its width
// while its button animates out, so hidden buttons leave blank space until
// the transition settles.
func (r *Renderer) Render(state BarState) string {
	if state.Width <= 0 {
		return ""
	}
	height := max(state.Height, 1)

	var parts []string
	if state.CancelWidth > 0 {
		parts = append(parts, r.button(state.CancelLabel, state.CancelWidth, height, state.CancelVisible, r.styles.Cancel))
	}
	if state.ListWidth > 0 {
		parts = append(parts, r.styles.Strip.
			Width(state.ListWidth).
			Height(height).
			Render(state.List))
	}
	if state.SearchWidth > 0 {
		parts = append(parts, r.button(state.SearchLabel, state.SearchWidth, height, state.SearchVisible, r.styles.Search))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return clip(bar, state.Width)
}

// button renders label centered in width cells, cut from the left edge when
// the region is narrower than the label.
func (r *Renderer) button(label string, width, height int, visible bool, style lipgloss.Style) string {
	if !visible {
		return r.styles.Strip.Width(width).Height(height).Render("")
	}
	full := max(lipgloss.Width(label), width)
	out := style.
		Width(full).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
	return clip(out, width)
}

func clip(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}
