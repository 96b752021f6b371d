// Package chip measures and draws the removable tag tokens of the strip.
package chip

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Metrics is the fixed chrome around a chip's text. It does not depend on
// the chip's style.
type Metrics struct {
	LeadingGap  int
	IconGap     int
	TrailingGap int
	Icon        string
}

// DefaultMetrics renders " text ✕ ".
func DefaultMetrics() Metrics {
	return Metrics{
		LeadingGap:  1,
		IconGap:     1,
		TrailingGap: 1,
		Icon:        "✕",
	}
}

// Chrome is the number of cells a chip adds around its text.
func (m Metrics) Chrome() int {
	return m.LeadingGap + runewidth.StringWidth(m.Icon) + m.IconGap + m.TrailingGap
}

// Styles for a chip in its resting and selected state.
type Styles struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns dark text on a light gray chip.
func DefaultStyles() Styles {
	normal := lipgloss.NewStyle().
		Background(lipgloss.Color("252")).
		Foreground(lipgloss.Color("235"))
	return Styles{
		Normal:   normal,
		Selected: normal.Reverse(true),
	}
}

// Renderer turns tag text into chips.
type Renderer struct {
	metrics Metrics
	styles  Styles
}

// NewRenderer creates a chip renderer.
func NewRenderer(metrics Metrics, styles Styles) *Renderer {
	return &Renderer{metrics: metrics, styles: styles}
}

// SetStyles replaces the chip styles; widths are unaffected.
func (r *Renderer) SetStyles(styles Styles) {
	r.styles = styles
}

// SetIcon replaces the removal glyph.
func (r *Renderer) SetIcon(icon string) {
	r.metrics.Icon = icon
}

// Width is the measured width of the lower-cased text plus the chrome.
func (r *Renderer) Width(text string) int {
	return runewidth.StringWidth(strings.ToLower(text)) + r.metrics.Chrome()
}

// Render draws the chip for text clipped to width cells and height rows.
// A width below the full chip width shows the left part only, which is how
// chips grow and shrink while they are inserted or removed.
func (r *Renderer) Render(text string, width, height int, selected bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	full := r.Width(text)
	textWidth := full - r.metrics.Chrome()
	label := runewidth.FillRight(runewidth.Truncate(text, textWidth, ""), textWidth)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", r.metrics.LeadingGap))
	b.WriteString(label)
	b.WriteString(strings.Repeat(" ", r.metrics.IconGap))
	b.WriteString(r.metrics.Icon)
	b.WriteString(strings.Repeat(" ", r.metrics.TrailingGap))

	style := r.styles.Normal
	if selected {
		style = r.styles.Selected
	}
	block := style.
		Width(full).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(b.String())

	if width >= full {
		return block
	}
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}
