package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Callbacks are the optional notifications of a Cell. Each receives the
// cell's value at the time of the event.
type Callbacks struct {
	Began    func(text string)
	Changed  func(text string)
	Finished func(text string)
}

// Cell is the single free-text entry point of the search bar.
type Cell struct {
	ti        textinput.Model
	callbacks Callbacks
}

func NewCell(placeholder string) *Cell {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	return &Cell{ti: ti}
}

func (c *Cell) SetCallbacks(cb Callbacks) {
	c.callbacks = cb
}

// Focus gives the cell keyboard focus. Began fires only on the transition.
func (c *Cell) Focus() tea.Cmd {
	if c.ti.Focused() {
		return nil
	}
	cmd := c.ti.Focus()
	c.fire(c.callbacks.Began)
	return cmd
}

// Blur removes focus. Finished fires only on the transition.
func (c *Cell) Blur() {
	if !c.ti.Focused() {
		return
	}
	c.ti.Blur()
	c.fire(c.callbacks.Finished)
}

func (c *Cell) Focused() bool {
	return c.ti.Focused()
}

func (c *Cell) Value() string {
	return c.ti.Value()
}

// SetValue replaces the content without notifying Changed.
func (c *Cell) SetValue(s string) {
	c.ti.SetValue(s)
	c.ti.CursorEnd()
}

func (c *Cell) Placeholder() string {
	return c.ti.Placeholder
}

func (c *Cell) SetPlaceholder(s string) {
	c.ti.Placeholder = s
}

// SetWidth sets the total width of the cell in cells, the caret included.
func (c *Cell) SetWidth(w int) {
	c.ti.Width = max(w-1, 1)
}

func (c *Cell) SetStyles(text, placeholder lipgloss.Style) {
	c.ti.TextStyle = text
	c.ti.PlaceholderStyle = placeholder
}

// Update forwards msg to the text input. Changed fires when the value
// differs afterwards.
func (c *Cell) Update(msg tea.Msg) tea.Cmd {
	before := c.ti.Value()
	var cmd tea.Cmd
	c.ti, cmd = c.ti.Update(msg)
	if c.ti.Value() != before {
		c.fire(c.callbacks.Changed)
	}
	return cmd
}

func (c *Cell) View() string {
	return c.ti.View()
}

func (c *Cell) fire(fn func(string)) {
	if fn != nil {
		fn(c.ti.Value())
	}
}
