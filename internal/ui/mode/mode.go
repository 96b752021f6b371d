// Package mode tracks whether the search bar is collapsed or active and
// sizes the cancel button, the strip and the search button accordingly.
package mode

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tagbar/internal/ui/anim"
)

type State int

const (
	// Collapsed hides both buttons; the strip spans the full width.
	Collapsed State = iota
	// ActiveCancelOnly shows the cancel button on the left.
	ActiveCancelOnly
	// ActiveBoth shows cancel on the left and search on the right.
	ActiveBoth
)

func (s State) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case ActiveCancelOnly:
		return "active-cancel-only"
	case ActiveBoth:
		return "active-both"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Geometry of the bar in cells, left to right: cancel, strip, search.
type Geometry struct {
	CancelVisible bool
	SearchVisible bool
	CancelWidth   int
	SearchWidth   int
	ListX         int
	ListWidth     int
}

// Viewport is resized while the buttons come and go.
type Viewport interface {
	SetViewport(width int)
}

// Buttons describes the two buttons; their widths derive from it.
type Buttons struct {
	CancelTitle string
	CancelIcon  string // replaces the title when set
	SearchTitle string
	Padding     int
}

func DefaultButtons() Buttons {
	return Buttons{
		CancelTitle: "Back",
		SearchTitle: "SEARCH",
		Padding:     2,
	}
}

// CancelWidth is the width of the icon if set, else of the title.
func (b Buttons) CancelWidth() int {
	if b.CancelIcon != "" {
		return lipgloss.Width(b.CancelIcon)
	}
	return lipgloss.Width(b.CancelTitle)
}

// SearchWidth is the title width plus padding.
func (b Buttons) SearchWidth() int {
	return lipgloss.Width(b.SearchTitle) + b.Padding
}

// Machine is the mode state machine. The state changes synchronously; the
// geometry follows through one queued task per transition.
type Machine struct {
	state   State
	queue   *anim.Queue
	list    Viewport
	width   int
	buttons Buttons
	current Geometry
	pending int // queued or running transitions
	logger  *slog.Logger
}

func New(queue *anim.Queue, list Viewport, buttons Buttons, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Machine{
		state:   Collapsed,
		queue:   queue,
		list:    list,
		buttons: buttons,
		logger:  logger,
	}
	m.snap()
	return m
}

func (m *Machine) State() State {
	return m.state
}

// Geometry is the settled geometry of the current state.
func (m *Machine) Geometry() Geometry {
	return m.target(m.state)
}

// Current is the geometry on screen, which lags Geometry while a
// transition is animating.
func (m *Machine) Current() Geometry {
	return m.current
}

func (m *Machine) Buttons() Buttons {
	return m.buttons
}

// SetButtons recomputes button widths. The change is applied at once
// unless a transition is pending, which picks it up when it settles.
func (m *Machine) SetButtons(b Buttons) {
	m.buttons = b
	if m.pending == 0 {
		m.snap()
	}
}

// SetWidth sets the total width of the bar without animating.
func (m *Machine) SetWidth(width int) {
	m.width = max(width, 0)
	if m.pending == 0 {
		m.snap()
	}
}

func (m *Machine) Width() int {
	return m.width
}

// Animating reports whether a transition is queued or running.
func (m *Machine) Animating() bool {
	return m.pending > 0
}

// Focus is called whenever the input gains focus.
func (m *Machine) Focus() tea.Cmd {
	switch m.state {
	case Collapsed:
		return m.transition(ActiveCancelOnly)
	case ActiveCancelOnly:
		return m.transition(ActiveBoth)
	}
	return nil
}

// Cancel hides both buttons.
func (m *Machine) Cancel() tea.Cmd {
	return m.transition(Collapsed)
}

// Search hides the search button and keeps cancel. It does nothing while
// collapsed.
func (m *Machine) Search() tea.Cmd {
	if m.state == Collapsed {
		return nil
	}
	return m.transition(ActiveCancelOnly)
}

// ShowBackButton shows the cancel button alone without a user event.
func (m *Machine) ShowBackButton() tea.Cmd {
	return m.transition(ActiveCancelOnly)
}

func (m *Machine) transition(to State) tea.Cmd {
	if to == m.state {
		return nil
	}
	from := m.state
	m.state = to
	m.logger.Debug("mode: transition", "from", from, "to", to)

	var start, end Geometry
	m.pending++
	return m.queue.Enqueue(anim.Task{
		Name:     fmt.Sprintf("mode %s -> %s", from, to),
		Animated: true,
		Start: func() {
			start, end = m.current, m.target(to)
			m.current.CancelVisible = end.CancelVisible
			m.current.SearchVisible = end.SearchVisible
		},
		Step: func(p float64) {
			g := m.current
			g.CancelWidth = anim.Lerp(start.CancelWidth, end.CancelWidth, p)
			g.SearchWidth = anim.Lerp(start.SearchWidth, end.SearchWidth, p)
			g.ListX = g.CancelWidth
			g.ListWidth = max(m.width-g.CancelWidth-g.SearchWidth, 0)
			m.apply(g)
		},
		Done: func() {
			m.pending--
			m.apply(m.target(to))
		},
	})
}

// snap jumps to the settled geometry of the current state.
func (m *Machine) snap() {
	m.apply(m.target(m.state))
}

func (m *Machine) apply(g Geometry) {
	m.current = g
	if m.list != nil {
		m.list.SetViewport(g.ListWidth)
	}
}

func (m *Machine) target(s State) Geometry {
	g := Geometry{ListWidth: m.width}
	if s != Collapsed {
		g.CancelVisible = true
		g.CancelWidth = m.buttons.CancelWidth()
		g.ListX = g.CancelWidth
		g.ListWidth -= g.CancelWidth
	}
	if s == ActiveBoth {
		g.SearchVisible = true
		g.SearchWidth = m.buttons.SearchWidth()
		g.ListWidth -= g.SearchWidth
	}
	g.ListWidth = max(g.ListWidth, 0)
	return g
}
