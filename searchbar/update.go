package searchbar

import (
	tea "github.com/charmbracelet/bubbletea"

	"tagbar/internal/ui/anim"
	"tagbar/internal/ui/input/types"
	"tagbar/internal/ui/strip"
)

// barContext implements the Context interface for the input handler
type barContext struct {
	m *Model
}

func (c barContext) ChipCount() int    { return c.m.strip.VisibleCount() }
func (c barContext) SelectedChip() int { return c.m.strip.Selected() }
func (c barContext) InputEmpty() bool  { return c.m.cell.Value() == "" }

// Update handles messages. Mouse coordinates are relative to the bar's top
// left corner; hosts that draw the bar elsewhere translate them first.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.must()
	switch msg := msg.(type) {
	case anim.FrameMsg:
		return m, m.queue.Update(msg)

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, m.height)
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.keys.HandleKey(msg, barContext{m})

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m, m.click(msg.X, msg.Y)

	default:
		// Cursor blink and paste messages
		return m, m.cell.Update(msg)
	}
}

func (m *Model) processAction(action types.Action) tea.Cmd {
	m.logger.Debug("searchbar: action", "type", action.Type())
	switch a := action.(type) {
	case types.SelectChipAction:
		m.strip.Select(a.Index)

	case types.MoveSelectionAction:
		m.strip.MoveSelection(a.Delta)

	case types.RemoveChipAction:
		return m.strip.RemoveVisible(a.Index)

	case types.FocusInputAction:
		return m.Focus()

	case types.BlurInputAction:
		m.Blur()

	case types.SearchAction:
		return m.tapSearch()

	case types.CancelAction:
		return m.tapCancel()
	}
	return nil
}

// click dispatches a left click at bar column x.
func (m *Model) click(x, y int) tea.Cmd {
	if y < 0 || y >= m.height || x < 0 || x >= m.width {
		return nil
	}
	g := m.mode.Current()

	switch {
	case g.CancelVisible && x < g.CancelWidth:
		return m.tapCancel()

	case g.SearchVisible && x >= g.ListX+g.ListWidth:
		return m.tapSearch()

	case x >= g.ListX && x < g.ListX+g.ListWidth:
		it, ok := m.strip.HitTest(x - g.ListX)
		if !ok {
			return nil
		}
		if it.Kind == strip.KindTag {
			return m.strip.RemoveVisible(it.Index)
		}
		// Only a click that begins editing counts as gaining focus
		if m.cell.Focused() {
			return nil
		}
		return m.Focus()
	}
	return nil
}

func (m *Model) tapCancel() tea.Cmd {
	m.Blur()
	cmd := m.mode.Cancel()
	if m.delegate.OnCancel != nil {
		m.delegate.OnCancel()
	}
	return cmd
}

// tapSearch notifies the delegate even when the layout does not change.
func (m *Model) tapSearch() tea.Cmd {
	m.Blur()
	cmd := m.mode.Search()
	if m.delegate.OnSearch != nil {
		m.delegate.OnSearch()
	}
	return cmd
}
