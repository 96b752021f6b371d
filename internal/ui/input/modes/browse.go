package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tagbar/internal/ui/input/types"
)

// BrowseMode moves between chips while the text cell is not focused.
type BrowseMode struct {
	keys types.KeyMap
}

func NewBrowseMode(keys types.KeyMap) *BrowseMode {
	return &BrowseMode{keys: keys}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

// Exit drops the chip selection; the caret takes over.
func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	if ctx.SelectedChip() >= 0 {
		return []types.Action{types.SelectChipAction{Index: -1}}
	}
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	count := ctx.ChipCount()
	selected := ctx.SelectedChip()

	switch {
	case key.Matches(msg, m.keys.Left):
		if count == 0 {
			return nil, false
		}
		if selected < 0 {
			return []types.Action{types.SelectChipAction{Index: count - 1}}, true
		}
		if selected > 0 {
			return []types.Action{types.MoveSelectionAction{Delta: -1}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Right):
		if selected < 0 {
			return nil, false
		}
		if selected < count-1 {
			return []types.Action{types.MoveSelectionAction{Delta: 1}}, true
		}
		// Past the last chip the caret takes over
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEdit}}, true

	case key.Matches(msg, m.keys.Remove) && selected >= 0:
		return []types.Action{types.RemoveChipAction{Index: selected}}, true

	case key.Matches(msg, m.keys.Focus):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEdit}}, true

	case key.Matches(msg, m.keys.Cancel):
		return []types.Action{types.CancelAction{}}, true
	}

	return nil, false
}
