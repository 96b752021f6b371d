package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tagbar/internal/ui/input/types"
)

// EditMode is active while the text cell has focus. Keys it does not
// consume are typed into the cell by the handler.
type EditMode struct {
	keys types.KeyMap
}

func NewEditMode(keys types.KeyMap) *EditMode {
	return &EditMode{keys: keys}
}

func (m *EditMode) Name() string {
	return "edit"
}

func (m *EditMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FocusInputAction{}}
}

func (m *EditMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.BlurInputAction{}}
}

func (m *EditMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Search):
		return []types.Action{
			types.SearchAction{},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true

	case key.Matches(msg, m.keys.Cancel):
		return []types.Action{
			types.CancelAction{},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true

	case key.Matches(msg, m.keys.Leave):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true

	case key.Matches(msg, m.keys.Backspace) && ctx.InputEmpty() && ctx.ChipCount() > 0:
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeBrowse},
			types.SelectChipAction{Index: ctx.ChipCount() - 1},
		}, true
	}

	return nil, false
}
