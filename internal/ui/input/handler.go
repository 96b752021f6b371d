package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"tagbar/internal/ui/input/modes"
	"tagbar/internal/ui/input/types"
)

// Handler turns key presses into actions for the search bar.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	cell        *Cell // Shared with the strip, typed into in edit mode
	keys        types.KeyMap
}

func New(cell *Cell, keys types.KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeBrowse,
		cell:        cell,
		keys:        keys,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeBrowse] = modes.NewBrowseMode(keys)
	h.modes[types.ModeEdit] = modes.NewEditMode(keys)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && h.currentMode != types.ModeEdit {
		return nil, nil
	}

	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		if changeMode.Mode == h.currentMode {
			continue
		}
		allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
		h.currentMode = changeMode.Mode
		allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
	}

	// Unconsumed keys in edit mode are typed into the cell
	var cmd tea.Cmd
	if !consumed && h.currentMode == types.ModeEdit {
		before := h.cell.Value()
		cmd = h.cell.Update(msg)
		if h.cell.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: h.cell.Value()})
		}
	}

	return allActions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// SetMode switches modes without running enter or exit hooks. Used when the
// cell gains or loses focus outside the keyboard, e.g. by a mouse click.
func (h *Handler) SetMode(mode types.Mode) {
	h.currentMode = mode
}

func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// Reset returns to browse mode, as when the cell loses focus.
func (h *Handler) Reset() {
	h.currentMode = types.ModeBrowse
}
