package types

// Chip selection actions
type SelectChipAction struct {
	Index int // -1 clears the selection
}

func (a SelectChipAction) Type() string { return "select_chip" }

type MoveSelectionAction struct {
	Delta int
}

func (a MoveSelectionAction) Type() string { return "move_selection" }

type RemoveChipAction struct {
	Index int // visual index
}

func (a RemoveChipAction) Type() string { return "remove_chip" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type FocusInputAction struct{}

func (a FocusInputAction) Type() string { return "focus_input" }

type BlurInputAction struct{}

func (a BlurInputAction) Type() string { return "blur_input" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Button actions
type SearchAction struct{}

func (a SearchAction) Type() string { return "search" }

type CancelAction struct{}

func (a CancelAction) Type() string { return "cancel" }
