package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeBrowse is active while the text cell is not focused; keys move
	// between chips and remove them.
	ModeBrowse Mode = iota
	// ModeEdit is active while the text cell has focus.
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Action represents a command the search bar should execute
type Action interface {
	Type() string
}

// Context provides read-only access to the strip state needed for input handling
type Context interface {
	ChipCount() int
	// SelectedChip is the visual index of the selected chip, or -1.
	SelectedChip() int
	InputEmpty() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
