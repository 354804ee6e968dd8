package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeCard Mode = iota
	ModeLightbox
)

func (m Mode) String() string {
	if m == ModeLightbox {
		return "lightbox"
	}
	return "card"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	IsRevealed() bool
	IsTransitioning() bool
	ImageCount() int
	ImageOpen() bool
	// Cursor is the sidebar row under the cursor, equal to CurrentIndex
	// unless the user has moved it
	Cursor() int
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
