package types

// Card actions
type RevealAction struct{}

func (a RevealAction) Type() string { return "reveal" }

type AdvanceAction struct{}

func (a AdvanceAction) Type() string { return "advance" }

type RetreatAction struct{}

func (a RetreatAction) Type() string { return "retreat" }

type RewindAction struct{}

func (a RewindAction) Type() string { return "rewind" }

type JumpAction struct {
	Index int
}

func (a JumpAction) Type() string { return "jump" }

// MoveCursorAction moves the sidebar cursor over entries that are not hidden
type MoveCursorAction struct {
	Delta int
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

// Image actions
type OpenImageAction struct {
	Index int
}

func (a OpenImageAction) Type() string { return "open_image" }

type CloseImageAction struct{}

func (a CloseImageAction) Type() string { return "close_image" }

type CycleImageAction struct {
	Direction int // -1 previous, +1 next
}

func (a CycleImageAction) Type() string { return "cycle_image" }

// CancelAction is the global Escape signal
type CancelAction struct{}

func (a CancelAction) Type() string { return "cancel" }

// Application actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type CycleThemeAction struct{}

func (a CycleThemeAction) Type() string { return "cycle_theme" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
