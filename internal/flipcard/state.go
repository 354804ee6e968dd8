package flipcard

// NoImage is the FocusedImage value when the lightbox is closed
const NoImage = -1

// State is the navigation state of one flip card.
// It is owned by a Controller and only changes through its commands.
type State struct {
	CurrentIndex    int
	IsRevealed      bool
	IsTransitioning bool
	HighestReached  int
	FocusedImage    int
}

// Mode is the interaction mode derived from the state flags
type Mode int

const (
	ModeQuestion Mode = iota
	ModeAnswer
	ModeTransitioning
)

func (m Mode) String() string {
	switch m {
	case ModeQuestion:
		return "question"
	case ModeAnswer:
		return "answer"
	case ModeTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// Mode derives the interaction mode
func (s State) Mode() Mode {
	switch {
	case s.IsTransitioning:
		return ModeTransitioning
	case s.IsRevealed:
		return ModeAnswer
	default:
		return ModeQuestion
	}
}

// ImageOpen reports whether a gallery image is enlarged
func (s State) ImageOpen() bool {
	return s.FocusedImage != NoImage
}

func defaultState() State {
	return State{FocusedImage: NoImage}
}

// Visibility classifies an entry for the look-ahead sidebar
type Visibility int

const (
	Hidden Visibility = iota
	Completed
	Current
	Upcoming
)

func (v Visibility) String() string {
	switch v {
	case Completed:
		return "completed"
	case Current:
		return "current"
	case Upcoming:
		return "upcoming"
	default:
		return "hidden"
	}
}
