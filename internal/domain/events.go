package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventEntriesLoaded      EventType = "EntriesLoaded"
	EventIndexChanged       EventType = "IndexChanged"
	EventRevealChanged      EventType = "RevealChanged"
	EventTransitionStarted  EventType = "TransitionStarted"
	EventImageFocused       EventType = "ImageFocused"
	EventProgressRestored   EventType = "ProgressRestored"
	EventProgressSaved      EventType = "ProgressSaved"
	EventProgressSaveFailed EventType = "ProgressSaveFailed"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventFeedChanged        EventType = "FeedChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// EntriesLoadedEvent is emitted when the FAQ collection has been fetched
type EntriesLoadedEvent struct {
	Count  int
	Source string
}

func (e EntriesLoadedEvent) Type() EventType { return EventEntriesLoaded }

// IndexChangedEvent is emitted whenever the current entry changes
type IndexChangedEvent struct {
	OldIndex       int
	NewIndex       int
	HighestReached int
}

func (e IndexChangedEvent) Type() EventType { return EventIndexChanged }

// RevealChangedEvent is emitted when the answer is shown or hidden
type RevealChangedEvent struct {
	Index    int
	Revealed bool
}

func (e RevealChangedEvent) Type() EventType { return EventRevealChanged }

// TransitionStartedEvent is emitted when a navigation command begins its swap
type TransitionStartedEvent struct {
	Command string
	From    int
}

func (e TransitionStartedEvent) Type() EventType { return EventTransitionStarted }

// ImageFocusedEvent is emitted when the lightbox opens, changes or closes.
// Image is -1 when closed.
type ImageFocusedEvent struct {
	Index int
	Image int
}

func (e ImageFocusedEvent) Type() EventType { return EventImageFocused }

// ProgressRestoredEvent is emitted after persisted progress was read at startup
type ProgressRestoredEvent struct {
	CurrentIndex   int
	HighestReached int
}

func (e ProgressRestoredEvent) Type() EventType { return EventProgressRestored }

// ProgressSavedEvent is emitted after progress was written to storage
type ProgressSavedEvent struct {
	CurrentIndex   int
	HighestReached int
}

func (e ProgressSavedEvent) Type() EventType { return EventProgressSaved }

// ProgressSaveFailedEvent is emitted when storage rejected a write.
// Progress stays in memory for the rest of the session.
type ProgressSaveFailedEvent struct {
	Err error
}

func (e ProgressSaveFailedEvent) Type() EventType { return EventProgressSaveFailed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Theme string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// FeedChangedEvent is emitted when a revalidated feed no longer matches the
// entries of the running session
type FeedChangedEvent struct {
	Source string
	Count  int
}

func (e FeedChangedEvent) Type() EventType { return EventFeedChanged }
