package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTagAdded        EventType = "TagAdded"
	EventTagRemoved      EventType = "TagRemoved"
	EventTagsReplaced    EventType = "TagsReplaced"
	EventSearchRequested EventType = "SearchRequested"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchCancelled EventType = "SearchCancelled"
	EventTextChanged     EventType = "TextChanged"
	EventEditingBegan    EventType = "EditingBegan"
	EventEditingFinished EventType = "EditingFinished"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventAppReady        EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TagAddedEvent is emitted when the host adds a tag to the bar
type TagAddedEvent struct {
	Tag Tag
}

func (e TagAddedEvent) Type() EventType { return EventTagAdded }

// TagRemovedEvent is emitted once the removal animation of a chip settled
type TagRemovedEvent struct {
	Tag Tag
}

func (e TagRemovedEvent) Type() EventType { return EventTagRemoved }

// TagsReplacedEvent is emitted when the whole tag sequence was swapped
type TagsReplacedEvent struct {
	Tags []Tag
}

func (e TagsReplacedEvent) Type() EventType { return EventTagsReplaced }

// SearchRequestedEvent is emitted when the search button is tapped
type SearchRequestedEvent struct {
	Seq   uint64
	Query Query
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCompletedEvent carries the documents matching a query.
// Seq echoes the request so hosts can drop answers to older queries.
type SearchCompletedEvent struct {
	Seq     uint64
	Query   Query
	Results []Document
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchCancelledEvent is emitted when the cancel/back button is tapped
type SearchCancelledEvent struct{}

func (e SearchCancelledEvent) Type() EventType { return EventSearchCancelled }

// TextChangedEvent is emitted on every user edit of the input cell
type TextChangedEvent struct {
	Text string
}

func (e TextChangedEvent) Type() EventType { return EventTextChanged }

// EditingBeganEvent is emitted when the input cell gains focus
type EditingBeganEvent struct {
	Text string
}

func (e EditingBeganEvent) Type() EventType { return EventEditingBegan }

// EditingFinishedEvent is emitted when the input cell loses focus
type EditingFinishedEvent struct {
	Text string
}

func (e EditingFinishedEvent) Type() EventType { return EventEditingFinished }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	Documents int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
