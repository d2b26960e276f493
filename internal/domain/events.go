package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRequestsLoaded      EventType = "RequestsLoaded"
	EventFiltersApplied      EventType = "FiltersApplied"
	EventFiltersCleared      EventType = "FiltersCleared"
	EventSelectionChanged    EventType = "SelectionChanged"
	EventBulkActionStarted   EventType = "BulkActionStarted"
	EventBulkActionCompleted EventType = "BulkActionCompleted"
	EventBulkActionFailed    EventType = "BulkActionFailed"
	EventError               EventType = "Error"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RequestsLoadedEvent is emitted after a listing call returns
type RequestsLoadedEvent struct {
	Criteria Criteria
	Count    int
}

func (e RequestsLoadedEvent) Type() EventType { return EventRequestsLoaded }

// FiltersAppliedEvent is emitted when the filter panel confirms
type FiltersAppliedEvent struct {
	Criteria Criteria
}

func (e FiltersAppliedEvent) Type() EventType { return EventFiltersApplied }

// FiltersClearedEvent is emitted when the filter panel is cleared
type FiltersClearedEvent struct{}

func (e FiltersClearedEvent) Type() EventType { return EventFiltersCleared }

// SelectionChangedEvent is emitted when the selection model changes
type SelectionChangedEvent struct {
	SelectAll bool
	Checked   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// BulkActionStartedEvent is emitted before the first mutation of a batch
type BulkActionStartedEvent struct {
	Action string
	IDs    []string
}

func (e BulkActionStartedEvent) Type() EventType { return EventBulkActionStarted }

// BulkActionCompletedEvent is emitted when every mutation of a batch succeeded
type BulkActionCompletedEvent struct {
	Action  string
	Applied []string
}

func (e BulkActionCompletedEvent) Type() EventType { return EventBulkActionCompleted }

// BulkActionFailedEvent is emitted when a batch stopped at a failing mutation
type BulkActionFailedEvent struct {
	Action   string
	Applied  []string
	FailedID string
	Err      error
}

func (e BulkActionFailedEvent) Type() EventType { return EventBulkActionFailed }

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
