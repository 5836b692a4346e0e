package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted   EventType = "SearchStarted"
	EventStepAdvanced    EventType = "StepAdvanced"
	EventMatchFound      EventType = "MatchFound"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSessionReset    EventType = "SessionReset"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a search session starts
type SearchStartedEvent struct {
	Text      string
	Pattern   string
	StepCount int
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// StepAdvancedEvent is emitted each time the walker enters a new step
type StepAdvancedEvent struct {
	Index int
	Step  Step
}

func (e StepAdvancedEvent) Type() EventType { return EventStepAdvanced }

// MatchFoundEvent is emitted when a step confirms a pattern occurrence
type MatchFoundEvent struct {
	Index int // match start index in the text
}

func (e MatchFoundEvent) Type() EventType { return EventMatchFound }

// SearchCompletedEvent is emitted when the walker enters the completed state
type SearchCompletedEvent struct {
	Found []int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SessionResetEvent is emitted when the session is reset
type SessionResetEvent struct{}

func (e SessionResetEvent) Type() EventType { return EventSessionReset }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	DefaultText    string
	DefaultPattern string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	DefaultText    string
	DefaultPattern string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
