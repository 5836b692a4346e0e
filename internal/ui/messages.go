package ui

import (
	"matchwalk/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tracePagerMsg contains the result of showing the trace pager
type tracePagerMsg struct {
	err error
}
