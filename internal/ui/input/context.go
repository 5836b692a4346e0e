package input

import (
	"matchwalk/internal/session"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Session  *session.Session
	Text     string
	Pattern  string
	ShowHelp bool
}

// SearchActive returns true once a search has been started
func (c *ModelContext) SearchActive() bool {
	return c.Session.Started()
}

// SearchComplete returns true once the walker acknowledged the final step
func (c *ModelContext) SearchComplete() bool {
	return c.Session.Completed()
}

// HasTrace returns true when a generated trace exists to show in the pager
func (c *ModelContext) HasTrace() bool {
	return c.Session.StepCount() > 0
}

// HelpVisible returns true while the help overlay is shown
func (c *ModelContext) HelpVisible() bool {
	return c.ShowHelp
}

// TextValue returns the current text field content
func (c *ModelContext) TextValue() string {
	return c.Text
}

// PatternValue returns the current pattern field content
func (c *ModelContext) PatternValue() string {
	return c.Pattern
}
