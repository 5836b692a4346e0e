// Package session owns the walker state for one interactive search.
// The walker moves through the generated trace one step at a time and
// never backwards: NotStarted -> Initial -> 0..len(steps)-1 -> Completed.
package session

import (
	"errors"

	"matchwalk/internal/domain"
	"matchwalk/internal/search"
)

// Validation errors returned by Start
var (
	ErrEmptyText      = errors.New("text cannot be empty")
	ErrEmptyPattern   = errors.New("pattern cannot be empty")
	ErrPatternTooLong = errors.New("pattern cannot be longer than the text")
)

// cursorInitial marks the position before the first step, after Start
const cursorInitial = -1

// Session holds the state of one interactive walk through a search trace
type Session struct {
	text    string
	pattern string
	steps   []domain.Step
	cursor  int
	started bool
	done    bool
	found   []int
}

// New creates an empty session in the NotStarted state
func New() *Session {
	return &Session{}
}

// Start validates the inputs, generates the full step trace and positions
// the cursor before the first step. On a validation error the session is
// left unchanged.
func (s *Session) Start(text, pattern string) error {
	if text == "" {
		return ErrEmptyText
	}
	if pattern == "" {
		return ErrEmptyPattern
	}
	if len(pattern) > len(text) {
		return ErrPatternTooLong
	}

	s.text = text
	s.pattern = pattern
	s.steps = search.Generate(text, pattern)
	s.cursor = cursorInitial
	s.started = true
	s.done = false
	s.found = nil
	return nil
}

// Advance moves the cursor one step forward. On the last step one further
// Advance enters the completed state; that extra transition is deliberate
// so the summary only appears after the user acknowledges the final step.
// Advancing a session that was never started, or one already completed,
// does nothing.
func (s *Session) Advance() {
	if !s.started || s.done {
		return
	}
	if s.cursor < len(s.steps)-1 {
		s.cursor++
		step := s.steps[s.cursor]
		if step.IsMatch() {
			s.found = append(s.found, step.FoundAt...)
		}
		return
	}
	s.done = true
}

// Reset returns the session to NotStarted, discarding the trace and any
// accumulated matches
func (s *Session) Reset() {
	*s = Session{}
}

// Current returns the step under the cursor. The second return is false
// when there is no current step (not started, at the initial position, or
// the trace is empty).
func (s *Session) Current() (domain.Step, bool) {
	if !s.started || s.cursor < 0 || s.cursor >= len(s.steps) {
		return domain.Step{}, false
	}
	return s.steps[s.cursor], true
}

// Found returns a copy of the match start indices discovered so far,
// in discovery order
func (s *Session) Found() []int {
	out := make([]int, len(s.found))
	copy(out, s.found)
	return out
}

// Started reports whether a search is active
func (s *Session) Started() bool { return s.started }

// Completed reports whether the walker advanced past the final step
func (s *Session) Completed() bool { return s.done }

// Cursor returns the current position in the trace, -1 for the initial
// position before the first step
func (s *Session) Cursor() int { return s.cursor }

// StepCount returns the length of the generated trace
func (s *Session) StepCount() int { return len(s.steps) }

// Steps returns the generated trace. The slice is shared, callers must
// treat it as read-only.
func (s *Session) Steps() []domain.Step { return s.steps }

// Text returns the text this session was started with
func (s *Session) Text() string { return s.text }

// Pattern returns the pattern this session was started with
func (s *Session) Pattern() string { return s.pattern }
