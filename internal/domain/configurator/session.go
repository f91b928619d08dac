package configurator

import (
	"time"

	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"

	"github.com/google/uuid"
)

// Session owns exactly one configuration and the wizard position over it.
// Callers serialize access; a session is never shared between customers.
type Session struct {
	id         uuid.UUID
	machine    *Machine
	sequencer  *Sequencer
	submitting bool
	createdAt  time.Time
	touchedAt  time.Time
}

// NewSession starts a session at the profile step with the default configuration.
func NewSession(id uuid.UUID, now time.Time) *Session {
	m := NewMachine()

	return &Session{
		id:        id,
		machine:   m,
		sequencer: NewSequencer(m),
		createdAt: now,
		touchedAt: now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// CreatedAt returns when the session started.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// TouchedAt returns the time of the last interaction.
func (s *Session) TouchedAt() time.Time { return s.touchedAt }

// Touch records an interaction at now.
func (s *Session) Touch(now time.Time) { s.touchedAt = now }

// Step returns the active wizard step.
func (s *Session) Step() Step { return s.sequencer.Current() }

// Configuration returns a copy of the live configuration.
func (s *Session) Configuration() entity.Configuration { return s.machine.Configuration() }

// Submitting reports whether a quote submission is pending.
func (s *Session) Submitting() bool { return s.submitting }

// View composes the display data for the active step.
func (s *Session) View() View {
	return ComposeView(s.machine.current(), s.sequencer.Current())
}

// Preview composes the 3D and overlay parameters.
func (s *Session) Preview() Preview {
	return ComposePreview(s.machine.current())
}

// Apply updates one field and returns the recomposed view.
func (s *Session) Apply(change Change) View {
	s.machine.Update(change)

	return s.View()
}

// Next advances when allowed. moved is false when the gate blocked the transition.
func (s *Session) Next() (View, bool) {
	moved := s.sequencer.Next()

	return s.View(), moved
}

// Prev goes back one step.
func (s *Session) Prev() (View, bool) {
	moved := s.sequencer.Prev()

	return s.View(), moved
}

// JumpTo moves to an earlier or the current step.
func (s *Session) JumpTo(step Step) (View, bool) {
	moved := s.sequencer.JumpTo(step)

	return s.View(), moved
}

// Reset restores the default configuration and returns to the first step.
func (s *Session) Reset() View {
	s.machine.Reset()
	s.sequencer.Reset()

	return s.View()
}

// Restore loads a configuration wholesale and advances as far as its selections allow.
func (s *Session) Restore(cfg entity.Configuration) View {
	s.machine.Restore(cfg)
	s.sequencer.Reset()
	s.sequencer.FastForward()

	return s.View()
}

// BeginSubmit marks a quote submission as pending and returns the snapshot to submit.
func (s *Session) BeginSubmit() (entity.Configuration, error) {
	if s.submitting {
		return entity.Configuration{}, domainerrors.ErrSubmissionInFlight
	}
	cfg := s.machine.current()
	if !IsComplete(cfg) {
		return entity.Configuration{}, domainerrors.ErrQuoteIncomplete
	}
	s.submitting = true

	return cfg.Clone(), nil
}

// EndSubmit clears the pending flag. The configuration is kept whatever the outcome.
func (s *Session) EndSubmit() {
	s.submitting = false
}
