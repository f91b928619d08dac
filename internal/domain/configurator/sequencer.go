package configurator

import "bartile/internal/domain/entity"

// Step is a position in the configurator wizard.
type Step int

const (
	StepProfile Step = iota
	StepColor
	StepTexture
	StepOptions
	StepSummary
)

// StepCount is the number of wizard steps.
const StepCount = int(StepSummary) + 1

var stepLabels = [StepCount]string{"Profile", "Color", "Texture", "Options", "Summary"}

// String returns the display label of the step.
func (s Step) String() string {
	if !s.IsValid() {
		return Unset
	}

	return stepLabels[s]
}

// IsValid checks if the step lies within the wizard.
func (s Step) IsValid() bool {
	return s >= StepProfile && s <= StepSummary
}

// Steps returns every step in order.
func Steps() []Step {
	return []Step{StepProfile, StepColor, StepTexture, StepOptions, StepSummary}
}

// CanLeave is the gating predicate: whether forward navigation from step is allowed for cfg.
func CanLeave(step Step, cfg *entity.Configuration) bool {
	switch step {
	case StepProfile:
		return cfg.Profile != nil
	case StepColor:
		return cfg.Color != nil
	case StepTexture:
		return cfg.Texture != nil
	default:
		return true
	}
}

// Sequencer walks the wizard steps, gated by the configuration held in its machine.
// Blocked transitions leave the current step unchanged and report false.
type Sequencer struct {
	machine *Machine
	current Step
}

// NewSequencer starts a sequencer at the profile step.
func NewSequencer(machine *Machine) *Sequencer {
	return &Sequencer{machine: machine, current: StepProfile}
}

// Current returns the active step.
func (s *Sequencer) Current() Step {
	return s.current
}

// CanProceed evaluates the gating predicate for the active step.
func (s *Sequencer) CanProceed() bool {
	return CanLeave(s.current, s.machine.current())
}

// Next advances one step when the active step is satisfied. It is a no-op on the summary step.
func (s *Sequencer) Next() bool {
	if !s.CanProceed() || s.current == StepSummary {
		return false
	}
	s.current++

	return true
}

// Prev goes back one step. Earlier steps are never gated.
func (s *Sequencer) Prev() bool {
	if s.current == StepProfile {
		return false
	}
	s.current--

	return true
}

// JumpTo moves to an already visited or the current step. Forward jumps are rejected.
func (s *Sequencer) JumpTo(step Step) bool {
	if !step.IsValid() || step > s.current {
		return false
	}
	s.current = step

	return true
}

// Reset returns to the profile step.
func (s *Sequencer) Reset() {
	s.current = StepProfile
}

// FastForward advances while every gate along the way is satisfied and returns the step reached.
func (s *Sequencer) FastForward() Step {
	for s.Next() {
	}

	return s.current
}
