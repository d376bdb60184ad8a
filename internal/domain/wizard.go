package domain

import "fmt"

// Step is a screen of the trip-building wizard.
type Step string

const (
	StepCreate Step = "create" // entering the constraint
	StepNext   Step = "next"   // browsing and selecting places
	StepFinal  Step = "final"  // reviewing and submitting
)

// ParseStep converts a persisted value back into a Step.
// Unknown or empty values fall back to StepCreate.
func ParseStep(s string) Step {
	switch Step(s) {
	case StepNext:
		return StepNext
	case StepFinal:
		return StepFinal
	}
	return StepCreate
}

// Event is a navigation action inside the wizard.
type Event string

const (
	EventAdvance Event = "advance"
	EventBack    Event = "back"
)

// Transition returns the step reached by applying e to s.
// Guards that depend on data (a complete constraint before leaving Create)
// are enforced by the caller; this function only encodes the step graph.
func (s Step) Transition(e Event) (Step, error) {
	switch {
	case s == StepCreate && e == EventAdvance:
		return StepNext, nil
	case s == StepNext && e == EventAdvance:
		return StepFinal, nil
	case s == StepNext && e == EventBack:
		return StepCreate, nil
	case s == StepFinal && e == EventBack:
		return StepNext, nil
	}
	return s, fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, e, s)
}

// Require returns ErrInvalidTransition unless s equals want.
func (s Step) Require(want Step) error {
	if s != want {
		return fmt.Errorf("%w: operation requires step %s, current step is %s", ErrInvalidTransition, want, s)
	}
	return nil
}
