package daggerheart

import "fmt"

// Step is a 1-based wizard step number
type Step int

// Wizard steps
const (
	StepAncestry  Step = 1
	StepCommunity Step = 2
	StepClass     Step = 3
)

// Step bounds
const (
	FirstStep = StepAncestry
	LastStep  = StepClass
)

// AllSteps returns the steps in order
func AllSteps() []Step {
	return []Step{StepAncestry, StepCommunity, StepClass}
}

// Valid reports whether the step is within [FirstStep, LastStep]
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Name returns the display name of the step
func (s Step) Name() string {
	switch s {
	case StepAncestry:
		return "Ancestry"
	case StepCommunity:
		return "Community"
	case StepClass:
		return "Class"
	default:
		return fmt.Sprintf("Step %d", int(s))
	}
}

// String implements fmt.Stringer
func (s Step) String() string {
	return fmt.Sprintf("%d:%s", int(s), s.Name())
}
