package heritage

import "fmt"

// Stage is a step of the mixed ancestry flow
type Stage int

// Flow stages
const (
	StagePickFirst Stage = iota + 1
	StagePickSecond
	StagePickFeatures
	StageName
)

// StageCount is the number of stages in the flow
const StageCount = 4

// Stages returns the stages in order
func Stages() []Stage {
	return []Stage{StagePickFirst, StagePickSecond, StagePickFeatures, StageName}
}

// Label returns the short progress label
func (s Stage) Label() string {
	switch s {
	case StagePickFirst:
		return "Ancestry 1"
	case StagePickSecond:
		return "Ancestry 2"
	case StagePickFeatures:
		return "Features"
	case StageName:
		return "Name"
	default:
		return fmt.Sprintf("Stage %d", int(s))
	}
}

// Caption returns the "Step n of 4" caption text
func (s Stage) Caption() string {
	switch s {
	case StagePickFirst:
		return "Choose First Ancestry"
	case StagePickSecond:
		return "Choose Second Ancestry"
	case StagePickFeatures:
		return "Choose Features"
	case StageName:
		return "Name Your Heritage"
	default:
		return s.Label()
	}
}

// NextLabel returns the caption of the forward control
func (s Stage) NextLabel() string {
	switch s {
	case StagePickFirst:
		return "Next: Second Ancestry →"
	case StagePickSecond:
		return "Next: Choose Features →"
	case StagePickFeatures:
		return "Next: Name Heritage →"
	default:
		return "Complete Mixed Ancestry ✓"
	}
}

// BackLabel returns the caption of the backward control
func (s Stage) BackLabel() string {
	if s == StagePickFirst {
		return "Cancel"
	}
	return "← Back"
}

// Side picks one of the two ancestries
type Side int

// Ancestry sides
const (
	SideFirst Side = iota
	SideSecond
)

// Other returns the opposite side
func (s Side) Other() Side {
	if s == SideFirst {
		return SideSecond
	}
	return SideFirst
}
