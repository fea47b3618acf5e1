package daggerheart

// CharacterDraft is the in-progress character assembled by the wizard.
// Class and Subclass are reserved for the class step and stay nil for now.
type CharacterDraft struct {
	Ancestry  *AncestryChoice `json:"ancestry"`
	Community *Entity         `json:"community"`
	Class     *Entity         `json:"class"`
	Subclass  *Entity         `json:"subclass"`
	Domains   []string        `json:"domains"`
}

// NewCharacterDraft returns an empty draft
func NewCharacterDraft() *CharacterDraft {
	return &CharacterDraft{
		Domains: []string{},
	}
}

// Clone returns a deep copy of the draft
func (d *CharacterDraft) Clone() *CharacterDraft {
	if d == nil {
		return nil
	}

	domains := make([]string, len(d.Domains))
	copy(domains, d.Domains)

	return &CharacterDraft{
		Ancestry:  d.Ancestry.Clone(),
		Community: d.Community.Clone(),
		Class:     d.Class.Clone(),
		Subclass:  d.Subclass.Clone(),
		Domains:   domains,
	}
}

// IsEmpty reports whether nothing has been chosen yet
func (d *CharacterDraft) IsEmpty() bool {
	return d == nil || (d.Ancestry == nil && d.Community == nil && d.Class == nil && d.Subclass == nil && len(d.Domains) == 0)
}

// Selected returns the current selection for a step, or nil. The class step
// reports the class slot.
func (d *CharacterDraft) Selected(step Step) *Entity {
	if d == nil {
		return nil
	}
	switch step {
	case StepAncestry:
		return d.Ancestry.Selection()
	case StepCommunity:
		return d.Community
	case StepClass:
		return d.Class
	default:
		return nil
	}
}

// completed reports whether the step's slot is filled
func (d *CharacterDraft) completed(step Step) bool {
	return d.Selected(step) != nil
}

// StepStatus describes one step of the progress header
type StepStatus struct {
	Number    Step
	Name      string
	Current   bool
	Completed bool
}

// Steps returns the progress header entries for the given current step
func (d *CharacterDraft) Steps(current Step) []StepStatus {
	statuses := make([]StepStatus, 0, int(LastStep))
	for _, step := range AllSteps() {
		statuses = append(statuses, StepStatus{
			Number:    step,
			Name:      step.Name(),
			Current:   step == current,
			Completed: d.completed(step),
		})
	}
	return statuses
}
