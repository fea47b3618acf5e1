// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
)

// CharacterDraftBuilder provides a fluent interface for building test drafts
// and draft records
type CharacterDraftBuilder struct {
	draft *daggerheart.CharacterDraft
	step  daggerheart.Step
}

// NewCharacterDraftBuilder creates a new builder with an empty draft at the first step
func NewCharacterDraftBuilder() *CharacterDraftBuilder {
	return &CharacterDraftBuilder{
		draft: daggerheart.NewCharacterDraft(),
		step:  daggerheart.FirstStep,
	}
}

// WithAncestry sets a plain catalog ancestry
func (b *CharacterDraftBuilder) WithAncestry(ancestry daggerheart.Entity) *CharacterDraftBuilder {
	b.draft.Ancestry = daggerheart.NewAncestryChoice(ancestry)
	return b
}

// WithAncestryChoice sets the ancestry slot directly, for mixed ancestries
func (b *CharacterDraftBuilder) WithAncestryChoice(choice *daggerheart.AncestryChoice) *CharacterDraftBuilder {
	b.draft.Ancestry = choice.Clone()
	return b
}

// WithCommunity sets the community
func (b *CharacterDraftBuilder) WithCommunity(community daggerheart.Entity) *CharacterDraftBuilder {
	b.draft.Community = community.Clone()
	return b
}

// AtStep sets the current step of the built record
func (b *CharacterDraftBuilder) AtStep(step daggerheart.Step) *CharacterDraftBuilder {
	b.step = step
	return b
}

// Build returns a copy of the draft
func (b *CharacterDraftBuilder) Build() *daggerheart.CharacterDraft {
	return b.draft.Clone()
}

// BuildRecord returns the persisted record for the draft and step
func (b *CharacterDraftBuilder) BuildRecord() *daggerheart.DraftRecord {
	return &daggerheart.DraftRecord{
		CharacterData: b.draft.Clone(),
		CurrentStep:   b.step,
	}
}
