// Package wizard defines the interface for character wizard operations
package wizard

//go:generate mockgen -destination=mock/mock_service.go -package=wizardmock github.com/KirkDiggler/daggerheart-wizard/internal/services/wizard Service

import (
	"context"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
)

// CancelPrompt is the confirmation shown before a cancel is carried out
const CancelPrompt = "Are you sure you want to cancel? Your progress will be lost."

// Service defines the interface for character wizard operations. The
// implementation owns the draft and its step; callers only ever see copies.
type Service interface {
	// Lifecycle
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// Selections
	SelectAncestry(ctx context.Context, input *SelectAncestryInput) (*SelectAncestryOutput, error)
	SelectCommunity(ctx context.Context, input *SelectCommunityInput) (*SelectCommunityOutput, error)
	ClearSelection(ctx context.Context, input *ClearSelectionInput) (*ClearSelectionOutput, error)

	// Navigation
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)
	Retreat(ctx context.Context, input *RetreatInput) (*RetreatOutput, error)

	// Completion
	Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error)
	Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error)
}

// State is a snapshot of the wizard
type State struct {
	Draft       *daggerheart.CharacterDraft
	CurrentStep daggerheart.Step
	Steps       []daggerheart.StepStatus
}

// Lifecycle types

// StartInput defines the request for starting the wizard
type StartInput struct{}

// StartOutput defines the response for starting the wizard
type StartOutput struct {
	State *State

	// Restored is set when a stored draft was picked up
	Restored bool

	// Discarded is set when a stored draft could not be read and was dropped
	Discarded bool
}

// GetStateInput defines the request for reading the wizard state
type GetStateInput struct{}

// GetStateOutput defines the response for reading the wizard state
type GetStateOutput struct {
	State *State
}

// Selection types

// SelectAncestryInput defines the request for choosing an ancestry
type SelectAncestryInput struct {
	Ancestry *daggerheart.AncestryChoice
}

// SelectAncestryOutput defines the response for choosing an ancestry
type SelectAncestryOutput struct {
	State *State
}

// SelectCommunityInput defines the request for choosing a community
type SelectCommunityInput struct {
	Community *daggerheart.Entity
}

// SelectCommunityOutput defines the response for choosing a community
type SelectCommunityOutput struct {
	State *State
}

// ClearSelectionInput defines the request for clearing a step's selection
type ClearSelectionInput struct {
	Step daggerheart.Step
}

// ClearSelectionOutput defines the response for clearing a step's selection
type ClearSelectionOutput struct {
	State *State
}

// Navigation types

// AdvanceInput defines the request for moving to the next step
type AdvanceInput struct{}

// AdvanceOutput defines the response for moving to the next step
type AdvanceOutput struct {
	State *State
}

// RetreatInput defines the request for moving to the previous step
type RetreatInput struct{}

// RetreatOutput defines the response for moving to the previous step
type RetreatOutput struct {
	State *State
}

// Completion types

// CompleteInput defines the request for finishing the wizard
type CompleteInput struct{}

// CompleteOutput defines the response for finishing the wizard
type CompleteOutput struct {
	// Draft is the final draft handed to the completion callback
	Draft *daggerheart.CharacterDraft
	State *State
}

// CancelInput defines the request for abandoning the wizard
type CancelInput struct {
	// Confirmed carries the user's answer to CancelPrompt
	Confirmed bool
}

// CancelOutput defines the response for abandoning the wizard
type CancelOutput struct {
	Cancelled bool
	State     *State
}
