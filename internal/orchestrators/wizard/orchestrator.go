// Package wizard implements the character wizard orchestrator
package wizard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
	draftrepo "github.com/KirkDiggler/daggerheart-wizard/internal/repositories/character_draft"
	"github.com/KirkDiggler/daggerheart-wizard/internal/services/wizard"
)

// CompleteFunc receives the final draft when the wizard completes
type CompleteFunc func(draft *daggerheart.CharacterDraft)

// CancelFunc is called after a confirmed cancel
type CancelFunc func()

// Config holds the dependencies for the wizard orchestrator
type Config struct {
	DraftRepo draftrepo.Repository

	// OnComplete and OnCancel are optional
	OnComplete CompleteFunc
	OnCancel   CancelFunc
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}

	return vb.Build()
}

// Orchestrator owns the character draft and the current step. Every change
// is persisted as a full replacement of the stored record.
type Orchestrator struct {
	draftRepo  draftrepo.Repository
	onComplete CompleteFunc
	onCancel   CancelFunc

	mu      sync.Mutex
	started bool
	draft   *daggerheart.CharacterDraft
	step    daggerheart.Step
}

// New creates a new wizard orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		draftRepo:  cfg.DraftRepo,
		onComplete: cfg.OnComplete,
		onCancel:   cfg.OnCancel,
		draft:      daggerheart.NewCharacterDraft(),
		step:       daggerheart.FirstStep,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ wizard.Service = (*Orchestrator)(nil)

// Lifecycle methods

// Start restores the stored draft. A missing record starts fresh. A record
// that cannot be read is logged and dropped, and the wizard starts fresh.
func (o *Orchestrator) Start(ctx context.Context, _ *wizard.StartInput) (*wizard.StartOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.reset()
	o.started = true

	out, err := o.draftRepo.Get(ctx, draftrepo.GetInput{})
	switch {
	case err == nil:
		o.draft = out.Record.CharacterData.Clone()
		o.step = out.Record.CurrentStep
		slog.InfoContext(ctx, "restored character draft",
			"step", o.step.Name(),
			"has_ancestry", o.draft.Ancestry != nil,
			"has_community", o.draft.Community != nil)
		return &wizard.StartOutput{State: o.state(), Restored: true}, nil

	case errors.IsNotFound(err):
		slog.DebugContext(ctx, "no stored draft, starting fresh")
		return &wizard.StartOutput{State: o.state()}, nil

	case errors.IsDataLoss(err):
		slog.WarnContext(ctx, "discarding unreadable draft", "error", err)
		return &wizard.StartOutput{State: o.state(), Discarded: true}, nil

	default:
		return nil, errors.Wrap(err, "failed to restore draft")
	}
}

// GetState returns a snapshot of the wizard
func (o *Orchestrator) GetState(_ context.Context, _ *wizard.GetStateInput) (*wizard.GetStateOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &wizard.GetStateOutput{State: o.state()}, nil
}

// Selection methods

// SelectAncestry replaces the ancestry, plain or mixed
func (o *Orchestrator) SelectAncestry(ctx context.Context, input *wizard.SelectAncestryInput) (*wizard.SelectAncestryOutput, error) {
	if input == nil || input.Ancestry == nil {
		return nil, errors.InvalidArgument("ancestry is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ancestry.id", input.Ancestry.ID, vb)
	if input.Ancestry.ID == daggerheart.MixedAncestryID && !input.Ancestry.IsMixedHeritage() {
		vb.Field("ancestry", "mixed ancestry must be built by the mixed ancestry flow")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireStarted(); err != nil {
		return nil, err
	}

	o.draft.Ancestry = input.Ancestry.Clone()
	slog.DebugContext(ctx, "ancestry selected",
		"ancestry", input.Ancestry.ID,
		"mixed", input.Ancestry.IsMixedHeritage())

	if err := o.persist(ctx); err != nil {
		return nil, err
	}

	return &wizard.SelectAncestryOutput{State: o.state()}, nil
}

// SelectCommunity replaces the community
func (o *Orchestrator) SelectCommunity(ctx context.Context, input *wizard.SelectCommunityInput) (*wizard.SelectCommunityOutput, error) {
	if input == nil || input.Community == nil {
		return nil, errors.InvalidArgument("community is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("community.id", input.Community.ID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireStarted(); err != nil {
		return nil, err
	}

	o.draft.Community = input.Community.Clone()
	slog.DebugContext(ctx, "community selected", "community", input.Community.ID)

	if err := o.persist(ctx); err != nil {
		return nil, err
	}

	return &wizard.SelectCommunityOutput{State: o.state()}, nil
}

// ClearSelection empties the slot of a step
func (o *Orchestrator) ClearSelection(ctx context.Context, input *wizard.ClearSelectionInput) (*wizard.ClearSelectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireStarted(); err != nil {
		return nil, err
	}

	switch input.Step {
	case daggerheart.StepAncestry:
		o.draft.Ancestry = nil
	case daggerheart.StepCommunity:
		o.draft.Community = nil
	default:
		return nil, errors.InvalidArgumentf("step %d has no selection to clear", int(input.Step))
	}

	if err := o.persist(ctx); err != nil {
		return nil, err
	}

	return &wizard.ClearSelectionOutput{State: o.state()}, nil
}

// Navigation methods

// Advance moves to the next step. Whether the current step has a selection
// is not checked here.
func (o *Orchestrator) Advance(ctx context.Context, _ *wizard.AdvanceInput) (*wizard.AdvanceOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.move(ctx, 1); err != nil {
		return nil, err
	}

	return &wizard.AdvanceOutput{State: o.state()}, nil
}

// Retreat moves to the previous step
func (o *Orchestrator) Retreat(ctx context.Context, _ *wizard.RetreatInput) (*wizard.RetreatOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.move(ctx, -1); err != nil {
		return nil, err
	}

	return &wizard.RetreatOutput{State: o.state()}, nil
}

func (o *Orchestrator) move(ctx context.Context, delta int) error {
	if err := o.requireStarted(); err != nil {
		return err
	}

	next := o.step + daggerheart.Step(delta)
	if !next.Valid() {
		return errors.OutOfRangef("cannot move from step %d to step %d", int(o.step), int(next)).
			WithMeta("current_step", int(o.step))
	}

	o.step = next
	slog.DebugContext(ctx, "step changed", "step", o.step.Name())

	return o.persist(ctx)
}

// Completion methods

// Complete hands the draft to the completion callback, erases the stored
// record and starts over with an empty draft.
func (o *Orchestrator) Complete(ctx context.Context, _ *wizard.CompleteInput) (*wizard.CompleteOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireStarted(); err != nil {
		return nil, err
	}

	final := o.draft.Clone()
	if o.onComplete != nil {
		o.onComplete(final.Clone())
	}

	slog.InfoContext(ctx, "character draft completed",
		"ancestry", entityID(final.Ancestry.Selection()),
		"community", entityID(final.Community))

	// the draft has been delivered, so start over even if the erase failed
	err := o.erase(ctx)
	o.reset()
	if err != nil {
		return nil, err
	}

	return &wizard.CompleteOutput{Draft: final, State: o.state()}, nil
}

// Cancel abandons the wizard once the user confirmed CancelPrompt. An
// unconfirmed cancel changes nothing.
func (o *Orchestrator) Cancel(ctx context.Context, input *wizard.CancelInput) (*wizard.CancelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireStarted(); err != nil {
		return nil, err
	}

	if !input.Confirmed {
		return &wizard.CancelOutput{State: o.state()}, nil
	}

	if err := o.erase(ctx); err != nil {
		return nil, err
	}
	o.reset()

	if o.onCancel != nil {
		o.onCancel()
	}
	slog.InfoContext(ctx, "character wizard cancelled")

	return &wizard.CancelOutput{Cancelled: true, State: o.state()}, nil
}

// Internal helpers

func (o *Orchestrator) requireStarted() error {
	if !o.started {
		return errors.FailedPrecondition("wizard has not been started")
	}
	return nil
}

func (o *Orchestrator) reset() {
	o.draft = daggerheart.NewCharacterDraft()
	o.step = daggerheart.FirstStep
}

// persist saves the current state. The in-memory state is kept when the
// save fails.
func (o *Orchestrator) persist(ctx context.Context) error {
	_, err := o.draftRepo.Save(ctx, draftrepo.SaveInput{
		Record: &daggerheart.DraftRecord{
			CharacterData: o.draft.Clone(),
			CurrentStep:   o.step,
		},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to persist draft", "step", o.step.Name(), "error", err)
		return errors.Wrap(err, "failed to persist draft")
	}
	return nil
}

func (o *Orchestrator) erase(ctx context.Context) error {
	if _, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{}); err != nil {
		slog.ErrorContext(ctx, "failed to delete draft", "error", err)
		return errors.Wrap(err, "failed to delete draft")
	}
	return nil
}

func (o *Orchestrator) state() *wizard.State {
	return &wizard.State{
		Draft:       o.draft.Clone(),
		CurrentStep: o.step,
		Steps:       o.draft.Steps(o.step),
	}
}

func entityID(e *daggerheart.Entity) string {
	if e == nil {
		return ""
	}
	return e.ID
}
