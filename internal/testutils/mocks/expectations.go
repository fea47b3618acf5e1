// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
	draftrepo "github.com/KirkDiggler/daggerheart-wizard/internal/repositories/character_draft"
	draftrepomock "github.com/KirkDiggler/daggerheart-wizard/internal/repositories/character_draft/mock"
)

// ExpectNoStoredDraft makes the repository report an empty store
func ExpectNoStoredDraft(ctx context.Context, mockRepo *draftrepomock.MockRepository) {
	mockRepo.EXPECT().
		Get(ctx, draftrepo.GetInput{}).
		Return(nil, errors.NotFound("no draft stored"))
}

// ExpectStoredDraft makes the repository return the record
func ExpectStoredDraft(ctx context.Context, mockRepo *draftrepomock.MockRepository, record *daggerheart.DraftRecord) {
	mockRepo.EXPECT().
		Get(ctx, draftrepo.GetInput{}).
		Return(&draftrepo.GetOutput{Record: record}, nil)
}

// ExpectDraftSaved expects one save of a record at the given step and
// returns the captured record for further assertions
func ExpectDraftSaved(ctx context.Context, mockRepo *draftrepomock.MockRepository, step daggerheart.Step) *daggerheart.DraftRecord {
	captured := &daggerheart.DraftRecord{}
	mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input draftrepo.SaveInput) (*draftrepo.SaveOutput, error) {
			if input.Record.CurrentStep != step {
				return nil, errors.Newf(errors.CodeInternal, "expected save at step %d, got %d", step, input.Record.CurrentStep)
			}
			*captured = *input.Record
			return &draftrepo.SaveOutput{}, nil
		})
	return captured
}

// ExpectDraftDeleted expects the stored record to be removed
func ExpectDraftDeleted(ctx context.Context, mockRepo *draftrepomock.MockRepository) {
	mockRepo.EXPECT().
		Delete(ctx, draftrepo.DeleteInput{}).
		Return(&draftrepo.DeleteOutput{Existed: true}, nil)
}
