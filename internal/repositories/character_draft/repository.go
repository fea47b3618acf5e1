// Package characterdraft defines the interface for wizard draft persistence
package characterdraft

//go:generate mockgen -destination=mock/mock_repository.go -package=characterdraftmock github.com/KirkDiggler/daggerheart-wizard/internal/repositories/character_draft Repository

import (
	"context"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
)

// Repository persists the single wizard draft record under one fixed key.
// Every save replaces the whole record.
type Repository interface {
	// Get reads the stored record
	// Returns errors.NotFound if no record is stored
	// Returns errors.DataLoss if the stored record cannot be decoded
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the stored record
	// Returns errors.InvalidArgument for a nil record
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the stored record. Deleting a missing record succeeds.
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for reading the draft record
type GetInput struct{}

// GetOutput defines the output for reading the draft record
type GetOutput struct {
	Record *daggerheart.DraftRecord
}

// SaveInput defines the input for saving the draft record
type SaveInput struct {
	Record *daggerheart.DraftRecord
}

// SaveOutput defines the output for saving the draft record
type SaveOutput struct{}

// DeleteInput defines the input for deleting the draft record
type DeleteInput struct{}

// DeleteOutput defines the output for deleting the draft record
type DeleteOutput struct {
	// Existed reports whether a record was removed
	Existed bool
}

const (
	// Error messages
	errRecordNil = "draft record cannot be nil"
	errKeyEmpty  = "draft key cannot be empty"
)

// encode validates and serializes a record for storage
func encode(input SaveInput) ([]byte, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	return daggerheart.EncodeDraftRecord(input.Record)
}

// decode parses a stored record
func decode(data []byte) (*GetOutput, error) {
	record, err := daggerheart.DecodeDraftRecord(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: record}, nil
}
