package daggerheart

import (
	"encoding/json"

	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
)

// DefaultDraftKey is the storage key of the single persisted draft
const DefaultDraftKey = "daggerheart-wizard-draft"

// DraftRecord is the persisted form of the wizard state
type DraftRecord struct {
	CharacterData *CharacterDraft `json:"characterData"`
	CurrentStep   Step            `json:"currentStep"`
}

// NewDraftRecord returns the record for a fresh wizard
func NewDraftRecord() *DraftRecord {
	return &DraftRecord{
		CharacterData: NewCharacterDraft(),
		CurrentStep:   FirstStep,
	}
}

// EncodeDraftRecord serializes a record
func EncodeDraftRecord(record *DraftRecord) ([]byte, error) {
	if record == nil {
		return nil, errors.InvalidArgument("draft record is required")
	}

	normalized := &DraftRecord{
		CharacterData: record.CharacterData.Clone(),
		CurrentStep:   record.CurrentStep,
	}
	normalize(normalized)

	data, err := json.Marshal(normalized)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal draft record")
	}
	return data, nil
}

// DecodeDraftRecord parses a stored record. Missing fields take their fresh
// values. Undecodable bytes and steps outside the wizard return DataLoss.
func DecodeDraftRecord(data []byte) (*DraftRecord, error) {
	var record DraftRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode draft record")
	}

	normalize(&record)
	if !record.CurrentStep.Valid() {
		return nil, errors.DataLoss("draft record has an invalid step").
			WithMeta("current_step", int(record.CurrentStep))
	}

	return &record, nil
}

func normalize(record *DraftRecord) {
	if record.CharacterData == nil {
		record.CharacterData = NewCharacterDraft()
	}
	if record.CharacterData.Domains == nil {
		record.CharacterData.Domains = []string{}
	}
	if record.CurrentStep == 0 {
		record.CurrentStep = FirstStep
	}
}
