package testutils

import (
	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
)

// Entity fixtures matching the embedded catalog
var (
	Elf = daggerheart.Entity{
		ID:    "elf",
		Name:  "Elf",
		Image: "ancestries/elf.webp",
		Type:  "ancestry",
	}
	Dwarf = daggerheart.Entity{
		ID:    "dwarf",
		Name:  "Dwarf",
		Image: "ancestries/dwarf.webp",
		Type:  "ancestry",
	}
	Highborne = daggerheart.Entity{
		ID:    "highborne",
		Name:  "Highborne",
		Image: "communities/highborne.webp",
		Type:  "community",
	}
	Seaborne = daggerheart.Entity{
		ID:    "seaborne",
		Name:  "Seaborne",
		Image: "communities/seaborne.webp",
		Type:  "community",
	}
	ElfQuickReactions = daggerheart.Entity{
		ID:   "elf-quick-reactions",
		Name: "Quick Reactions",
		Type: "feature",
	}
	DwarfIncreasedFortitude = daggerheart.Entity{
		ID:   "dwarf-increased-fortitude",
		Name: "Increased Fortitude",
		Type: "feature",
	}
)

// Draft progress stages for testing
const (
	StageEmpty             = "empty"
	StageAncestryComplete  = "ancestry_complete"
	StageCommunityComplete = "community_complete"
	StageMixedAncestry     = "mixed_ancestry"
)

// CreateTestMixedAncestry returns an Elf-Dwarf mixed ancestry
func CreateTestMixedAncestry() *daggerheart.AncestryChoice {
	return &daggerheart.AncestryChoice{
		Entity: daggerheart.Entity{
			ID:      daggerheart.MixedAncestryID,
			Name:    "Elf-Dwarf",
			Type:    "ancestry",
			IsMixed: true,
		},
		MixedHeritage: &daggerheart.MixedHeritage{
			Ancestry1: Elf,
			Ancestry2: Dwarf,
			Feature1:  ElfQuickReactions,
			Feature2:  DwarfIncreasedFortitude,
		},
	}
}

// CreateTestDraftRecord creates a draft record at various stages of completion
func CreateTestDraftRecord(stage string) *daggerheart.DraftRecord {
	record := daggerheart.NewDraftRecord()

	switch stage {
	case StageAncestryComplete:
		record.CharacterData.Ancestry = daggerheart.NewAncestryChoice(Elf)
		record.CurrentStep = daggerheart.StepCommunity

	case StageCommunityComplete:
		record.CharacterData.Ancestry = daggerheart.NewAncestryChoice(Elf)
		record.CharacterData.Community = Highborne.Clone()
		record.CurrentStep = daggerheart.StepClass

	case StageMixedAncestry:
		record.CharacterData.Ancestry = CreateTestMixedAncestry()
		record.CurrentStep = daggerheart.StepCommunity
	}

	return record
}
