// Package heritage runs the mixed ancestry flow nested in the ancestry step:
// pick two ancestries, one feature from each, then an optional name.
package heritage

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
	"github.com/KirkDiggler/daggerheart-wizard/internal/repositories/catalog"
)

// Config holds the dependencies of a Flow
type Config struct {
	Catalog catalog.Repository
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("catalog")
	}

	return vb.Build()
}

// FeatureOption is one feature button of the feature stage
type FeatureOption struct {
	Feature  daggerheart.Entity
	Position int
	Selected bool

	// Disabled is set when the other side's chosen feature has the same position
	Disabled bool
}

// Flow is the state of one run of the mixed ancestry flow
type Flow struct {
	catalog   catalog.Repository
	stage     Stage
	ancestries [2]*daggerheart.Entity
	features  [2]*daggerheart.Entity
	name      string
}

// New starts a flow at the first stage
func New(cfg *Config) (*Flow, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid heritage config")
	}

	return &Flow{
		catalog: cfg.Catalog,
		stage:   StagePickFirst,
	}, nil
}

// Stage returns the current stage
func (f *Flow) Stage() Stage {
	return f.stage
}

// Ancestry returns the chosen ancestry of a side, or nil
func (f *Flow) Ancestry(side Side) *daggerheart.Entity {
	return f.ancestries[side]
}

// Feature returns the chosen feature of a side, or nil
func (f *Flow) Feature(side Side) *daggerheart.Entity {
	return f.features[side]
}

// FirstChoices returns the ancestries available as the first ancestry
func (f *Flow) FirstChoices() []daggerheart.Entity {
	return f.catalog.Standard()
}

// SecondChoices returns the ancestries available as the second ancestry:
// every standard ancestry except the first.
func (f *Flow) SecondChoices() []daggerheart.Entity {
	all := f.catalog.Standard()
	first := f.ancestries[SideFirst]
	if first == nil {
		return all
	}

	choices := make([]daggerheart.Entity, 0, len(all))
	for _, a := range all {
		if a.ID != first.ID {
			choices = append(choices, a)
		}
	}
	return choices
}

// Choices returns the ancestries offered for a side
func (f *Flow) Choices(side Side) []daggerheart.Entity {
	if side == SideFirst {
		return f.FirstChoices()
	}
	return f.SecondChoices()
}

// SelectAncestry picks the ancestry of a side. Changing the first ancestry
// drops its feature and drops the second ancestry when they now match.
// Changing the second ancestry drops its feature.
func (f *Flow) SelectAncestry(side Side, id string) error {
	choices := f.Choices(side)
	idx := daggerheart.IndexOf(choices, id)
	if idx < 0 {
		return errors.InvalidArgumentf("ancestry %s is not available here", id).
			WithMeta("side", int(side))
	}

	chosen := choices[idx]
	if daggerheart.SameSelection(f.ancestries[side], &chosen) {
		return nil
	}

	f.ancestries[side] = &chosen
	f.features[side] = nil

	if side == SideFirst && daggerheart.SameSelection(f.ancestries[SideSecond], &chosen) {
		f.ancestries[SideSecond] = nil
		f.features[SideSecond] = nil
	}

	return nil
}

// featureList returns the catalog features of the side's ancestry
func (f *Flow) featureList(side Side) []daggerheart.Entity {
	ancestry := f.ancestries[side]
	if ancestry == nil {
		return nil
	}
	return f.catalog.Features(ancestry.ID)
}

// position returns the index of the side's chosen feature, or -1
func (f *Flow) position(side Side) int {
	feature := f.features[side]
	if feature == nil {
		return -1
	}
	return daggerheart.IndexOf(f.featureList(side), feature.ID)
}

// FeatureOptions lists the features of a side with their state
func (f *Flow) FeatureOptions(side Side) []FeatureOption {
	list := f.featureList(side)
	blocked := f.position(side.Other())

	options := make([]FeatureOption, len(list))
	for i, feature := range list {
		options[i] = FeatureOption{
			Feature:  feature,
			Position: i,
			Selected: daggerheart.SameSelection(f.features[side], &feature),
			Disabled: blocked >= 0 && blocked == i,
		}
	}
	return options
}

// SelectFeature picks the feature of a side. A feature at the same position
// as the other side's feature is rejected.
func (f *Flow) SelectFeature(side Side, id string) error {
	for _, option := range f.FeatureOptions(side) {
		if option.Feature.ID != id {
			continue
		}
		if option.Disabled {
			return errors.FailedPreconditionf("feature %s shares position %d with the other ancestry's feature", id, option.Position+1)
		}
		feature := option.Feature
		f.features[side] = &feature
		return nil
	}

	return errors.InvalidArgumentf("feature %s does not belong to the chosen ancestry", id).
		WithMeta("side", int(side))
}

// ClearFeature drops the chosen feature of a side
func (f *Flow) ClearFeature(side Side) {
	f.features[side] = nil
}

// SetName sets the optional heritage name
func (f *Flow) SetName(name string) {
	f.name = name
}

// HeritageName returns the name as typed
func (f *Flow) HeritageName() string {
	return f.name
}

// DefaultName returns the name used when no heritage name is given
func (f *Flow) DefaultName() string {
	first, second := f.ancestries[SideFirst], f.ancestries[SideSecond]
	if first == nil || second == nil {
		return ""
	}
	return daggerheart.DefaultHeritageName(*first, *second)
}

// NamePlaceholder returns the hint shown in the empty name input
func (f *Flow) NamePlaceholder() string {
	first, second := f.ancestries[SideFirst], f.ancestries[SideSecond]
	if first == nil || second == nil {
		return `e.g., "toothling"`
	}
	return fmt.Sprintf(`e.g., "%s-%s" or "toothling"`, strings.ToLower(first.Name), strings.ToLower(second.Name))
}

// CanAdvance reports whether the current stage has its required choices
func (f *Flow) CanAdvance() bool {
	switch f.stage {
	case StagePickFirst:
		return f.ancestries[SideFirst] != nil
	case StagePickSecond:
		return f.ancestries[SideSecond] != nil
	case StagePickFeatures:
		return f.features[SideFirst] != nil && f.features[SideSecond] != nil
	case StageName:
		return true
	default:
		return false
	}
}

// Next moves to the following stage. The name stage ends with Complete.
func (f *Flow) Next() error {
	if f.stage == StageName {
		return errors.FailedPrecondition("last stage, complete the flow instead")
	}
	if !f.CanAdvance() {
		return errors.FailedPreconditionf("%s is incomplete", f.stage.Caption())
	}
	f.stage++
	return nil
}

// Back moves to the previous stage keeping every choice. It returns true
// when called on the first stage, which abandons the flow.
func (f *Flow) Back() bool {
	if f.stage == StagePickFirst {
		slog.Debug("mixed ancestry flow cancelled")
		return true
	}
	f.stage--
	return false
}

// Complete builds the mixed ancestry from the choices made
func (f *Flow) Complete() (*daggerheart.AncestryChoice, error) {
	if f.stage != StageName {
		return nil, errors.FailedPreconditionf("cannot complete at %s", f.stage.Caption())
	}

	first, second := f.ancestries[SideFirst], f.ancestries[SideSecond]
	feature1, feature2 := f.features[SideFirst], f.features[SideSecond]
	if first == nil || second == nil || feature1 == nil || feature2 == nil {
		return nil, errors.FailedPrecondition("mixed ancestry choices are incomplete")
	}

	choice, err := daggerheart.NewMixedAncestry(daggerheart.MixedAncestryInput{
		Ancestry1:  *first,
		Ancestry2:  *second,
		Features1:  f.featureList(SideFirst),
		Features2:  f.featureList(SideSecond),
		Feature1ID: feature1.ID,
		Feature2ID: feature2.ID,
		CustomName: f.name,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build mixed ancestry")
	}

	slog.Info("mixed ancestry built",
		"name", choice.Name,
		"ancestry1", first.ID,
		"ancestry2", second.ID)

	return choice, nil
}
