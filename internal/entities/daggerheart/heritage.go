package daggerheart

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
)

// MixedAncestryID is the ID shared by the catalog placeholder and every
// completed mixed ancestry.
const MixedAncestryID = "mixed-ancestry"

// MixedHeritage is the composite part of a mixed ancestry: two base
// ancestries and one feature taken from each.
type MixedHeritage struct {
	Ancestry1  Entity `json:"ancestry1"`
	Ancestry2  Entity `json:"ancestry2"`
	Feature1   Entity `json:"feature1"`
	Feature2   Entity `json:"feature2"`
	CustomName string `json:"customName"`
}

// AncestryChoice is the ancestry slot of a draft. It is either a plain
// catalog entity (MixedHeritage nil) or a completed mixed ancestry. Both
// encode to the same flat JSON object.
type AncestryChoice struct {
	Entity
	*MixedHeritage
}

// NewAncestryChoice wraps a plain catalog ancestry
func NewAncestryChoice(e Entity) *AncestryChoice {
	return &AncestryChoice{Entity: e}
}

// IsMixedHeritage reports whether the choice was built by the mixed ancestry flow
func (c *AncestryChoice) IsMixedHeritage() bool {
	return c != nil && c.MixedHeritage != nil
}

// Selection returns the entity used for selection equality
func (c *AncestryChoice) Selection() *Entity {
	if c == nil {
		return nil
	}
	return &c.Entity
}

// Clone returns a deep copy of the choice
func (c *AncestryChoice) Clone() *AncestryChoice {
	if c == nil {
		return nil
	}
	clone := &AncestryChoice{Entity: c.Entity}
	if c.MixedHeritage != nil {
		heritage := *c.MixedHeritage
		clone.MixedHeritage = &heritage
	}
	return clone
}

// MixedAncestryInput carries the choices made in the mixed ancestry flow.
// Features1 and Features2 are the full feature lists of each ancestry, in
// catalog order, so feature positions can be checked.
type MixedAncestryInput struct {
	Ancestry1  Entity
	Ancestry2  Entity
	Features1  []Entity
	Features2  []Entity
	Feature1ID string
	Feature2ID string
	CustomName string
}

// DefaultHeritageName is the name used when no custom name is given
func DefaultHeritageName(ancestry1, ancestry2 Entity) string {
	return fmt.Sprintf("%s-%s", ancestry1.Name, ancestry2.Name)
}

// NewMixedAncestry validates the input and builds the mixed ancestry choice.
// The two ancestries must differ, and the two features must sit at different
// positions of their ancestry's feature list.
func NewMixedAncestry(input MixedAncestryInput) (*AncestryChoice, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ancestry1", input.Ancestry1.ID, vb)
	errors.ValidateRequired("ancestry2", input.Ancestry2.ID, vb)
	errors.ValidateRequired("feature1", input.Feature1ID, vb)
	errors.ValidateRequired("feature2", input.Feature2ID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if input.Ancestry1.ID == input.Ancestry2.ID {
		return nil, errors.InvalidArgumentf("mixed ancestry needs two different ancestries, got %s twice", input.Ancestry1.ID)
	}

	pos1 := IndexOf(input.Features1, input.Feature1ID)
	if pos1 < 0 {
		return nil, errors.InvalidArgumentf("feature %s does not belong to %s", input.Feature1ID, input.Ancestry1.Name)
	}
	pos2 := IndexOf(input.Features2, input.Feature2ID)
	if pos2 < 0 {
		return nil, errors.InvalidArgumentf("feature %s does not belong to %s", input.Feature2ID, input.Ancestry2.Name)
	}
	if pos1 == pos2 {
		return nil, errors.FailedPreconditionf("features %s and %s share position %d", input.Feature1ID, input.Feature2ID, pos1+1)
	}

	customName := strings.TrimSpace(input.CustomName)
	name := customName
	if name == "" {
		name = DefaultHeritageName(input.Ancestry1, input.Ancestry2)
	}

	return &AncestryChoice{
		Entity: Entity{
			ID:      MixedAncestryID,
			Name:    name,
			Type:    string(KindAncestry),
			IsMixed: true,
		},
		MixedHeritage: &MixedHeritage{
			Ancestry1:  input.Ancestry1,
			Ancestry2:  input.Ancestry2,
			Feature1:   input.Features1[pos1],
			Feature2:   input.Features2[pos2],
			CustomName: customName,
		},
	}, nil
}
