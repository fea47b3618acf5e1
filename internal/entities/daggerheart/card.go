package daggerheart

// CardVariant is what a browsing surface renders for one catalog entity:
// either a NormalCard or the MixedPlaceholderCard.
type CardVariant interface {
	// CardEntity returns the catalog entity behind the card
	CardEntity() Entity
	isCardVariant()
}

// NormalCard is a regular catalog entity
type NormalCard struct {
	Entity Entity
}

// CardEntity implements CardVariant
func (c NormalCard) CardEntity() Entity { return c.Entity }

func (NormalCard) isCardVariant() {}

// MixedPlaceholderCard is the "Mixed Ancestry" entry that starts the mixed
// ancestry flow instead of opening details.
type MixedPlaceholderCard struct {
	Entity Entity
}

// CardEntity implements CardVariant
func (c MixedPlaceholderCard) CardEntity() Entity { return c.Entity }

func (MixedPlaceholderCard) isCardVariant() {}

// VariantOf picks the card variant for a catalog entity
func VariantOf(e Entity) CardVariant {
	if e.IsMixed {
		return MixedPlaceholderCard{Entity: e}
	}
	return NormalCard{Entity: e}
}
