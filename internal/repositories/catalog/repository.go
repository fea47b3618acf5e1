// Package catalog serves the static game content the wizard browses:
// ancestries, communities and ancestry features.
package catalog

import (
	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
)

// Catalog document names
const (
	AncestriesFile       = "ancestries.json"
	CommunitiesFile      = "communities.json"
	AncestryFeaturesFile = "ancestry-features.json"
)

// Repository gives read-only access to catalog content. Lists are returned
// in document order and callers own the returned slices.
type Repository interface {
	// List returns every entity of the kind. KindFeature lists all ancestry
	// features in ancestry order.
	List(kind daggerheart.Kind) []daggerheart.Entity

	// Get returns one entity by ID
	// Returns errors.NotFound if the kind has no entity with that ID
	Get(kind daggerheart.Kind, id string) (daggerheart.Entity, error)

	// Features returns the ordered features of an ancestry, or nil
	Features(ancestryID string) []daggerheart.Entity

	// Standard returns the ancestries without the mixed ancestry placeholder
	Standard() []daggerheart.Entity

	// AssetExists reports whether a card image can be displayed
	AssetExists(image string) bool
}
