package browse

import (
	"strings"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
)

// Filter returns the entities whose name contains term, ignoring case.
// An empty term returns a copy of the full list.
func Filter(entities []daggerheart.Entity, term string) []daggerheart.Entity {
	needle := strings.ToLower(term)
	filtered := make([]daggerheart.Entity, 0, len(entities))
	for _, e := range entities {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// IsSelected reports whether card is the current selection
func IsSelected(card daggerheart.Entity, selected *daggerheart.Entity) bool {
	return daggerheart.SameSelection(&card, selected)
}
