// Package daggerheart holds the character creation data model: static
// catalog entities, the mixed ancestry composite, the character draft and the
// persisted draft record.
package daggerheart

// Kind names a family of catalog entities
type Kind string

// Catalog kinds
const (
	KindAncestry  Kind = "ancestry"
	KindCommunity Kind = "community"
	KindFeature   Kind = "feature"
)

// String returns the kind name
func (k Kind) String() string {
	return string(k)
}

// Plural returns the lower-case plural used in prompts ("ancestries")
func (k Kind) Plural() string {
	switch k {
	case KindAncestry:
		return "ancestries"
	case KindCommunity:
		return "communities"
	case KindFeature:
		return "features"
	default:
		return string(k) + "s"
	}
}

// Entity is a selectable piece of static game content: an ancestry, a
// community or an ancestry feature. Entities are never created at runtime.
type Entity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Domain      string `json:"domain,omitempty"`
	Level       int    `json:"level,omitempty"`
	Class       string `json:"class,omitempty"`
	Tier        string `json:"tier,omitempty"`

	// IsMixed marks the "Mixed Ancestry" catalog entry and completed mixed
	// ancestry selections.
	IsMixed bool `json:"isMixed,omitempty"`
}

// Clone returns a copy of the entity, or nil for a nil receiver
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

// SameSelection reports whether a and b are the same selection. Entities are
// compared by ID, and a nil selection matches nothing.
func SameSelection(a, b *Entity) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID == b.ID
}

// IndexOf returns the position of the entity with the given ID, or -1
func IndexOf(entities []Entity, id string) int {
	for i := range entities {
		if entities[i].ID == id {
			return i
		}
	}
	return -1
}
