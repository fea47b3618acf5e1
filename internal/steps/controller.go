// Package steps implements the browsing step shared by the ancestry and
// community screens. One Controller is configured per step.
package steps

import (
	"fmt"

	"github.com/KirkDiggler/daggerheart-wizard/internal/browse"
	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
)

// DefaultWideColumns is the terminal width at which the three card pager
// replaces the single card carousel
const DefaultWideColumns = 100

// Layout is the browsing surface shown for the step
type Layout int

// Browsing surfaces
const (
	LayoutCarousel Layout = iota
	LayoutPager
	LayoutGrid
)

// String returns the layout name
func (l Layout) String() string {
	switch l {
	case LayoutCarousel:
		return "carousel"
	case LayoutPager:
		return "pager"
	case LayoutGrid:
		return "grid"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// Action tells the caller what activating or choosing a card requires
type Action int

// Card actions
const (
	ActionNone Action = iota
	ActionOpenDetail
	ActionSelect
	ActionStartMixed
)

// Config configures one browsing step
type Config struct {
	Kind      daggerheart.Kind
	Title     string
	Subtitle  string
	Entities  []daggerheart.Entity
	NextLabel string

	// BackLabel is empty for the first step
	BackLabel string

	// WideColumns defaults to DefaultWideColumns
	WideColumns int
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("kind", string(c.Kind), []string{
		string(daggerheart.KindAncestry),
		string(daggerheart.KindCommunity),
	}, vb)
	errors.ValidateRequired("title", c.Title, vb)
	errors.ValidateRequired("nextLabel", c.NextLabel, vb)
	if c.WideColumns < 0 {
		vb.Field("wideColumns", "must not be negative")
	}

	return vb.Build()
}

// Controller holds the ephemeral state of one step: the search term and
// the position of each browsing surface.
type Controller struct {
	cfg      Config
	search   string
	filtered []daggerheart.Entity
	grid     bool
	carousel *browse.Carousel
	pager    *browse.Pager
	modal    *browse.Modal
}

// New creates a step controller
func New(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid step config")
	}

	c := &Controller{
		cfg:   *cfg,
		modal: &browse.Modal{},
	}
	if c.cfg.WideColumns == 0 {
		c.cfg.WideColumns = DefaultWideColumns
	}
	c.refilter()

	return c, nil
}

// Kind returns the kind of entity the step selects
func (c *Controller) Kind() daggerheart.Kind { return c.cfg.Kind }

// Title returns the step heading
func (c *Controller) Title() string { return c.cfg.Title }

// Subtitle returns the line under the heading
func (c *Controller) Subtitle() string { return c.cfg.Subtitle }

// NextLabel returns the caption of the next control
func (c *Controller) NextLabel() string { return c.cfg.NextLabel }

// BackLabel returns the caption of the back control, or ""
func (c *Controller) BackLabel() string { return c.cfg.BackLabel }

// HasBack reports whether the step offers a back control
func (c *Controller) HasBack() bool { return c.cfg.BackLabel != "" }

// SearchTerm returns the current search text
func (c *Controller) SearchTerm() string { return c.search }

// SearchPlaceholder returns the hint shown in the empty search box
func (c *Controller) SearchPlaceholder() string {
	return fmt.Sprintf("Search %s...", c.cfg.Kind.Plural())
}

// SetSearch changes the search term. Surfaces return to their first card.
func (c *Controller) SetSearch(term string) {
	if term == c.search {
		return
	}
	c.search = term
	c.refilter()
}

func (c *Controller) refilter() {
	c.filtered = browse.Filter(c.cfg.Entities, c.search)
	c.carousel = browse.NewCarousel(len(c.filtered))
	c.pager = browse.NewPager(len(c.filtered))
}

// Reset clears the search and every surface position, as when the step is
// shown again.
func (c *Controller) Reset() {
	c.search = ""
	c.modal.Close()
	c.refilter()
}

// Filtered returns the entities matching the search term
func (c *Controller) Filtered() []daggerheart.Entity {
	out := make([]daggerheart.Entity, len(c.filtered))
	copy(out, c.filtered)
	return out
}

// NoResults returns the empty state message when nothing matches
func (c *Controller) NoResults() (string, bool) {
	if len(c.filtered) > 0 {
		return "", false
	}
	return fmt.Sprintf("No %s found", c.cfg.Kind.Plural()), true
}

// CanAdvance reports whether the next control is enabled
func (c *Controller) CanAdvance(selected *daggerheart.Entity) bool {
	return selected != nil
}

// ToggleGrid switches between the grid and the width based surface
func (c *Controller) ToggleGrid() {
	c.grid = !c.grid
}

// Layout returns the single surface shown at the given terminal width
func (c *Controller) Layout(width int) Layout {
	switch {
	case c.grid:
		return LayoutGrid
	case width < c.cfg.WideColumns:
		return LayoutCarousel
	default:
		return LayoutPager
	}
}

// Carousel returns the single card surface
func (c *Controller) Carousel() *browse.Carousel { return c.carousel }

// Pager returns the three card surface
func (c *Controller) Pager() *browse.Pager { return c.pager }

// Modal returns the detail overlay
func (c *Controller) Modal() *browse.Modal { return c.modal }

// Grid returns the grid over the filtered entities
func (c *Controller) Grid(columns int) browse.Grid {
	return browse.Grid{Cards: c.Filtered(), Columns: columns}
}

// Visible returns the cards shown by the surface at the given width. Pager
// placeholders are dropped.
func (c *Controller) Visible(width int) []daggerheart.Entity {
	switch c.Layout(width) {
	case LayoutCarousel:
		if len(c.filtered) == 0 {
			return nil
		}
		return []daggerheart.Entity{c.filtered[c.carousel.Index()]}
	case LayoutPager:
		var cards []daggerheart.Entity
		for _, slot := range c.pager.Slots() {
			if slot.Visible {
				cards = append(cards, c.filtered[slot.Index])
			}
		}
		return cards
	default:
		return c.Filtered()
	}
}

// Focused returns the visible card at offset, counting from the left of the
// surface.
func (c *Controller) Focused(width, offset int) (daggerheart.Entity, bool) {
	visible := c.Visible(width)
	if offset < 0 || offset >= len(visible) {
		return daggerheart.Entity{}, false
	}
	return visible[offset], true
}

// Navigate applies an arrow key to the surface at the given width
func (c *Controller) Navigate(width int, key string) bool {
	switch c.Layout(width) {
	case LayoutCarousel:
		return c.carousel.HandleKey(key)
	case LayoutPager:
		return c.pager.HandleKey(key)
	default:
		return false
	}
}

// JumpTo moves the surface to a dot position: a card for the carousel, a
// page for the pager.
func (c *Controller) JumpTo(width, position int) bool {
	switch c.Layout(width) {
	case LayoutCarousel:
		return c.carousel.JumpTo(position)
	case LayoutPager:
		return c.pager.JumpTo(position)
	default:
		return false
	}
}

// Activate handles a card click. Normal cards open the detail modal and the
// mixed ancestry card starts the mixed ancestry flow.
func (c *Controller) Activate(card daggerheart.Entity) Action {
	switch v := daggerheart.VariantOf(card).(type) {
	case daggerheart.MixedPlaceholderCard:
		return ActionStartMixed
	case daggerheart.NormalCard:
		c.modal.Open(v.Entity)
		return ActionOpenDetail
	default:
		return ActionNone
	}
}

// Choose handles a direct select of a card, from a surface or the modal
func (c *Controller) Choose(card daggerheart.Entity) Action {
	switch daggerheart.VariantOf(card).(type) {
	case daggerheart.MixedPlaceholderCard:
		return ActionStartMixed
	default:
		return ActionSelect
	}
}

// SelectFromModal commits the modal card and closes the modal
func (c *Controller) SelectFromModal() (daggerheart.Entity, Action) {
	card, ok := c.modal.Select()
	if !ok {
		return daggerheart.Entity{}, ActionNone
	}
	return card, c.Choose(card)
}
