package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
)

func TestRenderCard(t *testing.T) {
	s := defaultStyles()
	elf := daggerheart.Entity{ID: "elf", Name: "Elf", Image: "ancestries/elf.webp", Type: "ancestry"}
	mixed := daggerheart.Entity{ID: daggerheart.MixedAncestryID, Name: "Mixed Ancestry", IsMixed: true}

	testCases := []struct {
		name     string
		card     daggerheart.Entity
		opts     cardOptions
		contains []string
		excludes []string
	}{
		{
			name:     "image shown when the asset exists",
			card:     elf,
			opts:     cardOptions{hasImage: true},
			contains: []string{"[elf.webp]", "Elf"},
			excludes: []string{placeholderGlyph, selectedBadge},
		},
		{
			name:     "placeholder when the asset is missing",
			card:     elf,
			contains: []string{placeholderGlyph, "Elf"},
			excludes: []string{"[elf.webp]"},
		},
		{
			name:     "selected badge",
			card:     elf,
			opts:     cardOptions{selected: true},
			contains: []string{selectedBadge},
		},
		{
			name:     "disabled card is locked",
			card:     elf,
			opts:     cardOptions{disabled: true},
			contains: []string{"Locked"},
		},
		{
			name:     "mixed placeholder never shows an image",
			card:     mixed,
			opts:     cardOptions{hasImage: true},
			contains: []string{mixedGlyph, "Mixed Ancestry"},
			excludes: []string{placeholderGlyph},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := renderCard(s, tc.card, tc.opts)
			for _, want := range tc.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tc.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestProgressBar(t *testing.T) {
	s := defaultStyles()

	assert.Equal(t, progressWidth, lipgloss.Width(progressBar(s, 1, 3)))
	assert.Equal(t, progressWidth, lipgloss.Width(progressBar(s, 3, 3)))
}

func TestCycleFocus(t *testing.T) {
	assert.Equal(t, 1, cycleFocus(3, 0, false))
	assert.Equal(t, 0, cycleFocus(3, 2, false))
	assert.Equal(t, 2, cycleFocus(3, 0, true))
	assert.Equal(t, 0, cycleFocus(0, 5, false))
}
