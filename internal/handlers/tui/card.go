package tui

import (
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
)

const (
	selectedBadge    = "✓ Selected"
	lockedBadge      = "🔒 Locked"
	placeholderGlyph = "🎴"
	mixedGlyph       = "✨"
	mixedSubtitle    = "Choose traits from two ancestries"
)

type cardOptions struct {
	selected bool
	focused  bool
	disabled bool

	// hasImage is false when the image is unset or its asset is missing
	hasImage bool
}

// renderCard draws one tile. The mixed ancestry placeholder gets its own
// look and never shows an image.
func renderCard(s styles, card daggerheart.Entity, opts cardOptions) string {
	var lines []string
	if opts.selected {
		lines = append(lines, s.badge.Render(selectedBadge))
	} else {
		lines = append(lines, "")
	}

	style := s.card
	switch v := daggerheart.VariantOf(card).(type) {
	case daggerheart.MixedPlaceholderCard:
		style = s.cardMixed
		lines = append(lines,
			mixedGlyph+" "+s.heading.Render(v.Entity.Name),
			"",
			s.text.Render(mixedSubtitle),
		)
	case daggerheart.NormalCard:
		e := v.Entity
		if opts.hasImage {
			lines = append(lines, s.dim.Render("["+path.Base(e.Image)+"]"))
		} else {
			lines = append(lines, placeholderGlyph)
		}
		lines = append(lines, s.heading.Render(e.Name))
		if e.Description != "" {
			lines = append(lines, "", s.text.Render(e.Description))
		}
	}

	switch {
	case opts.disabled:
		style = s.cardDisabled
		lines = append(lines, "", lockedBadge)
	case opts.selected:
		style = s.cardSelected
	case opts.focused:
		style = style.BorderForeground(colorText)
	}

	return style.MaxHeight(cardHeight + 2).Render(strings.Join(lines, "\n"))
}

// renderRow joins tiles side by side
func renderRow(tiles []string) string {
	if len(tiles) == 0 {
		return ""
	}
	spaced := make([]string, 0, len(tiles)*2)
	for i, t := range tiles {
		if i > 0 {
			spaced = append(spaced, " ")
		}
		spaced = append(spaced, t)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

// renderDots draws the position indicator, one dot per card or page
func renderDots(s styles, count, current int) string {
	dots := make([]string, count)
	for i := range dots {
		if i == current {
			dots[i] = s.dotOn.Render("●")
		} else {
			dots[i] = s.dotOff.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// renderButton draws a control, greyed out when disabled
func renderButton(s styles, label string, primary, enabled bool) string {
	switch {
	case !enabled:
		return s.disabled.Render(label)
	case primary:
		return s.primary.Render(label)
	default:
		return s.button.Render(label)
	}
}
