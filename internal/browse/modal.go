package browse

import (
	"fmt"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
)

// KeyEscape closes the modal
const KeyEscape = "esc"

// Target is the part of the modal that received a click
type Target int

// Click targets
const (
	TargetBackdrop Target = iota
	TargetContent
)

// Modal is the detail overlay for one card
type Modal struct {
	card *daggerheart.Entity
}

// Open shows the card
func (m *Modal) Open(card daggerheart.Entity) {
	m.card = &card
}

// Close hides the modal
func (m *Modal) Close() {
	m.card = nil
}

// IsOpen reports whether a card is shown
func (m *Modal) IsOpen() bool {
	return m.card != nil
}

// Card returns the shown card, or nil
func (m *Modal) Card() *daggerheart.Entity {
	return m.card
}

// ScrollLocked reports whether the page behind the modal must stay put
func (m *Modal) ScrollLocked() bool {
	return m.IsOpen()
}

// HandleKey closes the modal on escape and reports whether the key was consumed
func (m *Modal) HandleKey(key string) bool {
	if key != KeyEscape || !m.IsOpen() {
		return false
	}
	m.Close()
	return true
}

// Click closes the modal when the backdrop is clicked. Clicks on the content
// are ignored.
func (m *Modal) Click(target Target) {
	if target == TargetBackdrop {
		m.Close()
	}
}

// Select returns the shown card and closes the modal in one step
func (m *Modal) Select() (daggerheart.Entity, bool) {
	if m.card == nil {
		return daggerheart.Entity{}, false
	}
	card := *m.card
	m.Close()
	return card, true
}

// Details returns the optional detail lines of the shown card
func (m *Modal) Details() []string {
	if m.card == nil {
		return nil
	}

	var lines []string
	if m.card.Type != "" {
		lines = append(lines, fmt.Sprintf("Type: %s", m.card.Type))
	}
	if m.card.Domain != "" {
		line := fmt.Sprintf("Domain: %s", m.card.Domain)
		if m.card.Level > 0 {
			line += fmt.Sprintf(" | Level: %d", m.card.Level)
		}
		lines = append(lines, line)
	}
	if m.card.Class != "" {
		line := fmt.Sprintf("Class: %s", m.card.Class)
		if m.card.Tier != "" {
			line += fmt.Sprintf(" | Tier: %s", m.card.Tier)
		}
		lines = append(lines, line)
	}
	return lines
}
