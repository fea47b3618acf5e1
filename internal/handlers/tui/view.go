package tui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/daggerheart-wizard/internal/browse"
	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/orchestrators/heritage"
	"github.com/KirkDiggler/daggerheart-wizard/internal/services/wizard"
	"github.com/KirkDiggler/daggerheart-wizard/internal/steps"
)

const progressWidth = 30

var heritageExamples = []string{
	`• Hyphenated: "goblin-orc" or "elf-human"`,
	`• Singular: "goblin" (with orc heritage)`,
	`• Custom: "toothling", "shadowkin", "sunborn"`,
}

// View renders the current screen
func (m *Model) View() string {
	if m.state == nil {
		return m.styles.dim.Render("Loading...")
	}

	var sections []string
	if m.mixed != nil {
		sections = append(sections, m.viewMixedHeader(), m.viewMixed())
	} else {
		sections = append(sections, m.viewHeader(), m.viewStep())
	}

	if m.confirming {
		sections = append(sections, m.viewConfirm())
	} else if m.mixed == nil {
		sections = append(sections, m.styles.dim.Render("Cancel and exit (q)"))
	}
	if m.notice != "" {
		sections = append(sections, m.styles.notice.Render(m.notice))
	}
	sections = append(sections, m.help.View(helpKeys(m.keys.bindingsFor(m.screen()))))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Header and progress

func (m *Model) viewHeader() string {
	current := int(m.state.CurrentStep)
	total := int(daggerheart.LastStep)

	markers := make([]string, 0, len(m.state.Steps))
	for _, status := range m.state.Steps {
		markers = append(markers, m.stepMarker(status))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("Character Creation"),
		m.styles.subtitle.Render(fmt.Sprintf("Step %d of %d", current, total)),
		progressBar(m.styles, current, total),
		strings.Join(markers, "   "),
		"",
	)
}

func (m *Model) stepMarker(status daggerheart.StepStatus) string {
	label := fmt.Sprintf("%d", int(status.Number))
	if status.Completed {
		label = "✓"
	}
	text := fmt.Sprintf("(%s) %s", label, status.Name)

	switch {
	case status.Current:
		return m.styles.stepNow.Render(text)
	case status.Completed:
		return m.styles.stepDone.Render(text)
	default:
		return m.styles.stepLater.Render(text)
	}
}

// progressBar fills (current-1)/(total-1) of the bar
func progressBar(s styles, current, total int) string {
	filled := 0
	if total > 1 {
		filled = (current - 1) * progressWidth / (total - 1)
	}
	filled = max(0, min(filled, progressWidth))
	return s.dotOn.Render(strings.Repeat("━", filled)) + s.dotOff.Render(strings.Repeat("━", progressWidth-filled))
}

func (m *Model) viewConfirm() string {
	return m.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.warning.Render(wizard.CancelPrompt),
		"",
		m.styles.text.Render("[y] Yes, cancel   [any key] Keep editing   [s] Save and exit"),
	))
}

// Step screens

func (m *Model) viewStep() string {
	if m.state.CurrentStep == daggerheart.StepClass {
		return m.viewClass()
	}

	ctrl := m.current()
	selected := m.selected()

	body := []string{
		m.styles.heading.Render(ctrl.Title()),
		m.styles.subtitle.Render(ctrl.Subtitle()),
		"",
		m.search.View(),
		"",
	}

	if ctrl.Modal().IsOpen() {
		body = append(body, m.viewModal(ctrl.Modal(), selected))
	} else {
		body = append(body, m.viewSurface(ctrl, m.focus, selected))
	}

	var buttons []string
	if ctrl.HasBack() {
		buttons = append(buttons, renderButton(m.styles, ctrl.BackLabel(), false, true))
	}
	buttons = append(buttons, renderButton(m.styles, ctrl.NextLabel(), true, ctrl.CanAdvance(selected)))
	body = append(body, "", renderRow(buttons))

	return lipgloss.JoinVertical(lipgloss.Left, body...)
}

func (m *Model) viewClass() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.heading.Render("Class Selection"),
		m.styles.subtitle.Render("Coming soon..."),
		"",
		renderRow([]string{
			renderButton(m.styles, "← Back", false, true),
			renderButton(m.styles, "Complete for now", true, true),
		}),
	)
}

// viewSurface renders the browsing surface picked by the terminal width
func (m *Model) viewSurface(ctrl *steps.Controller, focus int, selected *daggerheart.Entity) string {
	if msg, empty := ctrl.NoResults(); empty {
		return m.styles.dim.Render(msg)
	}

	visible := ctrl.Visible(m.width)
	focus = min(focus, len(visible)-1)
	tile := func(i int, card daggerheart.Entity) string {
		return renderCard(m.styles, card, cardOptions{
			selected: browse.IsSelected(card, selected),
			focused:  i == focus,
			hasImage: card.Image != "" && m.catalog.AssetExists(card.Image),
		})
	}

	switch ctrl.Layout(m.width) {
	case steps.LayoutCarousel:
		carousel := ctrl.Carousel()
		return lipgloss.JoinVertical(lipgloss.Center,
			renderRow([]string{"‹", tile(0, visible[0]), "›"}),
			renderDots(m.styles, carousel.Len(), carousel.Index()),
		)

	case steps.LayoutPager:
		pager := ctrl.Pager()
		tiles := make([]string, 0, browse.PageSize)
		for i, card := range visible {
			tiles = append(tiles, tile(i, card))
		}
		arrow := m.styles.text
		if !pager.ControlsEnabled() {
			arrow = m.styles.dim
		}
		first, last, total := pager.Range()
		lines := []string{
			renderRow(append(append([]string{arrow.Render("‹")}, tiles...), arrow.Render("›"))),
		}
		if pager.ShowDots() {
			lines = append(lines, renderDots(m.styles, pager.TotalPages(), pager.Page()))
		}
		lines = append(lines, m.styles.dim.Render(fmt.Sprintf("Showing %d - %d of %d", first, last, total)))
		return lipgloss.JoinVertical(lipgloss.Center, lines...)

	default:
		grid := ctrl.Grid(m.gridColumns())
		var rows []string
		offset := 0
		for _, row := range grid.Rows() {
			tiles := make([]string, 0, len(row))
			for _, card := range row {
				tiles = append(tiles, tile(offset, card))
				offset++
			}
			rows = append(rows, renderRow(tiles))
		}
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}
}

func (m *Model) gridColumns() int {
	if m.width <= 0 {
		return browse.DefaultGridColumns
	}
	return max(1, m.width/(cardWidth+5))
}

func (m *Model) viewModal(modal *browse.Modal, selected *daggerheart.Entity) string {
	card := modal.Card()

	var lines []string
	if browse.IsSelected(*card, selected) {
		lines = append(lines, m.styles.badge.Render(selectedBadge))
	}
	if card.Image != "" && m.catalog.AssetExists(card.Image) {
		lines = append(lines, m.styles.dim.Render("["+path.Base(card.Image)+"]"))
	} else {
		lines = append(lines, placeholderGlyph)
	}
	lines = append(lines, m.styles.title.Render(card.Name))
	if card.Description != "" {
		lines = append(lines, "", m.styles.text.Render(card.Description))
	}
	if details := modal.Details(); len(details) > 0 {
		lines = append(lines, "")
		for _, d := range details {
			lines = append(lines, m.styles.dim.Render(d))
		}
	}
	lines = append(lines, "", renderRow([]string{
		renderButton(m.styles, "Select (enter)", true, true),
		renderButton(m.styles, "Close (esc)", false, true),
	}))

	return m.styles.modal.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Mixed ancestry screens

func (m *Model) viewMixedHeader() string {
	stage := m.mixed.flow.Stage()

	markers := make([]string, 0, heritage.StageCount)
	for _, s := range heritage.Stages() {
		label := fmt.Sprintf("(%d) %s", int(s), s.Label())
		switch {
		case s < stage:
			markers = append(markers, m.styles.stepDone.Render(fmt.Sprintf("(✓) %s", s.Label())))
		case s == stage:
			markers = append(markers, m.styles.stepNow.Render(label))
		default:
			markers = append(markers, m.styles.stepLater.Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("Mixed Ancestry Creation"),
		m.styles.subtitle.Render(fmt.Sprintf("Step %d of %d: %s", int(stage), heritage.StageCount, stage.Caption())),
		progressBar(m.styles, int(stage), heritage.StageCount),
		strings.Join(markers, "   "),
		"",
	)
}

func (m *Model) viewMixed() string {
	mx := m.mixed
	stage := mx.flow.Stage()
	title, subtitle := m.stageHeading(stage)

	body := []string{m.styles.heading.Render(title), m.styles.subtitle.Render(subtitle), ""}

	switch stage {
	case heritage.StagePickFirst, heritage.StagePickSecond:
		if mx.picker != nil {
			body = append(body, m.viewSurface(mx.picker, mx.focus, mx.flow.Ancestry(pickSide(stage))))
		}
	case heritage.StagePickFeatures:
		body = append(body, m.viewFeatures())
	case heritage.StageName:
		body = append(body, m.viewName())
	}

	body = append(body, "", renderRow([]string{
		renderButton(m.styles, stage.BackLabel(), false, true),
		renderButton(m.styles, stage.NextLabel(), true, mx.flow.CanAdvance()),
	}))

	return lipgloss.JoinVertical(lipgloss.Left, body...)
}

func (m *Model) viewFeatures() string {
	mx := m.mixed
	flow := mx.flow

	panels := make([]string, 0, 2)
	for _, side := range []heritage.Side{heritage.SideFirst, heritage.SideSecond} {
		lines := []string{m.styles.heading.Render(fmt.Sprintf("%d  %s Features", int(side)+1, entityName(flow.Ancestry(side)))), ""}
		for i, option := range flow.FeatureOptions(side) {
			lines = append(lines, m.featureLine(option, side == mx.side && i == mx.cursor[side]))
		}
		panel := m.styles.panel
		if side == heritage.SideFirst {
			panel = panel.BorderForeground(colorPurple)
		}
		if side == mx.side {
			panel = panel.BorderForeground(colorGold)
		}
		panels = append(panels, panel.Width(modalWidth/2+10).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	out := []string{
		m.styles.warning.Render("⚠️ You cannot choose features at the same position (both first or both second)"),
		"",
		renderRow(panels),
	}

	var chosen []string
	for _, side := range []heritage.Side{heritage.SideFirst, heritage.SideSecond} {
		if f := flow.Feature(side); f != nil {
			chosen = append(chosen, fmt.Sprintf("✓ %s (from %s)", f.Name, entityName(flow.Ancestry(side))))
		}
	}
	if len(chosen) > 0 {
		out = append(out, "", m.styles.heading.Render("Selected Features:"))
		for _, c := range chosen {
			out = append(out, m.styles.text.Render(c))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func (m *Model) featureLine(option heritage.FeatureOption, focused bool) string {
	cursor := "  "
	if focused {
		cursor = "> "
	}
	mark := "○"
	if option.Selected {
		mark = "●"
	}

	name := m.styles.heading.Render(option.Feature.Name)
	desc := m.styles.text.Render(option.Feature.Description)
	if option.Disabled {
		name = m.styles.dim.Render(option.Feature.Name) + " " + m.styles.blocked.Render("🔒 Blocked")
		desc = m.styles.dim.Render(option.Feature.Description)
	}

	return lipgloss.JoinVertical(lipgloss.Left, cursor+mark+" "+name, "    "+desc)
}

func (m *Model) viewName() string {
	mx := m.mixed
	flow := mx.flow
	first, second := flow.Ancestry(heritage.SideFirst), flow.Ancestry(heritage.SideSecond)
	feature1, feature2 := flow.Feature(heritage.SideFirst), flow.Feature(heritage.SideSecond)

	summary := m.styles.panel.BorderForeground(colorGold).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.heading.Render("Your Mixed Ancestry:"),
		m.styles.dim.Render("Ancestries:"),
		m.styles.text.Render(fmt.Sprintf("%s + %s", entityName(first), entityName(second))),
		m.styles.dim.Render("Features:"),
		m.styles.text.Render(fmt.Sprintf("• %s (from %s)", entityName(feature1), entityName(first))),
		m.styles.text.Render(fmt.Sprintf("• %s (from %s)", entityName(feature2), entityName(second))),
	))

	examples := append([]string{m.styles.dim.Render("Examples:")}, heritageExamples...)

	return lipgloss.JoinVertical(lipgloss.Left,
		summary,
		"",
		m.styles.text.Render("Heritage Name (optional)"),
		mx.name.View(),
		m.styles.dim.Render("Leave blank to use: "+flow.DefaultName()),
		"",
		m.styles.dim.Render(strings.Join(examples, "\n")),
	)
}
