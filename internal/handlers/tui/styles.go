package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorGold   = lipgloss.Color("#d4a537")
	colorAmber  = lipgloss.Color("#fbbf24")
	colorPurple = lipgloss.Color("#9333ea")
	colorBlue   = lipgloss.Color("#2563eb")
	colorGreen  = lipgloss.Color("#16a34a")
	colorRed    = lipgloss.Color("#fca5a5")
	colorSlate  = lipgloss.Color("#64748b")
	colorDim    = lipgloss.Color("#334155")
	colorText   = lipgloss.Color("#e2e8f0")
)

// Card dimensions in cells
const (
	cardWidth       = 26
	cardHeight      = 9
	modalWidth      = 60
)

type styles struct {
	title     lipgloss.Style
	subtitle  lipgloss.Style
	heading   lipgloss.Style
	text      lipgloss.Style
	dim       lipgloss.Style
	warning   lipgloss.Style
	notice    lipgloss.Style
	badge     lipgloss.Style
	blocked   lipgloss.Style
	button    lipgloss.Style
	primary   lipgloss.Style
	disabled  lipgloss.Style
	stepDone  lipgloss.Style
	stepNow   lipgloss.Style
	stepLater lipgloss.Style
	dotOn     lipgloss.Style
	dotOff    lipgloss.Style

	card         lipgloss.Style
	cardSelected lipgloss.Style
	cardDisabled lipgloss.Style
	cardMixed    lipgloss.Style
	modal        lipgloss.Style
	panel        lipgloss.Style
}

func defaultStyles() styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDim).
		Width(cardWidth).
		Height(cardHeight).
		Padding(0, 1)

	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(colorAmber),
		subtitle:  lipgloss.NewStyle().Foreground(colorSlate),
		heading:   lipgloss.NewStyle().Bold(true).Foreground(colorAmber),
		text:      lipgloss.NewStyle().Foreground(colorText),
		dim:       lipgloss.NewStyle().Foreground(colorSlate),
		warning:   lipgloss.NewStyle().Foreground(colorAmber),
		notice:    lipgloss.NewStyle().Foreground(colorRed),
		badge:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f172a")).Background(colorGold).Padding(0, 1),
		blocked:   lipgloss.NewStyle().Foreground(colorRed),
		button:    lipgloss.NewStyle().Foreground(colorText).Border(lipgloss.NormalBorder()).BorderForeground(colorSlate).Padding(0, 1),
		primary:   lipgloss.NewStyle().Bold(true).Foreground(colorGold).Border(lipgloss.NormalBorder()).BorderForeground(colorGold).Padding(0, 1),
		disabled:  lipgloss.NewStyle().Foreground(colorDim).Border(lipgloss.NormalBorder()).BorderForeground(colorDim).Padding(0, 1),
		stepDone:  lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
		stepNow:   lipgloss.NewStyle().Bold(true).Foreground(colorGold),
		stepLater: lipgloss.NewStyle().Foreground(colorSlate),
		dotOn:     lipgloss.NewStyle().Foreground(colorGold),
		dotOff:    lipgloss.NewStyle().Foreground(colorDim),

		card:         card,
		cardSelected: card.Border(lipgloss.ThickBorder()).BorderForeground(colorGold),
		cardDisabled: card.BorderForeground(colorDim).Foreground(colorDim),
		cardMixed:    card.Border(lipgloss.DoubleBorder()).BorderForeground(colorPurple),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGold).
			Width(modalWidth).
			Padding(1, 2),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Padding(0, 1),
	}
}
