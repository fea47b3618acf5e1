package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/daggerheart-wizard/internal/browse"
	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
	"github.com/KirkDiggler/daggerheart-wizard/internal/orchestrators/heritage"
	"github.com/KirkDiggler/daggerheart-wizard/internal/steps"
)

// mixedState is one run of the mixed ancestry flow on screen
type mixedState struct {
	flow *heritage.Flow

	// picker browses the ancestries of the two pick stages
	picker *steps.Controller
	focus  int

	// side and cursor track the feature stage
	side   heritage.Side
	cursor [2]int

	name textinput.Model
}

func (mx *mixedState) screen() screen {
	switch mx.flow.Stage() {
	case heritage.StagePickFeatures:
		return screenMixedFeatures
	case heritage.StageName:
		return screenMixedName
	default:
		return screenMixedPick
	}
}

// pickSide returns the side chosen by a pick stage
func pickSide(stage heritage.Stage) heritage.Side {
	if stage == heritage.StagePickSecond {
		return heritage.SideSecond
	}
	return heritage.SideFirst
}

func (m *Model) startMixed() (tea.Model, tea.Cmd) {
	flow, err := heritage.New(&heritage.Config{Catalog: m.catalog})
	if err != nil {
		m.fail("start mixed ancestry", err)
		return m, nil
	}

	name := textinput.New()
	name.CharLimit = 40
	name.Width = 40

	m.current().Modal().Close()
	m.mixed = &mixedState{flow: flow, name: name}
	return m, m.enterStage()
}

// enterStage prepares the surface of the flow's current stage
func (m *Model) enterStage() tea.Cmd {
	mx := m.mixed
	mx.focus = 0
	mx.name.Blur()

	stage := mx.flow.Stage()
	switch stage {
	case heritage.StagePickFirst, heritage.StagePickSecond:
		side := pickSide(stage)
		title, subtitle := m.stageHeading(stage)
		picker, err := steps.New(&steps.Config{
			Kind:        daggerheart.KindAncestry,
			Title:       title,
			Subtitle:    subtitle,
			Entities:    mx.flow.Choices(side),
			NextLabel:   stage.NextLabel(),
			BackLabel:   stage.BackLabel(),
			WideColumns: m.wide,
		})
		if err != nil {
			m.fail("show ancestries", err)
			return nil
		}
		mx.picker = picker

		// come back to the card chosen earlier
		if chosen := mx.flow.Ancestry(side); chosen != nil {
			if idx := daggerheart.IndexOf(picker.Filtered(), chosen.ID); idx >= 0 {
				picker.Carousel().JumpTo(idx)
				picker.Pager().JumpTo(idx / browse.PageSize)
				mx.focus = idx % browse.PageSize
			}
		}

	case heritage.StagePickFeatures:
		mx.picker = nil

	case heritage.StageName:
		mx.picker = nil
		mx.name.Placeholder = mx.flow.NamePlaceholder()
		return mx.name.Focus()
	}
	return nil
}

func (m *Model) stageHeading(stage heritage.Stage) (string, string) {
	flow := m.mixed.flow
	switch stage {
	case heritage.StagePickFirst:
		return "Choose Your First Ancestry", "Select the first ancestry in your character's heritage"
	case heritage.StagePickSecond:
		return "Choose Your Second Ancestry", fmt.Sprintf("Select the second ancestry (must be different from %s)", entityName(flow.Ancestry(heritage.SideFirst)))
	case heritage.StagePickFeatures:
		return "Choose One Feature from Each Ancestry", fmt.Sprintf("Select 1 feature from %s and 1 from %s",
			entityName(flow.Ancestry(heritage.SideFirst)), entityName(flow.Ancestry(heritage.SideSecond)))
	default:
		return "Name Your Heritage", "Choose how your character identifies (optional)"
	}
}

func (m *Model) handleMixedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mx := m.mixed

	if mx.flow.Stage() == heritage.StageName {
		switch {
		case msg.Type == tea.KeyEnter:
			return m.completeMixed()
		case key.Matches(msg, m.keys.Escape):
			return m.mixedBack()
		case msg.Type == tea.KeyCtrlC:
			m.confirming = true
			return m, nil
		}

		var cmd tea.Cmd
		mx.name, cmd = mx.name.Update(msg)
		mx.flow.SetName(mx.name.Value())
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.confirming = true
		return m, nil
	case key.Matches(msg, m.keys.Back):
		return m.mixedBack()
	case key.Matches(msg, m.keys.Next):
		if err := mx.flow.Next(); err != nil {
			m.notice = errors.GetMessage(err)
			return m, nil
		}
		return m, m.enterStage()
	}

	if mx.flow.Stage() == heritage.StagePickFeatures {
		m.handleFeatureKey(msg)
	} else {
		m.handlePickKey(msg)
	}
	return m, nil
}

func (m *Model) handlePickKey(msg tea.KeyMsg) {
	mx := m.mixed
	if mx.picker == nil {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		mx.focus = navigate(mx.picker, m.width, mx.focus, browse.KeyLeft)
	case key.Matches(msg, m.keys.Right):
		mx.focus = navigate(mx.picker, m.width, mx.focus, browse.KeyRight)
	case key.Matches(msg, m.keys.Focus):
		mx.focus = cycleFocus(len(mx.picker.Visible(m.width)), mx.focus, msg.Type == tea.KeyShiftTab)
	case key.Matches(msg, m.keys.Jump):
		if mx.picker.JumpTo(m.width, jumpPosition(msg)) {
			mx.focus = 0
		}
	case key.Matches(msg, m.keys.Open, m.keys.Select):
		card, ok := focusedCard(mx.picker, m.width, mx.focus)
		if !ok {
			return
		}
		if err := mx.flow.SelectAncestry(pickSide(mx.flow.Stage()), card.ID); err != nil {
			m.notice = errors.GetMessage(err)
		}
	}
}

func (m *Model) handleFeatureKey(msg tea.KeyMsg) {
	mx := m.mixed
	options := mx.flow.FeatureOptions(mx.side)

	switch {
	case key.Matches(msg, m.keys.Focus):
		mx.side = mx.side.Other()
	case key.Matches(msg, m.keys.Left):
		mx.side = heritage.SideFirst
	case key.Matches(msg, m.keys.Right):
		mx.side = heritage.SideSecond
	case key.Matches(msg, m.keys.Up):
		if mx.cursor[mx.side] > 0 {
			mx.cursor[mx.side]--
		}
	case key.Matches(msg, m.keys.Down):
		if mx.cursor[mx.side] < len(options)-1 {
			mx.cursor[mx.side]++
		}
	case key.Matches(msg, m.keys.Open, m.keys.Select):
		if c := mx.cursor[mx.side]; c < len(options) {
			if err := mx.flow.SelectFeature(mx.side, options[c].Feature.ID); err != nil {
				m.notice = errors.GetMessage(err)
			}
		}
	case key.Matches(msg, m.keys.Clear):
		mx.flow.ClearFeature(mx.side)
	}
}

// mixedBack steps back inside the flow. Backing out of the first stage
// returns to the ancestry step without a selection change.
func (m *Model) mixedBack() (tea.Model, tea.Cmd) {
	if m.mixed.flow.Back() {
		m.mixed = nil
		return m, nil
	}
	return m, m.enterStage()
}

func (m *Model) completeMixed() (tea.Model, tea.Cmd) {
	choice, err := m.mixed.flow.Complete()
	if err != nil {
		m.notice = errors.GetMessage(err)
		return m, nil
	}

	if m.selectAncestry(choice) {
		m.mixed = nil
	}
	return m, nil
}

func entityName(e *daggerheart.Entity) string {
	if e == nil {
		return ""
	}
	return e.Name
}
