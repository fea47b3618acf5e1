// Package tui is the terminal front end of the character wizard. It renders
// the wizard state and turns key presses into wizard service calls.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/daggerheart-wizard/internal/browse"
	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
	"github.com/KirkDiggler/daggerheart-wizard/internal/repositories/catalog"
	"github.com/KirkDiggler/daggerheart-wizard/internal/services/wizard"
	"github.com/KirkDiggler/daggerheart-wizard/internal/steps"
)

type screen int

const (
	screenLoading screen = iota
	screenBrowse
	screenSearch
	screenModal
	screenMixedPick
	screenMixedFeatures
	screenMixedName
	screenClass
	screenConfirm
)

// Outcome is how the program ended
type Outcome int

// Program outcomes
const (
	OutcomeNone Outcome = iota
	OutcomeCompleted
	OutcomeCancelled

	// OutcomeSuspended leaves the stored draft in place for the next run
	OutcomeSuspended
)

// Config holds the dependencies of the wizard model
type Config struct {
	// Context is used for every wizard call; defaults to context.Background
	Context context.Context

	Wizard  wizard.Service
	Catalog catalog.Repository

	// WideColumns defaults to steps.DefaultWideColumns
	WideColumns int
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Wizard == nil {
		vb.RequiredField("Wizard")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

// Model is the bubbletea model of the wizard
type Model struct {
	ctx     context.Context
	svc     wizard.Service
	catalog catalog.Repository
	wide    int

	keys   keyMap
	styles styles
	help   help.Model
	search textinput.Model

	ancestry  *steps.Controller
	community *steps.Controller
	mixed     *mixedState

	state      *wizard.State
	width      int
	height     int
	focus      int
	confirming bool
	notice     string

	outcome Outcome
	result  *daggerheart.CharacterDraft
	err     error
}

var _ tea.Model = (*Model)(nil)

// New creates the wizard model. The wizard is started by Init.
func New(cfg *Config) (*Model, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	wide := cfg.WideColumns
	if wide == 0 {
		wide = steps.DefaultWideColumns
	}

	ancestryCfg := steps.AncestryConfig(cfg.Catalog.List(daggerheart.KindAncestry))
	ancestryCfg.WideColumns = wide
	ancestry, err := steps.New(ancestryCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ancestry step")
	}

	communityCfg := steps.CommunityConfig(cfg.Catalog.List(daggerheart.KindCommunity))
	communityCfg.WideColumns = wide
	community, err := steps.New(communityCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create community step")
	}

	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	search := textinput.New()
	search.Prompt = "🔍 "
	search.CharLimit = 40
	search.Width = 30
	search.Placeholder = ancestry.SearchPlaceholder()

	return &Model{
		ctx:       ctx,
		svc:       cfg.Wizard,
		catalog:   cfg.Catalog,
		wide:      wide,
		keys:      defaultKeyMap(),
		styles:    defaultStyles(),
		help:      help.New(),
		search:    search,
		ancestry:  ancestry,
		community: community,
	}, nil
}

// Outcome returns how the program ended
func (m *Model) Outcome() Outcome { return m.outcome }

// Result returns the completed draft, or nil
func (m *Model) Result() *daggerheart.CharacterDraft { return m.result }

// Err returns the error that stopped the program, if any
func (m *Model) Err() error { return m.err }

type startedMsg struct {
	out *wizard.StartOutput
	err error
}

// Init starts the wizard, restoring any stored draft
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		out, err := m.svc.Start(m.ctx, &wizard.StartInput{})
		return startedMsg{out: out, err: err}
	}
}

// Update handles one message
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.err != nil {
			slog.ErrorContext(m.ctx, "failed to start wizard", "error", msg.err)
			m.err = msg.err
			return m, tea.Quit
		}
		m.state = msg.out.State
		switch {
		case msg.out.Restored:
			m.notice = "Restored your saved draft"
		case msg.out.Discarded:
			m.notice = "Your saved draft could not be read and was discarded"
		}
		return m, m.enterStep()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

// updateInputs forwards non-key messages, such as cursor blinks, to the
// focused text input
func (m *Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.mixed != nil && m.mixed.name.Focused():
		m.mixed.name, cmd = m.mixed.name.Update(msg)
	case m.search.Focused():
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m *Model) screen() screen {
	switch {
	case m.state == nil:
		return screenLoading
	case m.confirming:
		return screenConfirm
	case m.mixed != nil:
		return m.mixed.screen()
	case m.state.CurrentStep == daggerheart.StepClass:
		return screenClass
	case m.search.Focused():
		return screenSearch
	case m.current().Modal().IsOpen():
		return screenModal
	default:
		return screenBrowse
	}
}

// current returns the controller of the current browsing step
func (m *Model) current() *steps.Controller {
	if m.state != nil && m.state.CurrentStep == daggerheart.StepCommunity {
		return m.community
	}
	return m.ancestry
}

func (m *Model) selected() *daggerheart.Entity {
	return m.state.Draft.Selected(m.state.CurrentStep)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == nil {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	}

	m.notice = ""

	switch m.screen() {
	case screenConfirm:
		return m.handleConfirmKey(msg)
	case screenMixedPick, screenMixedFeatures, screenMixedName:
		return m.handleMixedKey(msg)
	case screenSearch:
		return m.handleSearchKey(msg)
	case screenModal:
		return m.handleModalKey(msg)
	case screenClass:
		return m.handleClassKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirming = false

	switch {
	case key.Matches(msg, m.keys.Confirm):
		out, err := m.svc.Cancel(m.ctx, &wizard.CancelInput{Confirmed: true})
		if err != nil {
			m.fail("cancel", err)
			return m, nil
		}
		m.state = out.State
		m.outcome = OutcomeCancelled
		return m, tea.Quit

	case key.Matches(msg, m.keys.Suspend):
		slog.InfoContext(m.ctx, "wizard suspended", "step", m.state.CurrentStep.Name())
		m.outcome = OutcomeSuspended
		return m, tea.Quit

	default:
		out, err := m.svc.Cancel(m.ctx, &wizard.CancelInput{Confirmed: false})
		if err != nil {
			m.fail("cancel", err)
			return m, nil
		}
		m.state = out.State
		return m, nil
	}
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) || msg.Type == tea.KeyEnter {
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.current().SearchTerm() {
		m.current().SetSearch(m.search.Value())
		m.focus = 0
	}
	return m, cmd
}

func (m *Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.current()

	switch {
	case key.Matches(msg, m.keys.Escape):
		ctrl.Modal().HandleKey(browse.KeyEscape)
	case key.Matches(msg, m.keys.Choose):
		card, action := ctrl.SelectFromModal()
		return m.apply(card, action)
	case key.Matches(msg, m.keys.Cancel):
		m.confirming = true
	}
	return m, nil
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.current()

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.confirming = true

	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Left):
		m.focus = navigate(ctrl, m.width, m.focus, browse.KeyLeft)

	case key.Matches(msg, m.keys.Right):
		m.focus = navigate(ctrl, m.width, m.focus, browse.KeyRight)

	case key.Matches(msg, m.keys.Focus):
		m.focus = cycleFocus(len(ctrl.Visible(m.width)), m.focus, msg.Type == tea.KeyShiftTab)

	case key.Matches(msg, m.keys.Jump):
		if ctrl.JumpTo(m.width, jumpPosition(msg)) {
			m.focus = 0
		}

	case key.Matches(msg, m.keys.Open):
		if card, ok := focusedCard(ctrl, m.width, m.focus); ok {
			return m.apply(card, ctrl.Activate(card))
		}

	case key.Matches(msg, m.keys.Select):
		if card, ok := focusedCard(ctrl, m.width, m.focus); ok {
			return m.apply(card, ctrl.Choose(card))
		}

	case key.Matches(msg, m.keys.Clear):
		m.clearSelection()

	case key.Matches(msg, m.keys.Next):
		if !ctrl.CanAdvance(m.selected()) {
			m.notice = "Choose your " + ctrl.Kind().String() + " to continue"
			return m, nil
		}
		m.move(1)

	case key.Matches(msg, m.keys.Back):
		if ctrl.HasBack() {
			m.move(-1)
		}

	case key.Matches(msg, m.keys.Grid):
		ctrl.ToggleGrid()
		m.focus = 0
	}

	return m, nil
}

func (m *Model) handleClassKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.move(-1)
	case key.Matches(msg, m.keys.Complete):
		return m.complete()
	case key.Matches(msg, m.keys.Cancel):
		m.confirming = true
	}
	return m, nil
}

// apply carries out what activating or choosing a card requires
func (m *Model) apply(card daggerheart.Entity, action steps.Action) (tea.Model, tea.Cmd) {
	switch action {
	case steps.ActionStartMixed:
		return m.startMixed()
	case steps.ActionSelect:
		m.choose(card)
	}
	return m, nil
}

func (m *Model) choose(card daggerheart.Entity) {
	switch m.current().Kind() {
	case daggerheart.KindAncestry:
		m.selectAncestry(daggerheart.NewAncestryChoice(card))
	case daggerheart.KindCommunity:
		out, err := m.svc.SelectCommunity(m.ctx, &wizard.SelectCommunityInput{Community: &card})
		if err != nil {
			m.fail("select community", err)
			return
		}
		m.state = out.State
	}
}

func (m *Model) selectAncestry(choice *daggerheart.AncestryChoice) bool {
	out, err := m.svc.SelectAncestry(m.ctx, &wizard.SelectAncestryInput{Ancestry: choice})
	if err != nil {
		m.fail("select ancestry", err)
		return false
	}
	m.state = out.State
	return true
}

func (m *Model) clearSelection() {
	if m.selected() == nil {
		return
	}
	out, err := m.svc.ClearSelection(m.ctx, &wizard.ClearSelectionInput{Step: m.state.CurrentStep})
	if err != nil {
		m.fail("clear selection", err)
		return
	}
	m.state = out.State
}

// move goes one step forward or back and shows the new step fresh
func (m *Model) move(delta int) {
	var (
		state *wizard.State
		err   error
	)
	if delta > 0 {
		var out *wizard.AdvanceOutput
		if out, err = m.svc.Advance(m.ctx, &wizard.AdvanceInput{}); err == nil {
			state = out.State
		}
	} else {
		var out *wizard.RetreatOutput
		if out, err = m.svc.Retreat(m.ctx, &wizard.RetreatInput{}); err == nil {
			state = out.State
		}
	}
	if err != nil {
		m.fail("change step", err)
		return
	}

	m.state = state
	m.enterStep()
}

// enterStep resets the search and surfaces of the step being shown
func (m *Model) enterStep() tea.Cmd {
	m.focus = 0
	m.search.Blur()
	m.search.SetValue("")
	if m.state.CurrentStep == daggerheart.StepClass {
		return nil
	}

	ctrl := m.current()
	ctrl.Reset()
	m.search.Placeholder = ctrl.SearchPlaceholder()
	return nil
}

func (m *Model) complete() (tea.Model, tea.Cmd) {
	out, err := m.svc.Complete(m.ctx, &wizard.CompleteInput{})
	if err != nil {
		m.fail("complete", err)
		return m, nil
	}

	m.result = out.Draft
	m.state = out.State
	m.outcome = OutcomeCompleted
	return m, tea.Quit
}

// fail logs err, shows its message and re-reads the state the service kept
func (m *Model) fail(op string, err error) {
	slog.ErrorContext(m.ctx, "wizard operation failed", "operation", op, "error", err)
	m.notice = errors.GetMessage(err)

	if out, stateErr := m.svc.GetState(m.ctx, &wizard.GetStateInput{}); stateErr == nil {
		m.state = out.State
	}
}

// Surface helpers

// navigate applies an arrow key. The grid has no pages, so arrows move the
// focus instead.
func navigate(ctrl *steps.Controller, width, focus int, dir string) int {
	if ctrl.Layout(width) == steps.LayoutGrid {
		return cycleFocus(len(ctrl.Visible(width)), focus, dir == browse.KeyLeft)
	}
	if ctrl.Navigate(width, dir) {
		return 0
	}
	return focus
}

func cycleFocus(count, focus int, backwards bool) int {
	if count == 0 {
		return 0
	}
	if backwards {
		return (focus - 1 + count) % count
	}
	return (focus + 1) % count
}

// focusedCard returns the focused visible card. A focus past the visible
// cards, as left by a shorter page, falls back to the last one.
func focusedCard(ctrl *steps.Controller, width, focus int) (daggerheart.Entity, bool) {
	visible := ctrl.Visible(width)
	if len(visible) == 0 {
		return daggerheart.Entity{}, false
	}
	return ctrl.Focused(width, min(focus, len(visible)-1))
}

// jumpPosition maps the digit keys 1-9 to zero-based positions
func jumpPosition(msg tea.KeyMsg) int {
	if len(msg.Runes) != 1 {
		return -1
	}
	return int(msg.Runes[0] - '1')
}
