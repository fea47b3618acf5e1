package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding of the wizard. Bindings are enabled per screen
// by bindingsFor so the help line only lists what works.
type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Focus    key.Binding
	Jump     key.Binding
	Open     key.Binding
	Select   key.Binding
	Choose   key.Binding
	Clear    key.Binding
	Next     key.Binding
	Back     key.Binding
	Grid     key.Binding
	Search   key.Binding
	Escape   key.Binding
	Complete key.Binding
	Cancel   key.Binding
	Confirm  key.Binding
	Suspend  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next card"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "focus"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", " ", "s"),
			key.WithHelp("enter/s", "select"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next step"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back"),
		),
		Grid: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grid"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete for now"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "cancel and exit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes, cancel"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save and exit"),
		),
	}
}

// bindingsFor returns the bindings listed in the help line for a screen
func (k keyMap) bindingsFor(s screen) []key.Binding {
	switch s {
	case screenBrowse:
		return []key.Binding{k.Left, k.Right, k.Focus, k.Jump, k.Open, k.Select, k.Clear, k.Next, k.Back, k.Grid, k.Search, k.Cancel}
	case screenModal:
		return []key.Binding{k.Choose, k.Escape}
	case screenSearch:
		return []key.Binding{k.Escape}
	case screenMixedPick:
		return []key.Binding{k.Left, k.Right, k.Focus, k.Jump, k.Select, k.Next, k.Back, k.Cancel}
	case screenMixedFeatures:
		return []key.Binding{k.Up, k.Down, k.Focus, k.Select, k.Clear, k.Next, k.Back, k.Cancel}
	case screenMixedName:
		return []key.Binding{k.Open, k.Escape}
	case screenClass:
		return []key.Binding{k.Back, k.Complete, k.Cancel}
	case screenConfirm:
		return []key.Binding{k.Confirm, k.Suspend}
	default:
		return []key.Binding{k.Cancel}
	}
}

// helpKeys adapts one screen's bindings to help.KeyMap
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding { return h }

func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
