package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the board. Directional keys move focus
// when idle and move the drag cursor while a card is grabbed.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	Grab   key.Binding // Grab the focused card, or drop the grabbed one.
	Cancel key.Binding

	// Status and assignee shortcuts; same path as a drop.
	MoveOpen       key.Binding
	MoveInProgress key.Binding
	MoveClosed     key.Binding
	AssignMe       key.Binding
	Unassign       key.Binding

	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var DefaultKeyMap = KeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Grab: key.NewBinding(
		key.WithKeys(" ", "space", "enter"),
		key.WithHelp("space", "grab/drop"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel drag"),
	),
	MoveOpen: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	MoveInProgress: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "in progress"),
	),
	MoveClosed: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "close"),
	),
	AssignMe: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "assign me"),
	),
	Unassign: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "unassign"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Cancel, k.MoveOpen, k.MoveInProgress, k.MoveClosed, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Grab, k.Cancel},
		{k.MoveOpen, k.MoveInProgress, k.MoveClosed},
		{k.AssignMe, k.Unassign, k.Refresh},
		{k.Help, k.Quit},
	}
}
