package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	// Navigation
	Up        key.Binding
	Down      key.Binding
	Start     key.Binding
	Analytics key.Binding
	Back      key.Binding

	// Timer
	Pause    key.Binding
	Reset    key.Binding
	Skip     key.Binding
	Menu     key.Binding
	Continue key.Binding

	// Analytics
	Clear key.Binding

	// Dialogs
	Confirm key.Binding
	Cancel  key.Binding

	// Control
	Quit  key.Binding
	CtrlC key.Binding
}

// DefaultKeyMap provides the default key bindings for the TUI.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Start: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start"),
	),
	Analytics: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "analytics"),
	),
	Back: key.NewBinding(
		key.WithKeys("b", "esc"),
		key.WithHelp("b/esc", "back"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m", "esc"),
		key.WithHelp("m", "menu"),
	),
	Continue: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "next phase"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear data"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y/enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "exit"),
	),
}

// MenuHelp returns the bindings shown under the mode list.
func (k KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Start, k.Analytics, k.Quit}
}

// TimerHelp returns the bindings shown under a running timer.
func (k KeyMap) TimerHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Reset, k.Skip, k.Menu, k.Quit}
}

// AwaitingHelp returns the bindings shown between two phases.
func (k KeyMap) AwaitingHelp() []key.Binding {
	return []key.Binding{k.Continue, k.Menu, k.Quit}
}

// AnalyticsHelp returns the bindings shown on the analytics screen.
func (k KeyMap) AnalyticsHelp() []key.Binding {
	return []key.Binding{k.Back, k.Clear, k.Quit}
}

// DialogHelp returns the bindings shown in a confirmation dialog.
func (k KeyMap) DialogHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}
