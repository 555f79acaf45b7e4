package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts. While the voice prompt is open
// only Submit, Cancel and ForceQuit are active.
type KeyMap struct {
	// Voice
	Listen key.Binding
	Submit key.Binding
	Cancel key.Binding

	// Tabs
	NextTab      key.Binding
	PrevTab      key.Binding
	Dashboard    key.Binding
	Transactions key.Binding
	Budget       key.Binding
	Analytics    key.Binding

	// Actions
	Filter      key.Binding
	ToggleTheme key.Binding
	ToggleVoice key.Binding
	Export      key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Listen: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("Space", "speak a command"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "run command"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "stop listening"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("Tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("Shift+Tab", "previous tab"),
		),
		Dashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		Transactions: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "transactions"),
		),
		Budget: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "budget"),
		),
		Analytics: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "analytics"),
		),

		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter by type"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		ToggleVoice: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "toggle voice replies"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Listen, k.NextTab, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Listen, k.Submit, k.Cancel},
		{k.NextTab, k.PrevTab, k.Dashboard, k.Transactions, k.Budget, k.Analytics},
		{k.Filter, k.ToggleTheme, k.ToggleVoice, k.Export},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
