package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the Normal-mode keyboard shortcuts from spec.md §4.6.
// Modal views (Help, ErrorList, ExportMenu) handle their keys in
// handleKey; of this map, only the Help binding is reused there, to close
// the Help modal.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Tab    key.Binding
	Enter  key.Binding
	Back   key.Binding
	Sort   key.Binding
	Thresh key.Binding
	Errors key.Binding
	Help   key.Binding
	Export key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the bindings spec.md §4.6's input table names.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "left", "right"),
			key.WithHelp("tab", "switch focus"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", "l"),
			key.WithHelp("enter/l", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "h"),
			key.WithHelp("⌫/h", "back"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Thresh: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "threshold"),
		),
		Errors: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "errors"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp satisfies bubbles/help's KeyMap interface. The hint bar is
// rendered from its own fixed list, not from this method.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Help, k.Quit}
}

// FullHelp satisfies bubbles/help's KeyMap interface. The Help modal is
// rendered from helpEntries, not from this method.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Enter, k.Back, k.Tab},
		{k.Sort, k.Thresh},
		{k.Errors, k.Export},
		{k.Help, k.Quit},
	}
}
