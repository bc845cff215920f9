package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	ToggleLogs key.Binding
	Escape     key.Binding

	// Catalog navigation
	SwitchPane  key.Binding
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	SelectGenre key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding

	// Catalog actions
	Search     key.Binding
	ToggleLike key.Binding
	Delete     key.Binding
	SortTitle  key.Binding
	SortGenre  key.Binding
	SortStock  key.Binding
	SortRate   key.Binding
	SortLiked  key.Binding

	// Logs
	ToggleFollow key.Binding
	CycleLevel   key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Search input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleLogs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Log view"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search / back"),
		),

		SwitchPane: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Switch pane"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		SelectGenre: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Filter by genre"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("[/left", "Previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("]/right", "Next page"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search titles"),
		),
		ToggleLike: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Like / unlike"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete movie"),
		),
		SortTitle: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Sort by title"),
		),
		SortGenre: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Sort by genre"),
		),
		SortStock: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Sort by stock"),
		),
		SortRate: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Sort by rate"),
		),
		SortLiked: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "Sort by like"),
		),

		ToggleFollow: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle follow mode"),
		),
		CycleLevel: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Cycle minimum level"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// sortBindings pairs each sort key with its column, in column order.
func (k keyMap) sortBindings() []key.Binding {
	return []key.Binding{k.SortTitle, k.SortGenre, k.SortStock, k.SortRate, k.SortLiked}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchPane, k.Up, k.Down, k.Top, k.Bottom, k.SelectGenre},
		{k.PrevPage, k.NextPage},
		{k.Search, k.Escape, k.ToggleLike, k.Delete},
		k.sortBindings(),
		{k.ToggleLogs, k.ToggleFollow, k.CycleLevel, k.HalfPageDown, k.HalfPageUp},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
