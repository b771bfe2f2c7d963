package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding

	Search       key.Binding
	GenrePicker  key.Binding
	ClearFilters key.Binding

	SortTitle  key.Binding
	SortYear   key.Binding
	SortRating key.Binding

	CycleView    key.Binding
	ToggleTheme  key.Binding
	ToggleLocale key.Binding
	Refresh      key.Binding

	Quit key.Binding
	Help key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search titles"),
		),
		GenrePicker: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "filter by genre"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "clear filters"),
		),

		SortTitle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "sort by title"),
		),
		SortYear: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "sort by year"),
		),
		SortRating: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "sort by rating"),
		),

		CycleView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "table/cards/charts"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "toggle light/dark"),
		),
		ToggleLocale: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle language"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.GenrePicker, k.SortTitle, k.SortYear, k.SortRating, k.CycleView, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.CycleView},
		{k.Search, k.GenrePicker, k.ClearFilters},
		{k.SortTitle, k.SortYear, k.SortRating},
		{k.ToggleTheme, k.ToggleLocale, k.Refresh},
		{k.Help, k.Quit},
	}
}
