package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds all key bindings for the browse view.
type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	PrevPage     key.Binding
	NextPage     key.Binding
	Search       key.Binding
	CycleScope   key.Binding
	CycleSort    key.Binding
	Favorite     key.Binding
	FavsOnly     key.Binding
	NewOnly      key.Binding
	HotOnly      key.Binding
	ComingSoon   key.Binding
	Providers    key.Binding
	Types        key.Binding
	Tags         key.Binding
	PageSizeUp   key.Binding
	PageSizeDown key.Binding
	Reset        key.Binding
	CopyLink     key.Binding
	Theme        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→/l", "next page"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		CycleScope: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scope"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Favorite: key.NewBinding(
			key.WithKeys(" ", "*"),
			key.WithHelp("space", "favorite"),
		),
		FavsOnly: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorites only"),
		),
		NewOnly: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		HotOnly: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "hot"),
		),
		ComingSoon: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "coming soon"),
		),
		Providers: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "providers"),
		),
		Types: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "types"),
		),
		Tags: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "tags"),
		),
		PageSizeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more per page"),
		),
		PageSizeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer per page"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset filters"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "show link"),
		),
		Theme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
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
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.CycleSort, k.FavsOnly, k.Favorite, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage, k.PageSizeUp, k.PageSizeDown},
		{k.Search, k.CycleScope, k.CycleSort, k.Reset, k.CopyLink},
		{k.FavsOnly, k.NewOnly, k.HotOnly, k.ComingSoon, k.Favorite},
		{k.Providers, k.Types, k.Tags, k.Theme, k.Help, k.Quit},
	}
}
