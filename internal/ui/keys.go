package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains all keyboard shortcuts for the list screen.
type KeyMap struct {
	Delete   key.Binding
	Down     key.Binding
	Edit     key.Binding
	Filter   key.Binding
	Help     key.Binding
	Logout   key.Binding
	New      key.Binding
	NextPage key.Binding
	PageSize key.Binding
	PrevPage key.Binding
	Quit     key.Binding
	Refresh  key.Binding
	Search   key.Binding
	Up       key.Binding
}

// NewKeyMap creates a KeyMap with the default bindings.
func NewKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter status"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "logout"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		PageSize: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "page size"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
	}
}

// ShortHelp returns the curated list of key bindings for the bottom bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.New,
		k.Edit,
		k.Delete,
		k.Search,
		k.Filter,
		k.Refresh,
		k.Help,
		k.Quit,
	}
}

// FullHelp returns every binding grouped for the help screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage, k.PageSize},
		{k.New, k.Edit, k.Delete, k.Refresh},
		{k.Search, k.Filter},
		{k.Logout, k.Help, k.Quit},
	}
}
