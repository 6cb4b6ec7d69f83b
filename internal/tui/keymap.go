package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the browser.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Back    key.Binding
	Search  key.Binding
	Goto    key.Binding
	Filters key.Binding
	Sort    key.Binding
	About   key.Binding
	Link    key.Binding
	Retry   key.Binding
	Toggle  key.Binding
	Less    key.Binding
	More    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Goto:    key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "open link")),
		Filters: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		About:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "about")),
		Link:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "show link")),
		Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Less:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "less")),
		More:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Search, k.Filters, k.Sort, k.About, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Back},
		{k.Search, k.Goto, k.Filters, k.Sort},
		{k.About, k.Link, k.Retry},
		{k.Help, k.Quit},
	}
}
