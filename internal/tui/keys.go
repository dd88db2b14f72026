package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

type keyMap struct {
	Filter     key.Binding
	All        key.Binding
	Completed  key.Binding
	Incomplete key.Binding
	Choose     key.Binding // help-only summary of the three above
	Prev       key.Binding
	Next       key.Binding
	Reload     key.Binding
	Close      key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Filter:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		All:        key.NewBinding(key.WithKeys("a", "1")),
		Completed:  key.NewBinding(key.WithKeys("c", "2")),
		Incomplete: key.NewBinding(key.WithKeys("u", "3")),
		Choose:     key.NewBinding(key.WithKeys("a", "c", "u"), key.WithHelp("a/c/u", "all/complete/uncomplete")),
		Prev:       key.NewBinding(key.WithKeys("left", "shift+tab")),
		Next:       key.NewBinding(key.WithKeys("right", "tab")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Close:      key.NewBinding(key.WithKeys("esc")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// listKeyMap frees f, u and d, which the default list bindings use for paging.
func listKeyMap() list.KeyMap {
	km := list.DefaultKeyMap()
	km.NextPage = key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l/pgdn", "next page"))
	km.PrevPage = key.NewBinding(key.WithKeys("left", "h", "pgup", "b"), key.WithHelp("←/h/pgup", "prev page"))
	km.Quit = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	return km
}
