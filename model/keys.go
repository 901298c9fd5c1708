package model

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	New           key.Binding
	Save          key.Binding
	Delete        key.Binding
	ToggleSidebar key.Binding
	Search        key.Binding
	Preview       key.Binding
	Edit          key.Binding
	Next          key.Binding
	Prev          key.Binding
	Select        key.Binding
	Favorite      key.Binding
	Up            key.Binding
	Down          key.Binding
	Back          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		New:           key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add")),
		Save:          key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Delete:        key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		ToggleSidebar: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "sidebar")),
		Search:        key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "search")),
		Preview:       key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "preview")),
		Edit:          key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "$EDITOR")),
		Next:          key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:          key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Select:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Favorite:      key.NewBinding(key.WithKeys(" ", "f"), key.WithHelp("f", "favorite")),
		Up:            key.NewBinding(key.WithKeys("up", "k")),
		Down:          key.NewBinding(key.WithKeys("down", "j")),
		Back:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:          key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Save, k.Delete, k.Search, k.ToggleSidebar, k.Next, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Save, k.Delete},
		{k.Search, k.ToggleSidebar, k.Preview, k.Edit},
		{k.Next, k.Prev, k.Select, k.Favorite, k.Back, k.Quit},
	}
}
