package playground

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Context key.Binding
	Size    key.Binding
	State   key.Binding
	Menu    key.Binding
	Back    key.Binding
	SignUp  key.Binding
	Link    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Theme   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Context: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "context")),
		Size:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "size")),
		State:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "state")),
		Menu:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Back:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
		SignUp:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "sign up")),
		Link:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "open link")),
		NextTab: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev tab")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Context, k.Size, k.State, k.Menu, k.NextTab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Context, k.Size, k.State},
		{k.Menu, k.Back, k.SignUp, k.Link},
		{k.NextTab, k.PrevTab, k.Theme},
		{k.Help, k.Quit},
	}
}
