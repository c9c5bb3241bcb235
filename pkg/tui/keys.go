package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Sort      key.Binding
	Add       key.Binding
	Rename    key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Edit      key.Binding
	Complete  key.Binding
	Reopen    key.Binding
	Delete    key.Binding
	ClearAll  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextTab:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next category")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev category")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Add:       key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Rename:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		ToggleAll: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "toggle all")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit mode")),
		Complete:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete selected")),
		Reopen:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "reopen selected")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete selected")),
		ClearAll:  key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.NextTab, k.Sort, k.Edit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab, k.Sort},
		{k.Add, k.Rename, k.Toggle, k.ToggleAll, k.ClearAll},
		{k.Edit, k.Complete, k.Reopen, k.Delete},
		{k.Help, k.Quit},
	}
}
