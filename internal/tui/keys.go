package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	quit     key.Binding
	accept   key.Binding
	discard  key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	grid     key.Binding
	search   key.Binding
	clearAll key.Binding
	theme    key.Binding
	info     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ask")),
	esc:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	accept:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accept")),
	discard:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "discard")),
	edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	grid:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid")),
	search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	clearAll: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
	theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	info:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),
	yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
	no:       key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
}

// listHelp implements help.KeyMap for the main list.
type listHelp struct{}

func (listHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.accept, keys.discard, keys.edit, keys.delete, keys.copy, keys.search, keys.grid, keys.quit}
}

func (listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.up, keys.down, keys.tab},
		{keys.accept, keys.discard, keys.edit, keys.delete, keys.copy},
		{keys.search, keys.grid, keys.clearAll, keys.theme, keys.info, keys.quit},
	}
}

type gridHelp struct{}

func (gridHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.up, keys.down, keys.delete, keys.esc}
}

func (g gridHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{g.ShortHelp()}
}
