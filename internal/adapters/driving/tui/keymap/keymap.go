// Package keymap holds the TUI key bindings and the hint groups shown for
// each view.
package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap is the full set of bindings. Several share "enter"; the active
// view decides which one applies.
type KeyMap struct {
	// Global.
	Quit key.Binding
	Help key.Binding
	Back key.Binding

	// Lists.
	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// Search and results.
	Search      key.Binding
	ToggleMatch key.Binding
	NewSearch   key.Binding
	Actions     key.Binding
	Study       key.Binding

	// Study list.
	MoreConfident key.Binding
	LessConfident key.Binding
	Remove        key.Binding
}

func bind(helpKey, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc))
}

func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: bind("q", "quit", "q", "ctrl+c"),
		Help: bind("?", "help", "?"),
		Back: bind("esc", "back", "esc"),

		Up:     bind("↑/k", "up", "up", "k"),
		Down:   bind("↓/j", "down", "down", "j"),
		Select: bind("enter", "select", "enter"),

		Search:      bind("enter", "search", "enter"),
		ToggleMatch: bind("tab", "exact/contains", "tab"),
		NewSearch:   bind("n", "new search", "n"),
		Actions:     bind("enter", "actions", "enter"),
		Study:       bind("a", "study", "a"),

		MoreConfident: bind("+", "more confident", "+", "="),
		LessConfident: bind("-", "less confident", "-"),
		Remove:        bind("d", "remove", "d", "delete"),
	}
}

// ShortHelp is shown when nothing more specific applies.
func (k *KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Quit, k.Help} }

func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.NewSearch, k.Up, k.Actions, k.Study, k.Back}
}

func (k *KeyMap) StudyHelp() []key.Binding {
	return []key.Binding{k.Up, k.MoreConfident, k.LessConfident, k.Remove, k.Back}
}

// FullHelp groups every binding for the help screen.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Search, k.ToggleMatch, k.NewSearch, k.Study, k.Back},
		{k.MoreConfident, k.LessConfident, k.Remove},
		{k.Help, k.Quit},
	}
}

// Matches reports whether keyStr is one of binding's keys.
func Matches(keyStr string, binding key.Binding) bool {
	return slices.Contains(binding.Keys(), keyStr)
}
