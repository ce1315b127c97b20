// Package menu is the start screen listing the other views.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/styles"
)

// Item is one menu entry. Choosing it switches to View, or exits when Quit.
type Item struct {
	Label       string
	Description string
	View        messages.ViewType
	Quit        bool
}

// View is the menu screen. Digits 1-9 choose an item directly.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		keymap: keymap.DefaultKeyMap(),
		items: []Item{
			{Label: "Search", Description: "Look up a character or an English meaning", View: messages.ViewSearch},
			{Label: "Study list", Description: "Review saved characters and rate your confidence", View: messages.ViewStudy},
			{Label: "Settings", Description: "Build policy, match mode and result limit", View: messages.ViewSettings},
			{Label: "Help", Description: "Keybindings", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

func (v *View) Init() tea.Cmd { return nil }

func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		return v, v.handleKey(msg.String())
	}
	return v, nil
}

func (v *View) handleKey(k string) tea.Cmd {
	switch {
	case keymap.Matches(k, v.keymap.Up):
		v.selected = max(v.selected-1, 0)
	case keymap.Matches(k, v.keymap.Down):
		v.selected = min(v.selected+1, len(v.items)-1)
	case keymap.Matches(k, v.keymap.Select):
		return v.choose(v.selected)
	case k == "q":
		return tea.Quit
	case len(k) == 1 && k[0] >= '1' && int(k[0]-'1') < len(v.items):
		v.selected = int(k[0] - '1')
		return v.choose(v.selected)
	}
	return nil
}

func (v *View) choose(index int) tea.Cmd {
	item := v.items[index]
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s\n\n",
		v.styles.Title.Render("漢字  Kanji"),
		v.styles.Muted.Render("Dictionary & Stroke Order"))

	for i, item := range v.items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i == v.selected {
			b.WriteString("> " + v.styles.Subtitle.Render(label) + "\n")
			continue
		}
		b.WriteString("  " + v.styles.Normal.Render(label) + "\n")
	}

	if desc := v.items[v.selected].Description; desc != "" {
		b.WriteString("\n" + v.styles.Muted.Render(desc) + "\n")
	}

	b.WriteString("\n" + v.styles.Help.Render(fmt.Sprintf("[j/k] Navigate  [1-%d] Jump  [Enter] Select  [q] Quit", len(v.items))))
	return b.String()
}

func (v *View) SetDimensions(width, height int) {
	v.width, v.height = width, height
	v.ready = true
}

func (v *View) Selected() int { return v.selected }
func (v *View) Items() []Item { return v.items }
