package tui

import (
	"fmt"
	"strings"
)

const searchHint = "Search matches a single character literally, or English meanings."

// viewHelp lists every binding, one group per block.
func (a *App) viewHelp() string {
	blocks := []string{a.styles.Title.Render("Help")}
	for _, group := range a.keymap.FullHelp() {
		rows := make([]string, 0, len(group))
		for _, binding := range group {
			h := binding.Help()
			rows = append(rows, fmt.Sprintf("  %-10s %s", h.Key, h.Desc))
		}
		blocks = append(blocks, strings.Join(rows, "\n"))
	}
	blocks = append(blocks,
		a.styles.Muted.Render(searchHint),
		a.styles.Help.Render("[esc] back to menu"),
	)
	return strings.Join(blocks, "\n\n")
}
