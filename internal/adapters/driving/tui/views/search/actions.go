package search

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

var (
	ErrNoSearchService = errors.New("search service is required")
	ErrNoActionService = errors.New("result actions are not available")
	ErrNoStudyService  = errors.New("study list is not available")
)

// Labels of the result action menu, in display order.
const (
	ActionOpenDiagram = "Open stroke diagram"
	ActionCopy        = "Copy character"
	ActionStudy       = "Add to study list"
	ActionCancel      = "Cancel"
)

var menuActions = []string{ActionOpenDiagram, ActionCopy, ActionStudy, ActionCancel}

// ActionMenu is the overlay opened with enter on a result.
type ActionMenu struct {
	selected int
	result   domain.SearchResult
}

// handleActionMenuKey moves within the menu, or closes it and returns the
// chosen action's command.
func (v *View) handleActionMenuKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	menu := v.actionMenu
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Up):
		menu.selected = max(menu.selected-1, 0)
	case keymap.Matches(k, v.keymap.Down):
		menu.selected = min(menu.selected+1, len(menuActions)-1)
	case keymap.Matches(k, v.keymap.Select):
		v.actionMenu = nil
		return v, v.runAction(menuActions[menu.selected], menu.result)
	case keymap.Matches(k, v.keymap.Back):
		v.actionMenu = nil
	}
	return v, nil
}

// runAction returns nil for ActionCancel.
func (v *View) runAction(action string, result domain.SearchResult) tea.Cmd {
	switch action {
	case ActionOpenDiagram:
		return v.withActions(func() messages.ActionCompleted {
			path, err := v.actionService.OpenDiagram(v.ctx, &result)
			if err != nil {
				return messages.ActionCompleted{Err: fmt.Errorf("open diagram: %w", err)}
			}
			return messages.ActionCompleted{Status: "Opened " + path}
		})
	case ActionCopy:
		return v.withActions(func() messages.ActionCompleted {
			if err := v.actionService.CopyLiteral(v.ctx, &result); err != nil {
				return messages.ActionCompleted{Err: fmt.Errorf("copy: %w", err)}
			}
			return messages.ActionCompleted{Status: fmt.Sprintf("Copied %c to clipboard", result.Record.Literal)}
		})
	case ActionStudy:
		return v.addToStudy(result.Record.Literal)
	}
	return nil
}

func (v *View) withActions(run func() messages.ActionCompleted) tea.Cmd {
	return func() tea.Msg {
		if v.actionService == nil {
			return messages.ActionCompleted{Err: ErrNoActionService}
		}
		return run()
	}
}

func (v *View) addToStudy(literal rune) tea.Cmd {
	return func() tea.Msg {
		if v.studyService == nil {
			return messages.ActionCompleted{Err: ErrNoStudyService}
		}
		if _, err := v.studyService.Add(v.ctx, literal); err != nil {
			return messages.ActionCompleted{Err: fmt.Errorf("study: %w", err)}
		}
		return messages.ActionCompleted{Status: fmt.Sprintf("Added %c to study list", literal)}
	}
}

func (v *View) renderActionMenu() string {
	menu := v.actionMenu
	var b strings.Builder
	b.WriteString(v.styles.Literal.Render(string(menu.result.Record.Literal)))
	for i, action := range menuActions {
		b.WriteByte('\n')
		if i == menu.selected {
			b.WriteString(v.styles.Selected.Render("> " + action))
			continue
		}
		b.WriteString(v.styles.Normal.Render("  " + action))
	}
	return v.styles.Border.Padding(0, 1).Render(b.String())
}
