// Package messages holds the tea.Msg values exchanged between the TUI views
// and the root model. Result messages carry either a payload or Err, never
// both.
package messages

import (
	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
)

// ViewType identifies a top-level screen.
type ViewType int

// Screens, in menu order.
const (
	ViewMenu ViewType = iota
	ViewSearch
	ViewStudy
	ViewSettings
	ViewHelp
)

var viewNames = [...]string{
	ViewMenu:     "menu",
	ViewSearch:   "search",
	ViewStudy:    "study",
	ViewSettings: "settings",
	ViewHelp:     "help",
}

func (v ViewType) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return "unknown"
	}
	return viewNames[v]
}

// Navigation and lifecycle.
type (
	// ViewChanged switches the active screen.
	ViewChanged struct{ View ViewType }

	// ErrorOccurred surfaces an error on the active screen.
	ErrorOccurred struct{ Err error }

	// Quit exits the program.
	Quit struct{}
)

// Search.
type (
	// SearchCompleted carries the results of one query.
	SearchCompleted struct {
		Results []domain.SearchResult
		Err     error
	}

	// ActionCompleted reports a result action with a status bar line.
	ActionCompleted struct {
		Status string
		Err    error
	}
)

// Study list.
type (
	// StudyLoaded carries the full study list.
	StudyLoaded struct {
		Items []driving.StudyItem
		Err   error
	}

	// StudyChanged asks the study view to reload after Literal changed.
	StudyChanged struct {
		Literal rune
		Err     error
	}
)

// Settings.
type (
	SettingsLoaded struct {
		Settings *domain.AppSettings
		Err      error
	}

	SettingsSaved struct{ Err error }
)
