// Package tui provides an interactive terminal user interface for kanji.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"errors"

	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
)

var (
	// ErrMissingSearchService is returned when Ports has no search service.
	ErrMissingSearchService = errors.New("tui: search service is required")

	// ErrInvalidPorts is returned for a nil Ports.
	ErrInvalidPorts = errors.New("tui: invalid ports configuration")
)

// Ports aggregates the driving port interfaces used by the TUI.
// Only Search is required; views whose port is nil degrade to a notice.
type Ports struct {
	// Search looks characters up by literal or meaning.
	Search driving.SearchService

	// ResultAction copies literals and opens stroke diagrams.
	ResultAction driving.ResultActionService

	// Study manages the personal study list.
	Study driving.StudyService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	resultAction driving.ResultActionService,
	study driving.StudyService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Search:       search,
		ResultAction: resultAction,
		Study:        study,
		Settings:     settings,
	}
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
