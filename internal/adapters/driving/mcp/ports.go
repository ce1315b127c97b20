// Package mcp serves the dictionary over the Model Context Protocol so AI
// assistants can search characters, read records and fetch stroke diagrams.
package mcp

import (
	"errors"

	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
)

var (
	ErrMissingSearchService = errors.New("mcp: search service is required")
	ErrMissingRenderService = errors.New("mcp: render service is required")
)

// Ports are the services behind the tools and resources. Study is optional;
// without it the kanji://study resource is not registered.
type Ports struct {
	Search driving.SearchService
	Render driving.RenderService
	Study  driving.StudyService
}

func (p *Ports) Validate() error {
	switch {
	case p.Search == nil:
		return ErrMissingSearchService
	case p.Render == nil:
		return ErrMissingRenderService
	}
	return nil
}
