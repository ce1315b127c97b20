package driving

import (
	"context"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

// ResultActionService provides actions on search results for external actors.
// This is used by TUI and CLI adapters.
type ResultActionService interface {
	// CopyLiteral copies the result's character to the system clipboard.
	CopyLiteral(ctx context.Context, result *domain.SearchResult) error

	// WriteDiagram renders the result's strokes to path.
	// Returns domain.ErrNoStrokes when the result has no stroke data.
	WriteDiagram(ctx context.Context, result *domain.SearchResult, path string) error

	// OpenDiagram writes the diagram to the configured output and opens it
	// in the default application. Returns the written path.
	OpenDiagram(ctx context.Context, result *domain.SearchResult) (string, error)
}
