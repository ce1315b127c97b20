package driving

import (
	"context"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search returns every record whose literal occurs in the query or
	// whose meaning matches it, ascending by literal.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// Lookup returns the record for one literal.
	// Returns domain.ErrNotFound if the literal has no record.
	Lookup(ctx context.Context, literal rune) (*domain.SearchResult, error)
}
