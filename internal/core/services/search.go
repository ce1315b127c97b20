package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kanji-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService finds characters by literal or meaning.
type SearchService struct {
	catalog driving.CatalogService
}

// NewSearchService creates a new search service.
func NewSearchService(catalog driving.CatalogService) *SearchService {
	return &SearchService{catalog: catalog}
}

// Search returns every record whose literal occurs in the query or whose
// meaning matches the query, ascending by literal.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	// Return empty for empty query
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	if opts.Match == "" {
		opts.Match = domain.MatchExact
	}
	if !opts.Match.IsValid() {
		return nil, fmt.Errorf("%w: match mode %q", domain.ErrInvalidInput, opts.Match)
	}
	if opts.Limit < 0 {
		return nil, fmt.Errorf("%w: negative limit", domain.ErrInvalidInput)
	}

	db, err := s.catalog.Database(ctx)
	if err != nil {
		return nil, err
	}

	matches := newMeaningMatcher(query, opts.Match)
	results := []domain.SearchResult{}
	for _, literal := range db.Literals() {
		rec, _ := db.Character(literal)
		if !strings.ContainsRune(query, literal) && !matches(rec.Meanings) {
			continue
		}
		results = append(results, resultFor(db, rec))
		if opts.Limit > 0 && len(results) >= opts.Limit {
			break
		}
	}

	logger.Debug("Mode: %s, results: %d", opts.Match, len(results))
	return results, nil
}

// Lookup returns the record for one literal.
func (s *SearchService) Lookup(ctx context.Context, literal rune) (*domain.SearchResult, error) {
	db, err := s.catalog.Database(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := db.Character(literal)
	if !ok {
		return nil, fmt.Errorf("%w: %c", domain.ErrNotFound, literal)
	}
	result := resultFor(db, rec)
	return &result, nil
}

func resultFor(db *domain.Database, rec domain.CharacterRecord) domain.SearchResult {
	result := domain.SearchResult{Record: rec}
	if recipe, ok := db.Strokes(rec.Literal); ok {
		result.Strokes = &recipe
	}
	return result
}

// newMeaningMatcher returns a predicate over a record's meanings.
func newMeaningMatcher(query string, mode domain.MatchMode) func([]string) bool {
	if mode == domain.MatchContains {
		needle := foldQuery(query)
		return func(meanings []string) bool {
			for _, m := range meanings {
				if strings.Contains(foldQuery(m), needle) {
					return true
				}
			}
			return false
		}
	}
	return func(meanings []string) bool {
		for _, m := range meanings {
			if m == query {
				return true
			}
		}
		return false
	}
}

// foldQuery maps full-width letters to their narrow forms and folds case.
func foldQuery(s string) string {
	return cases.Fold().String(width.Fold.String(s))
}
