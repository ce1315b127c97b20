package driven

import (
	"context"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

// StudyStore persists the study list.
type StudyStore interface {
	// Save creates or replaces the entry for entry.Literal.
	Save(ctx context.Context, entry domain.StudyEntry) error

	// Get retrieves an entry. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, literal rune) (*domain.StudyEntry, error)

	// List returns every entry ordered by AddedAt, then literal.
	List(ctx context.Context) ([]domain.StudyEntry, error)

	// Delete removes an entry. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, literal rune) error
}
