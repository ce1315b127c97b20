package driven

import (
	"context"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

// DictionarySource reads the character dictionary.
type DictionarySource interface {
	// Entries decodes every character entry in document order.
	// Returns domain.ErrSourceUnreadable if the document cannot be read and
	// domain.ErrSourceMalformed if it fails structural parsing.
	Entries(ctx context.Context) ([]domain.RawCharacterEntry, error)

	// Location describes where the source is read from.
	Location() string
}

// StrokeSource reads the stroke atlas.
type StrokeSource interface {
	// Entries decodes every stroke entry in document order.
	// Error semantics match DictionarySource.Entries.
	Entries(ctx context.Context) ([]domain.RawStrokeEntry, error)

	// Location describes where the source is read from.
	Location() string
}
