package driving

import (
	"context"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

// StudyService manages the study list.
type StudyService interface {
	// Add puts a known character on the list. Re-adding keeps the existing entry.
	Add(ctx context.Context, literal rune) (*domain.StudyEntry, error)

	// List returns the study list with each entry's record.
	List(ctx context.Context) ([]StudyItem, error)

	// Remove takes a character off the list.
	Remove(ctx context.Context, literal rune) error

	// SetConfidence rates recall for a listed character.
	SetConfidence(ctx context.Context, literal rune, confidence int) error
}

// StudyItem pairs a study entry with its dictionary record.
type StudyItem struct {
	Entry  domain.StudyEntry
	Record domain.CharacterRecord
}
