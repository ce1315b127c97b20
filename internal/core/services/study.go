package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
)

// Ensure StudyService implements the interface.
var _ driving.StudyService = (*StudyService)(nil)

// StudyService manages the user's study list.
type StudyService struct {
	store   driven.StudyStore
	catalog driving.CatalogService
	now     func() time.Time
}

// NewStudyService creates a new study service.
func NewStudyService(store driven.StudyStore, catalog driving.CatalogService) *StudyService {
	return &StudyService{
		store:   store,
		catalog: catalog,
		now:     time.Now,
	}
}

// Add puts a known character on the list. Re-adding keeps the existing entry.
func (s *StudyService) Add(ctx context.Context, literal rune) (*domain.StudyEntry, error) {
	if err := s.requireKnown(ctx, literal); err != nil {
		return nil, err
	}

	existing, err := s.store.Get(ctx, literal)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get study entry: %w", err)
	}

	entry := domain.StudyEntry{
		Literal:    literal,
		Confidence: domain.MinConfidence,
		AddedAt:    s.now().UTC(),
	}
	if err := s.store.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("save study entry: %w", err)
	}
	return &entry, nil
}

// List returns the study list with each entry's record.
// Entries whose character is no longer in the catalog keep an empty record.
func (s *StudyService) List(ctx context.Context) ([]driving.StudyItem, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list study entries: %w", err)
	}
	db, err := s.catalog.Database(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]driving.StudyItem, 0, len(entries))
	for _, e := range entries {
		rec, ok := db.Character(e.Literal)
		if !ok {
			rec = domain.CharacterRecord{Literal: e.Literal}
		}
		items = append(items, driving.StudyItem{Entry: e, Record: rec})
	}
	return items, nil
}

// Remove takes a character off the list.
func (s *StudyService) Remove(ctx context.Context, literal rune) error {
	if err := s.store.Delete(ctx, literal); err != nil {
		return fmt.Errorf("remove %c: %w", literal, err)
	}
	return nil
}

// SetConfidence rates recall for a listed character.
func (s *StudyService) SetConfidence(ctx context.Context, literal rune, confidence int) error {
	if !domain.ValidConfidence(confidence) {
		return fmt.Errorf("%w: confidence must be %d..%d", domain.ErrInvalidInput,
			domain.MinConfidence, domain.MaxConfidence)
	}
	entry, err := s.store.Get(ctx, literal)
	if err != nil {
		return fmt.Errorf("rate %c: %w", literal, err)
	}
	entry.Confidence = confidence
	if err := s.store.Save(ctx, *entry); err != nil {
		return fmt.Errorf("save study entry: %w", err)
	}
	return nil
}

func (s *StudyService) requireKnown(ctx context.Context, literal rune) error {
	db, err := s.catalog.Database(ctx)
	if err != nil {
		return err
	}
	if _, ok := db.Character(literal); !ok {
		return fmt.Errorf("%w: %c is not in the dictionary", domain.ErrNotFound, literal)
	}
	return nil
}
