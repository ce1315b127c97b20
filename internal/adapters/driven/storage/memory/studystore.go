package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driven"
)

// Ensure StudyStore implements the interface.
var _ driven.StudyStore = (*StudyStore)(nil)

// StudyStore is an in-memory implementation of driven.StudyStore.
type StudyStore struct {
	mu      sync.RWMutex
	entries map[rune]domain.StudyEntry
}

// NewStudyStore creates a new in-memory study store.
func NewStudyStore() *StudyStore {
	return &StudyStore{
		entries: make(map[rune]domain.StudyEntry),
	}
}

// Save creates or replaces the entry for entry.Literal.
func (s *StudyStore) Save(_ context.Context, entry domain.StudyEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Literal] = entry
	return nil
}

// Get retrieves an entry.
func (s *StudyStore) Get(_ context.Context, literal rune) (*domain.StudyEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[literal]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

// List returns every entry ordered by AddedAt, then literal.
func (s *StudyStore) List(_ context.Context) ([]domain.StudyEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.StudyEntry, 0, len(s.entries))
	for _, e := range s.entries {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].AddedAt.Equal(result[j].AddedAt) {
			return result[i].AddedAt.Before(result[j].AddedAt)
		}
		return result[i].Literal < result[j].Literal
	})
	return result, nil
}

// Delete removes an entry.
func (s *StudyStore) Delete(_ context.Context, literal rune) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[literal]; !ok {
		return domain.ErrNotFound
	}
	delete(s.entries, literal)
	return nil
}
