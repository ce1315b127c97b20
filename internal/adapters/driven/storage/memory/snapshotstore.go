package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is an in-memory implementation of driven.SnapshotStore.
// It keeps a private copy of the saved database.
type SnapshotStore struct {
	mu         sync.RWMutex
	characters map[rune]domain.CharacterRecord
	strokes    map[rune]domain.StrokeRecipe
	info       *domain.SnapshotInfo
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Save replaces any existing snapshot with db.
func (s *SnapshotStore) Save(_ context.Context, db *domain.Database) (*domain.SnapshotInfo, error) {
	characters, strokes := copyDatabase(db)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.characters = characters
	s.strokes = strokes
	s.info = &domain.SnapshotInfo{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now().UTC(),
		Characters: len(characters),
		Strokes:    len(strokes),
	}
	info := *s.info
	return &info, nil
}

// Load restores the saved database.
func (s *SnapshotStore) Load(_ context.Context) (*domain.Database, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.info == nil {
		return nil, domain.ErrSnapshotMissing
	}
	characters, strokes := copyDatabase(domain.NewDatabase(s.characters, s.strokes))
	return domain.NewDatabase(characters, strokes), nil
}

// Info describes the saved snapshot.
func (s *SnapshotStore) Info(_ context.Context) (*domain.SnapshotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.info == nil {
		return nil, domain.ErrSnapshotMissing
	}
	info := *s.info
	return &info, nil
}

// Clear removes the saved snapshot.
func (s *SnapshotStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.characters = nil
	s.strokes = nil
	s.info = nil
	return nil
}

func copyDatabase(db *domain.Database) (map[rune]domain.CharacterRecord, map[rune]domain.StrokeRecipe) {
	characters := make(map[rune]domain.CharacterRecord, db.CharacterCount())
	for _, r := range db.Literals() {
		rec, _ := db.Character(r)
		characters[r] = rec
	}
	strokes := make(map[rune]domain.StrokeRecipe, db.StrokeCount())
	for _, r := range db.StrokeLiterals() {
		recipe, _ := db.Strokes(r)
		strokes[r] = recipe
	}
	return characters, strokes
}
