package driven

import (
	"context"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

// SnapshotStore persists a built database across runs.
// Load after Save must reproduce an equal database.
type SnapshotStore interface {
	// Save replaces any existing snapshot with db.
	Save(ctx context.Context, db *domain.Database) (*domain.SnapshotInfo, error)

	// Load restores the saved database.
	// Returns domain.ErrSnapshotMissing if nothing has been saved.
	Load(ctx context.Context) (*domain.Database, error)

	// Info describes the saved snapshot.
	// Returns domain.ErrSnapshotMissing if nothing has been saved.
	Info(ctx context.Context) (*domain.SnapshotInfo, error)

	// Clear removes the saved snapshot. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
