package driving

import (
	"context"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

// CatalogService owns the built database.
type CatalogService interface {
	// Database returns the database, loading the snapshot or building
	// from sources on first use.
	Database(ctx context.Context) (*domain.Database, error)

	// Rebuild parses the sources, replaces the snapshot and returns the build report.
	Rebuild(ctx context.Context) (*domain.BuildReport, error)

	// Info describes the current snapshot.
	Info(ctx context.Context) (*domain.SnapshotInfo, error)
}
