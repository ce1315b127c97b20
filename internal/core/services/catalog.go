package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kanji-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService owns the built database for the process.
// The first call to Database loads the snapshot, or parses the sources
// and saves a new snapshot when none exists.
type CatalogService struct {
	dictionary driven.DictionarySource
	strokes    driven.StrokeSource
	snapshots  driven.SnapshotStore
	builder    *DatabaseBuilder

	mu         sync.Mutex
	db         *domain.Database
	lastReport *domain.BuildReport
}

// NewCatalogService creates a new catalog service.
// The snapshots parameter is optional (can be nil).
func NewCatalogService(
	dictionary driven.DictionarySource,
	strokes driven.StrokeSource,
	snapshots driven.SnapshotStore,
	builder *DatabaseBuilder,
) *CatalogService {
	if builder == nil {
		builder = NewDatabaseBuilder(domain.PolicyAbort)
	}
	return &CatalogService{
		dictionary: dictionary,
		strokes:    strokes,
		snapshots:  snapshots,
		builder:    builder,
	}
}

// Database returns the database, building it on first use.
func (s *CatalogService) Database(ctx context.Context) (*domain.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	if s.snapshots != nil {
		db, err := s.snapshots.Load(ctx)
		switch {
		case err == nil:
			logger.Debug("Loaded snapshot: %d characters, %d stroke recipes", db.CharacterCount(), db.StrokeCount())
			s.db = db
			return db, nil
		case errors.Is(err, domain.ErrSnapshotMissing):
			logger.Debug("No snapshot, building from sources")
		default:
			logger.Warn("Snapshot unusable, rebuilding: %v", err)
		}
	}

	if _, err := s.rebuildLocked(ctx); err != nil {
		return nil, err
	}
	return s.db, nil
}

// Rebuild parses the sources, replaces the snapshot and returns the build report.
func (s *CatalogService) Rebuild(ctx context.Context) (*domain.BuildReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rebuildLocked(ctx)
}

// Info describes the current snapshot.
func (s *CatalogService) Info(ctx context.Context) (*domain.SnapshotInfo, error) {
	if s.snapshots == nil {
		return nil, domain.ErrSnapshotMissing
	}
	return s.snapshots.Info(ctx)
}

// LastReport returns the report of the most recent build in this process, if any.
func (s *CatalogService) LastReport() *domain.BuildReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReport
}

func (s *CatalogService) rebuildLocked(ctx context.Context) (*domain.BuildReport, error) {
	if s.dictionary == nil || s.strokes == nil {
		return nil, fmt.Errorf("%w: no sources configured", domain.ErrSourceUnreadable)
	}

	characters, strokes, err := s.loadSources(ctx)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db, report, err := s.builder.Build(characters, strokes)
	if err != nil {
		return nil, err
	}

	if s.snapshots != nil {
		info, err := s.snapshots.Save(ctx, db)
		if err != nil {
			// The database is still usable for this run.
			logger.Warn("Failed to save snapshot: %v", err)
		} else {
			logger.Debug("Saved snapshot %s", info.ID)
		}
	}

	s.db = db
	s.lastReport = report
	return report, nil
}

func (s *CatalogService) loadSources(ctx context.Context) ([]domain.RawCharacterEntry, []domain.RawStrokeEntry, error) {
	defer logger.Stage("Source Loading")()

	logger.Debug("Dictionary: %s", s.dictionary.Location())
	characters, err := s.dictionary.Entries(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load dictionary: %w", err)
	}

	logger.Debug("Strokes: %s", s.strokes.Location())
	strokes, err := s.strokes.Entries(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load strokes: %w", err)
	}
	return characters, strokes, nil
}
