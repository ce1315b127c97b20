package sqlite

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/custodia-labs/kanji-cli/internal/logger"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// schemaFS returns the embedded goose migrations rooted at migrations/.
func schemaFS() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// migrate applies every migration in fsys newer than the recorded version.
// Each migration runs in its own transaction; versions are tracked in
// goose_db_version.
func (s *Store) migrate(ctx context.Context, fsys fs.FS) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	s.schema = provider

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		logger.Debug("Applied migration %s in %s", r.Source.Path, r.Duration)
	}
	return nil
}

// SchemaVersion returns the highest applied migration version.
func (s *Store) SchemaVersion(ctx context.Context) (int64, error) {
	version, err := s.schema.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}
