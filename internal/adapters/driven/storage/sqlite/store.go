package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/kanji-cli/internal/core/ports/driven"
)

const (
	dbFileName = "kanji.db"

	// pragmas apply to every pooled connection.
	pragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
)

// Store owns the kanji database file. The snapshot and study stores are
// views over its connection pool.
type Store struct {
	db     *sql.DB
	path   string
	schema *goose.Provider
}

// NewStore opens (creating if needed) kanji.db inside dataDir and brings
// the schema up to date. An empty dataDir means ~/.kanji/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = dir
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}

	path := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", path+"?"+pragmas)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(context.Background(), schemaFS()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return s, nil
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".kanji", "data"), nil
}

func (s *Store) Close() error { return s.db.Close() }

// Path is the database file location.
func (s *Store) Path() string { return s.path }

// SnapshotStore returns a SnapshotStore interface backed by this store.
func (s *Store) SnapshotStore() driven.SnapshotStore {
	return &snapshotStore{store: s}
}

// StudyStore returns a StudyStore interface backed by this store.
func (s *Store) StudyStore() driven.StudyStore {
	return &studyStore{store: s}
}

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
