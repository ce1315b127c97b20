package sqlite

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFS_HasInitialMigration(t *testing.T) {
	data, err := fs.ReadFile(schemaFS(), "001_initial.sql")

	require.NoError(t, err)
	assert.Contains(t, string(data), "-- +goose Up")
	assert.Contains(t, string(data), "CREATE TABLE IF NOT EXISTS snapshots")
	assert.Contains(t, string(data), "-- +goose Down")
}

func TestStore_SchemaVersion(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	version, err := store.SchemaVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestStore_ReopenDoesNotReapply(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	again, err := NewStore(filepath.Dir(store.Path()))
	require.NoError(t, err)
	defer again.Close()

	version, err := again.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestStore_MigrateAppliesOnlyNewer(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	extra := fstest.MapFS{
		"001_initial.sql": {Data: []byte("-- +goose Up\nTHIS WOULD FAIL IF RUN AGAIN;\n")},
		"002_notes.sql":   {Data: []byte("-- +goose Up\nCREATE TABLE notes (literal INTEGER PRIMARY KEY, body TEXT);\n")},
	}
	require.NoError(t, store.migrate(ctx, extra))

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	_, err = store.db.Exec("INSERT INTO notes (literal, body) VALUES (27700, 'water')")
	assert.NoError(t, err)
}

func TestStore_MigrateFailureRollsBack(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	bad := fstest.MapFS{
		"001_initial.sql": {Data: []byte("-- +goose Up\nSELECT 1;\n")},
		"002_broken.sql":  {Data: []byte("-- +goose Up\nCREATE TABLE half (id INTEGER);\nNOT SQL;\n")},
	}
	err := store.migrate(ctx, bad)

	require.Error(t, err)
	version, verr := store.SchemaVersion(ctx)
	require.NoError(t, verr)
	assert.Equal(t, int64(1), version)

	_, err = store.db.Exec("SELECT id FROM half")
	assert.Error(t, err, "failed migration must not leave its table behind")
}

func TestStore_MigrateEmptyFS(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.migrate(context.Background(), fstest.MapFS{})

	assert.Error(t, err)
}
