package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "kanji-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func sampleDatabase() *domain.Database {
	return domain.NewDatabase(
		map[rune]domain.CharacterRecord{
			'亜': {
				Literal:     '亜',
				OnReadings:  []string{"ア"},
				KunReadings: []string{"つ.ぐ"},
				Meanings:    []string{"Asia", "rank next", "come after", "-ous"},
				Nanori:      []string{"や", "つぎ", "つぐ"},
				Grade:       8,
				StrokeCount: 7,
				Frequency:   1509,
				JLPT:        1,
			},
			'々': {
				Literal:     '々',
				OnReadings:  []string{},
				KunReadings: []string{},
				Meanings:    []string{},
				Nanori:      []string{},
			},
		},
		map[rune]domain.StrokeRecipe{
			'个': {Strokes: []domain.PathDescriptor{
				{D: "M52.75,10.25c0.11,1.12,0,3.49-0.72,4.99C47.5,24.75,34.25,45,14.25,57.75"},
				{D: "M51.75,15.75c5.92,7.28,31.44,31.07,37.97,36.4c2.22,1.81,5.06,2.58,7.28,3.1"},
				{D: "M51.87,46.25c1.09,0.5,1.74,2.25,1.96,3.25c0.22,1,0,43.25-0.22,49.5"},
			}},
			'亜': {Strokes: []domain.PathDescriptor{}},
		},
	)
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_CreatesDatabase(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, dbFileName, filepath.Base(store.Path()))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_CreatesTables(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	tables := []string{"snapshots", "snapshot_characters", "snapshot_strokes", "study_entries"}
	for _, table := range tables {
		var name string
		err := store.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

// ==================== Snapshot Store Tests ====================

func TestSnapshotStore_LoadMissing(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.SnapshotStore().Load(ctx)
	assert.ErrorIs(t, err, domain.ErrSnapshotMissing)

	_, err = store.SnapshotStore().Info(ctx)
	assert.ErrorIs(t, err, domain.ErrSnapshotMissing)
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	snapshots := store.SnapshotStore()
	db := sampleDatabase()

	info, err := snapshots.Save(ctx, db)
	require.NoError(t, err)
	assert.NotEmpty(t, info.ID)
	assert.Equal(t, 2, info.Characters)
	assert.Equal(t, 2, info.Strokes)

	loaded, err := snapshots.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, db, loaded)

	got, err := snapshots.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, info.ID, got.ID)
	assert.True(t, info.CreatedAt.Equal(got.CreatedAt))
}

func TestSnapshotStore_SurvivesReopen(t *testing.T) {
	tempDir := t.TempDir()
	ctx := context.Background()

	store1, err := NewStore(tempDir)
	require.NoError(t, err)
	_, err = store1.SnapshotStore().Save(ctx, sampleDatabase())
	require.NoError(t, err)
	require.NoError(t, store1.Close())

	store2, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store2.Close()

	loaded, err := store2.SnapshotStore().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleDatabase(), loaded)
}

func TestSnapshotStore_SaveReplaces(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	snapshots := store.SnapshotStore()

	_, err := snapshots.Save(ctx, sampleDatabase())
	require.NoError(t, err)

	small := domain.NewDatabase(map[rune]domain.CharacterRecord{'唖': {Literal: '唖', Meanings: []string{"mute"}}}, nil)
	second, err := snapshots.Save(ctx, small)
	require.NoError(t, err)

	loaded, err := snapshots.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []rune{'唖'}, loaded.Literals())
	assert.Empty(t, loaded.StrokeLiterals())

	var rows int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&rows))
	assert.Equal(t, 1, rows)

	info, err := snapshots.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, info.ID)
}

func TestSnapshotStore_LargeBatch(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	characters := make(map[rune]domain.CharacterRecord)
	for r := rune(0x4e00); r < 0x4e00+1234; r++ {
		characters[r] = domain.CharacterRecord{Literal: r, Meanings: []string{"m"}}
	}
	db := domain.NewDatabase(characters, nil)

	_, err := store.SnapshotStore().Save(ctx, db)
	require.NoError(t, err)

	loaded, err := store.SnapshotStore().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1234, loaded.CharacterCount())
}

func TestSnapshotStore_Clear(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	snapshots := store.SnapshotStore()

	_, err := snapshots.Save(ctx, sampleDatabase())
	require.NoError(t, err)
	require.NoError(t, snapshots.Clear(ctx))
	require.NoError(t, snapshots.Clear(ctx))

	_, err = snapshots.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrSnapshotMissing)

	var rows int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM snapshot_characters").Scan(&rows))
	assert.Zero(t, rows)
}

// ==================== Study Store Tests ====================

func TestStudyStore_SaveGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	study := store.StudyStore()
	added := time.Date(2024, 3, 4, 5, 6, 7, 890, time.UTC)

	require.NoError(t, study.Save(ctx, domain.StudyEntry{Literal: '亜', Confidence: 3, AddedAt: added}))

	got, err := study.Get(ctx, '亜')
	require.NoError(t, err)
	assert.Equal(t, '亜', got.Literal)
	assert.Equal(t, 3, got.Confidence)
	assert.True(t, added.Equal(got.AddedAt))
}

func TestStudyStore_SaveUpdates(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	study := store.StudyStore()
	added := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)

	require.NoError(t, study.Save(ctx, domain.StudyEntry{Literal: '亜', AddedAt: added}))
	require.NoError(t, study.Save(ctx, domain.StudyEntry{Literal: '亜', Confidence: 5, AddedAt: added}))

	entries, err := study.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Confidence)
}

func TestStudyStore_SaveInvalidConfidence(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.StudyStore().Save(context.Background(), domain.StudyEntry{Literal: '亜', Confidence: 9})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStudyStore_GetNotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.StudyStore().Get(context.Background(), '亜')
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStudyStore_ListOrder(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	study := store.StudyStore()
	t0 := time.Date(2024, 1, 1, 0, 0, 5, 0, time.UTC)

	require.NoError(t, study.Save(ctx, domain.StudyEntry{Literal: '个', AddedAt: t0.Add(500 * time.Millisecond)}))
	require.NoError(t, study.Save(ctx, domain.StudyEntry{Literal: '唖', AddedAt: t0}))
	require.NoError(t, study.Save(ctx, domain.StudyEntry{Literal: '亜', AddedAt: t0}))

	entries, err := study.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []rune{'亜', '唖', '个'}, []rune{entries[0].Literal, entries[1].Literal, entries[2].Literal})
}

func TestStudyStore_ListEmpty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	entries, err := store.StudyStore().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStudyStore_Delete(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	study := store.StudyStore()

	require.NoError(t, study.Save(ctx, domain.StudyEntry{Literal: '亜', AddedAt: time.Now()}))
	require.NoError(t, study.Delete(ctx, '亜'))
	assert.ErrorIs(t, study.Delete(ctx, '亜'), domain.ErrNotFound)
}
