package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

func sampleDatabase() *domain.Database {
	return domain.NewDatabase(
		map[rune]domain.CharacterRecord{
			'亜': {Literal: '亜', OnReadings: []string{"ア"}, Meanings: []string{"Asia"}},
			'唖': {Literal: '唖', Meanings: []string{"mute", "dumb"}},
		},
		map[rune]domain.StrokeRecipe{
			'亜': {Strokes: []domain.PathDescriptor{{D: "M1,2c3,4"}}},
		},
	)
}

func TestSnapshotStore_LoadMissing(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrSnapshotMissing)

	_, err = store.Info(ctx)
	assert.ErrorIs(t, err, domain.ErrSnapshotMissing)
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()
	db := sampleDatabase()

	info, err := store.Save(ctx, db)
	require.NoError(t, err)
	assert.NotEmpty(t, info.ID)
	assert.Equal(t, 2, info.Characters)
	assert.Equal(t, 1, info.Strokes)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, db, loaded)
}

func TestSnapshotStore_SaveAssignsNewID(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	first, err := store.Save(ctx, sampleDatabase())
	require.NoError(t, err)
	second, err := store.Save(ctx, sampleDatabase())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	got, err := store.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestSnapshotStore_Clear(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	_, err := store.Save(ctx, sampleDatabase())
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrSnapshotMissing)
}
