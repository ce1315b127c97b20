package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/services"
)

func TestBuildCmd_ForceFlag(t *testing.T) {
	flag := buildCmd.Flags().Lookup("force")

	require.NotNil(t, flag)
	assert.Equal(t, "f", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestBuildCmd_FirstBuild(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "build")

	require.NoError(t, err)
	assert.Contains(t, out, "Build complete")
	assert.Contains(t, out, "Characters: 3")
	assert.Contains(t, out, "Stroke recipes: 3")
	assert.Contains(t, out, "With both: 2")
	assert.Contains(t, out, "On malformed entry: abort")
	assert.NotContains(t, out, "Skipped")
}

func TestBuildCmd_SnapshotUpToDate(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "build")
	require.NoError(t, err)

	out, err := executeCommand(t, "build")

	require.NoError(t, err)
	assert.Contains(t, out, "is up to date (3 characters, 3 stroke recipes)")
	assert.Contains(t, out, "Use --force to rebuild.")
}

func TestBuildCmd_Force(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "build")
	require.NoError(t, err)

	out, err := executeCommand(t, "build", "--force")

	require.NoError(t, err)
	assert.Contains(t, out, "Build complete")
}

func TestBuildCmd_SkipAndReport(t *testing.T) {
	dict, strokes := testSources()
	strokes.entries = append(strokes.entries, strokeEntry("kvg:kanji_zz", "M1,1c1,1"))
	dict.entries = append(dict.entries, domain.RawCharacterEntry{Literal: "水", Misc: &domain.RawMisc{Grade: 2}})

	catalog := services.NewCatalogService(dict, strokes, memory.NewSnapshotStore(),
		services.NewDatabaseBuilder(domain.PolicySkipAndReport))
	SetServices(Services{Catalog: catalog})
	t.Cleanup(func() { SetServices(Services{}) })

	out, err := executeCommand(t, "build")

	require.NoError(t, err)
	assert.Contains(t, out, "Duplicates replaced: 1")
	assert.Contains(t, out, "On malformed entry: skip_and_report")
	assert.Contains(t, out, "Skipped: 1")
	assert.Contains(t, out, `entry "kvg:kanji_zz"`)
}

func TestBuildCmd_AbortOnMalformedEntry(t *testing.T) {
	dict, strokes := testSources()
	strokes.entries = append(strokes.entries, strokeEntry("kvg:04e00", "M1,1c1,1"))

	catalog := services.NewCatalogService(dict, strokes, memory.NewSnapshotStore(), nil)
	SetServices(Services{Catalog: catalog})
	t.Cleanup(func() { SetServices(Services{}) })

	_, err := executeCommand(t, "build")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedIdentifier)
}

func TestBuildCmd_NotConfigured(t *testing.T) {
	SetServices(Services{})

	_, err := executeCommand(t, "build")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog service not configured")
}
