package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
	assert.Equal(t, domain.DefaultAppSettings(), svc.GetDefaults())
}

func TestSettingsService_GetFromStore(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		keyOnMalformedEntry: "skip_and_report",
		keySearchMatch:      "contains",
		keySearchLimit:      int64(25),
		keySourceDictionary: "/data/kanjidic2.xml",
		keySourceStrokes:    "/data/kanjivg.xml",
		keyRenderOutput:     "out.svg",
	})
	svc := NewSettingsService(store)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.PolicySkipAndReport, settings.Build.OnMalformedEntry)
	assert.Equal(t, domain.MatchContains, settings.Search.Match)
	assert.Equal(t, 25, settings.Search.Limit)
	assert.Equal(t, "/data/kanjidic2.xml", settings.Sources.Dictionary)
	assert.Equal(t, "/data/kanjivg.xml", settings.Sources.Strokes)
	assert.Equal(t, "out.svg", settings.Render.Output)
}

func TestSettingsService_InvalidStoredValuesFallBack(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		keyOnMalformedEntry: "ignore",
		keySearchMatch:      "fuzzy",
	})
	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	assert.Equal(t, domain.PolicyAbort, settings.Build.OnMalformedEntry)
	assert.Equal(t, domain.MatchExact, settings.Search.Match)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	want := domain.DefaultAppSettings()
	want.Build.OnMalformedEntry = domain.PolicySkipAndReport
	want.Search.Limit = 10
	want.Sources.Dictionary = "dict.xml"
	require.NoError(t, svc.Save(&want))

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{keyOnMalformedEntry, "skip_and_report", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.PolicySkipAndReport, s.Build.OnMalformedEntry)
		}},
		{keySearchMatch, "contains", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.MatchContains, s.Search.Match)
		}},
		{keySearchLimit, "15", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 15, s.Search.Limit)
		}},
		{keySourceStrokes, "/tmp/kanjivg.xml", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "/tmp/kanjivg.xml", s.Sources.Strokes)
		}},
		{keyRenderOutput, "diagram.svg", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "diagram.svg", s.Render.Output)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			svc := NewSettingsService(memory.NewConfigStore())
			require.NoError(t, svc.Set(tt.key, tt.value))
			settings, err := svc.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_SetInvalid(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	assert.ErrorIs(t, svc.Set(keyOnMalformedEntry, "ignore"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set(keySearchMatch, "fuzzy"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set(keySearchLimit, "ten"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set(keySearchLimit, "-1"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set("search.mode", "hybrid"), domain.ErrInvalidInput)
}

func TestSettingsService_Keys(t *testing.T) {
	keys := NewSettingsService(memory.NewConfigStore()).Keys()

	assert.Len(t, keys, 6)
	assert.Equal(t, keyOnMalformedEntry, keys[0])
	assert.Contains(t, keys, keyRenderOutput)
}

func TestSettingsService_ResetKey(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		keySearchMatch:  "contains",
		keyRenderOutput: "out.svg",
	})
	svc := NewSettingsService(store)

	require.NoError(t, svc.Reset(keySearchMatch))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.MatchExact, settings.Search.Match)
	assert.Equal(t, "out.svg", settings.Render.Output)
}

func TestSettingsService_ResetAll(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		keyOnMalformedEntry: "skip_and_report",
		keySearchLimit:      int64(5),
	})
	svc := NewSettingsService(store)

	require.NoError(t, svc.Reset())

	assert.Empty(t, store.Keys())
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_ResetUnknownKeyChangesNothing(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{keySearchMatch: "contains"})
	svc := NewSettingsService(store)

	err := svc.Reset(keySearchMatch, "search.colour")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "contains", store.GetString(keySearchMatch))
}
