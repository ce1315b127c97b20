package services

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOnMalformedEntry = "build.on_malformed_entry"
	keySearchMatch      = "search.match"
	keySearchLimit      = "search.limit"
	keySourceDictionary = "sources.dictionary"
	keySourceStrokes    = "sources.strokes"
	keyRenderOutput     = "render.output"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Build: domain.BuildSettings{
			OnMalformedEntry: s.getPolicy(defaults.Build.OnMalformedEntry),
		},
		Search: domain.SearchSettings{
			Match: s.getMatchMode(defaults.Search.Match),
			Limit: s.getInt(keySearchLimit, defaults.Search.Limit),
		},
		Sources: domain.SourceSettings{
			Dictionary: s.getString(keySourceDictionary, defaults.Sources.Dictionary),
			Strokes:    s.getString(keySourceStrokes, defaults.Sources.Strokes),
		},
		Render: domain.RenderSettings{
			Output: s.getString(keyRenderOutput, defaults.Render.Output),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyOnMalformedEntry, settings.Build.OnMalformedEntry.String()); err != nil {
		return fmt.Errorf("save build policy: %w", err)
	}
	if err := s.configStore.Set(keySearchMatch, settings.Search.Match.String()); err != nil {
		return fmt.Errorf("save search match: %w", err)
	}
	if err := s.configStore.Set(keySearchLimit, settings.Search.Limit); err != nil {
		return fmt.Errorf("save search limit: %w", err)
	}
	if err := s.configStore.Set(keySourceDictionary, settings.Sources.Dictionary); err != nil {
		return fmt.Errorf("save dictionary source: %w", err)
	}
	if err := s.configStore.Set(keySourceStrokes, settings.Sources.Strokes); err != nil {
		return fmt.Errorf("save strokes source: %w", err)
	}
	if err := s.configStore.Set(keyRenderOutput, settings.Render.Output); err != nil {
		return fmt.Errorf("save render output: %w", err)
	}
	return nil
}

// Keys returns every settable key in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		keyOnMalformedEntry,
		keySearchMatch,
		keySearchLimit,
		keySourceDictionary,
		keySourceStrokes,
		keyRenderOutput,
	}
}

// Set updates one setting by its dotted key.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyOnMalformedEntry:
		return s.SetMalformedEntryPolicy(domain.MalformedEntryPolicy(value))
	case keySearchMatch:
		return s.SetMatchMode(domain.MatchMode(value))
	case keySearchLimit:
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 0 {
			return fmt.Errorf("%w: search.limit must be a non-negative integer", domain.ErrInvalidInput)
		}
		return s.configStore.Set(keySearchLimit, limit)
	case keySourceDictionary, keySourceStrokes, keyRenderOutput:
		return s.configStore.Set(key, value)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Reset removes stored values so the defaults apply again.
// With no keys every setting is reset. Unknown keys are rejected before
// anything is removed.
func (s *SettingsService) Reset(keys ...string) error {
	if len(keys) == 0 {
		keys = s.Keys()
	}
	valid := s.Keys()
	for _, key := range keys {
		if !slices.Contains(valid, key) {
			return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
		}
	}
	for _, key := range keys {
		if err := s.configStore.Unset(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

// SetMalformedEntryPolicy updates the build policy.
func (s *SettingsService) SetMalformedEntryPolicy(policy domain.MalformedEntryPolicy) error {
	if !policy.IsValid() {
		return fmt.Errorf("%w: malformed entry policy %q", domain.ErrInvalidInput, policy)
	}
	return s.configStore.Set(keyOnMalformedEntry, policy.String())
}

// SetMatchMode updates the default search match mode.
func (s *SettingsService) SetMatchMode(mode domain.MatchMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: match mode %q", domain.ErrInvalidInput, mode)
	}
	return s.configStore.Set(keySearchMatch, mode.String())
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPolicy(defaultVal domain.MalformedEntryPolicy) domain.MalformedEntryPolicy {
	policy := domain.MalformedEntryPolicy(s.configStore.GetString(keyOnMalformedEntry))
	if !policy.IsValid() {
		return defaultVal
	}
	return policy
}

func (s *SettingsService) getMatchMode(defaultVal domain.MatchMode) domain.MatchMode {
	mode := domain.MatchMode(s.configStore.GetString(keySearchMatch))
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
