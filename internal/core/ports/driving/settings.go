package driving

import "github.com/custodia-labs/kanji-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates one setting by its dotted key.
	Set(key, value string) error

	// Keys returns every settable key in display order.
	Keys() []string

	// Reset restores the given keys to their defaults, or every key when none is given.
	Reset(keys ...string) error

	// SetMalformedEntryPolicy updates the build policy.
	SetMalformedEntryPolicy(policy domain.MalformedEntryPolicy) error

	// SetMatchMode updates the default search match mode.
	SetMatchMode(mode domain.MatchMode) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
