package driven

// ConfigStore persists user settings under dotted keys such as "search.match".
// Absent keys read as the zero value; SettingsService supplies defaults.
type ConfigStore interface {
	// Get returns the raw value stored under key.
	Get(key string) (any, bool)

	// GetString returns the value under key, or "" if it is absent or not a string.
	GetString(key string) string

	// GetInt returns the value under key, or 0 if it is absent or not an integer.
	GetInt(key string) int

	// Set stores value under key and persists it.
	Set(key string, value any) error

	// Unset removes key so that reads fall back to the default.
	// Removing an absent key is not an error.
	Unset(key string) error

	// Keys returns the stored keys in ascending order.
	Keys() []string

	// Path describes where the settings live.
	Path() string
}
