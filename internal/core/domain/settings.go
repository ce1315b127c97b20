package domain

const unknownDescription = "Unknown"

// MalformedEntryPolicy decides what a build does with an entry it cannot parse.
type MalformedEntryPolicy string

// Available malformed-entry policies.
const (
	// PolicyAbort stops the build at the first malformed entry.
	PolicyAbort MalformedEntryPolicy = "abort"

	// PolicySkipAndReport drops malformed entries and lists them in the build report.
	PolicySkipAndReport MalformedEntryPolicy = "skip_and_report"
)

// IsValid returns true if the policy is recognised.
func (p MalformedEntryPolicy) IsValid() bool {
	switch p {
	case PolicyAbort, PolicySkipAndReport:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p MalformedEntryPolicy) String() string {
	return string(p)
}

// Description returns a human-readable description of the policy.
func (p MalformedEntryPolicy) Description() string {
	switch p {
	case PolicyAbort:
		return "Abort (fail the build on the first bad entry)"
	case PolicySkipAndReport:
		return "Skip and report (drop bad entries, list them)"
	default:
		return unknownDescription
	}
}

// MatchMode defines how a query is compared with meanings.
type MatchMode string

// Available match modes.
const (
	// MatchExact requires a meaning to equal the query.
	MatchExact MatchMode = "exact"

	// MatchContains requires a meaning to contain the query, ignoring case and width.
	MatchContains MatchMode = "contains"
)

// IsValid returns true if the match mode is recognised.
func (m MatchMode) IsValid() bool {
	switch m {
	case MatchExact, MatchContains:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m MatchMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m MatchMode) Description() string {
	switch m {
	case MatchExact:
		return "Exact (meaning equals query)"
	case MatchContains:
		return "Contains (meaning contains query, case-insensitive)"
	default:
		return unknownDescription
	}
}

// BuildSettings holds database build configuration.
type BuildSettings struct {
	// OnMalformedEntry is the policy for unparseable source entries.
	OnMalformedEntry MalformedEntryPolicy
}

// SearchSettings holds search behaviour configuration.
type SearchSettings struct {
	// Match is the default meaning match mode.
	Match MatchMode

	// Limit caps the number of results; 0 means unlimited.
	Limit int
}

// SourceSettings holds the locations of the source documents.
type SourceSettings struct {
	// Dictionary is the kanjidic2 XML path.
	Dictionary string

	// Strokes is the KanjiVG XML path.
	Strokes string
}

// RenderSettings holds stroke diagram output configuration.
type RenderSettings struct {
	// Output is the file written by the strokes command.
	Output string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Build   BuildSettings
	Search  SearchSettings
	Sources SourceSettings
	Render  RenderSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Source paths are left empty; the bootstrap config fills them.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Build: BuildSettings{
			OnMalformedEntry: PolicyAbort,
		},
		Search: SearchSettings{
			Match: MatchExact,
			Limit: 0,
		},
		Render: RenderSettings{
			Output: "showcase.svg",
		},
	}
}

// AllPolicies returns all malformed-entry policies.
func AllPolicies() []MalformedEntryPolicy {
	return []MalformedEntryPolicy{
		PolicyAbort,
		PolicySkipAndReport,
	}
}

// AllMatchModes returns all match modes.
func AllMatchModes() []MatchMode {
	return []MatchMode{
		MatchExact,
		MatchContains,
	}
}
