package domain

// SearchOptions configures a search query.
type SearchOptions struct {
	// Match selects how meanings are compared with the query.
	// Zero value means MatchExact.
	Match MatchMode

	// Limit is the maximum number of results. Zero means unlimited.
	Limit int
}

// SearchResult represents a single search hit.
type SearchResult struct {
	// Record is the matched character record.
	Record CharacterRecord

	// Strokes is the character's stroke recipe, nil when absent.
	Strokes *StrokeRecipe
}

// HasStrokes reports whether the result carries stroke data.
func (r SearchResult) HasStrokes() bool {
	return r.Strokes != nil && len(r.Strokes.Strokes) > 0
}
