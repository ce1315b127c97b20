package domain

import (
	"sort"
	"time"
)

// Database is the joined character/stroke store.
// Either side may be absent for a literal. It is read-only once built.
type Database struct {
	characters map[rune]CharacterRecord
	strokes    map[rune]StrokeRecipe
}

// NewDatabase creates a database from already joined maps.
// The maps are owned by the database after the call.
func NewDatabase(characters map[rune]CharacterRecord, strokes map[rune]StrokeRecipe) *Database {
	if characters == nil {
		characters = make(map[rune]CharacterRecord)
	}
	if strokes == nil {
		strokes = make(map[rune]StrokeRecipe)
	}
	return &Database{characters: characters, strokes: strokes}
}

// Character returns the record for literal, if present.
func (d *Database) Character(literal rune) (CharacterRecord, bool) {
	rec, ok := d.characters[literal]
	if !ok {
		return CharacterRecord{}, false
	}
	return rec.Clone(), true
}

// Strokes returns the stroke recipe for literal, if present.
func (d *Database) Strokes(literal rune) (StrokeRecipe, bool) {
	recipe, ok := d.strokes[literal]
	if !ok {
		return StrokeRecipe{}, false
	}
	return recipe.Clone(), true
}

// Literals returns every literal with a character record, ascending by code point.
func (d *Database) Literals() []rune {
	out := make([]rune, 0, len(d.characters))
	for r := range d.characters {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// StrokeLiterals returns every literal with a stroke recipe, ascending by code point.
func (d *Database) StrokeLiterals() []rune {
	out := make([]rune, 0, len(d.strokes))
	for r := range d.strokes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CharacterCount returns the number of character records.
func (d *Database) CharacterCount() int {
	return len(d.characters)
}

// StrokeCount returns the number of stroke recipes.
func (d *Database) StrokeCount() int {
	return len(d.strokes)
}

// BuildReport summarises a database build.
type BuildReport struct {
	// Characters is the number of records in the built database.
	Characters int

	// Strokes is the number of stroke recipes in the built database.
	Strokes int

	// Joined is the number of literals present on both sides.
	Joined int

	// Duplicates counts entries that replaced an earlier entry for the same literal.
	Duplicates int

	// Policy is the malformed-entry policy the build ran under.
	Policy MalformedEntryPolicy

	// Skipped lists entries dropped under the skip_and_report policy.
	Skipped []EntryError
}

// SnapshotInfo describes a persisted database snapshot.
type SnapshotInfo struct {
	// ID is unique per saved snapshot.
	ID string

	// CreatedAt is when the snapshot was saved.
	CreatedAt time.Time

	// Characters is the number of character records stored.
	Characters int

	// Strokes is the number of stroke recipes stored.
	Strokes int
}
