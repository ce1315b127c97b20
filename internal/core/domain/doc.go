// Package domain holds the kanji data model and its invariants.
//
// Raw*Entry types are decoded source documents. CharacterRecord and
// StrokeRecipe are their normalised forms, keyed by code point, and
// Database is the read-only join of the two that every query runs against.
// StudyEntry and AppSettings cover the user's own state.
//
// The package imports the standard library only.
package domain
