package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoStrokes indicates a character is known but has no stroke data.
	ErrNoStrokes = errors.New("no stroke data")

	// Build Errors.

	// ErrMalformedPath indicates a path description does not start with
	// a move command followed by an x,y pair.
	ErrMalformedPath = errors.New("malformed path")

	// ErrMalformedIdentifier indicates a stroke entry identifier could not be
	// reduced to a code point.
	ErrMalformedIdentifier = errors.New("malformed identifier")

	// ErrPaletteExhausted indicates a character has more strokes than the
	// renderer palette has colours.
	ErrPaletteExhausted = errors.New("palette exhausted")

	// ErrSourceUnreadable indicates a source document could not be opened or read.
	ErrSourceUnreadable = errors.New("source unreadable")

	// ErrSourceMalformed indicates a source document failed structural parsing.
	ErrSourceMalformed = errors.New("source malformed")

	// Snapshot Errors.

	// ErrSnapshotMissing indicates no persisted snapshot exists yet.
	ErrSnapshotMissing = errors.New("snapshot missing")
)

// EntryError reports a failure for a single source entry.
// Key is the literal character or the raw identifier of the entry.
type EntryError struct {
	Key string
	Err error
}

// NewEntryError wraps err with the key of the offending entry.
func NewEntryError(key string, err error) *EntryError {
	return &EntryError{Key: key, Err: err}
}

// Error implements error.
func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %q: %v", e.Key, e.Err)
}

// Unwrap exposes the underlying taxonomy error to errors.Is.
func (e *EntryError) Unwrap() error {
	return e.Err
}
