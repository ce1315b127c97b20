package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNoStrokes", ErrNoStrokes},
		{"ErrMalformedPath", ErrMalformedPath},
		{"ErrMalformedIdentifier", ErrMalformedIdentifier},
		{"ErrPaletteExhausted", ErrPaletteExhausted},
		{"ErrSourceUnreadable", ErrSourceUnreadable},
		{"ErrSourceMalformed", ErrSourceMalformed},
		{"ErrSnapshotMissing", ErrSnapshotMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

// TestErrors_AreDistinct tests that build errors do not alias each other
func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrMalformedPath,
		ErrMalformedIdentifier,
		ErrPaletteExhausted,
		ErrSourceUnreadable,
		ErrSourceMalformed,
	}
	for i, a := range errs {
		for j, b := range errs {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}

func TestEntryError(t *testing.T) {
	err := NewEntryError("kvg:kanji_zz", ErrMalformedIdentifier)

	assert.Equal(t, `entry "kvg:kanji_zz": malformed identifier`, err.Error())
	assert.True(t, errors.Is(err, ErrMalformedIdentifier))
	assert.False(t, errors.Is(err, ErrMalformedPath))
}

func TestEntryError_WrappedTwice(t *testing.T) {
	inner := fmt.Errorf("%w: bad hex", ErrMalformedIdentifier)
	err := fmt.Errorf("build: %w", NewEntryError("kvg:kanji_zz", inner))

	var entryErr *EntryError
	assert.True(t, errors.As(err, &entryErr))
	assert.Equal(t, "kvg:kanji_zz", entryErr.Key)
	assert.True(t, errors.Is(err, ErrMalformedIdentifier))
}
