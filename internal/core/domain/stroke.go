package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// PathDescriptor is an SVG path description for one stroke.
// The string is opaque apart from its leading move command.
type PathDescriptor struct {
	D string
}

// Start returns the starting point of the stroke.
func (p PathDescriptor) Start() (x, y float64, err error) {
	return ParseStart(p.D)
}

// ParseStart extracts the starting point from a path description of the
// form "M<x>,<y>..." where y ends at the first 'c', 'C' or space.
// Only the start point is interpreted; the rest of the path is ignored.
func ParseStart(d string) (x, y float64, err error) {
	parts := strings.Split(d, ",")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("%w: %q has no y coordinate", ErrMalformedPath, d)
	}

	first := parts[0]
	if first == "" {
		return 0, 0, fmt.Errorf("%w: %q has no move command", ErrMalformedPath, d)
	}
	// Drop exactly one character, the move command.
	_, size := utf8.DecodeRuneInString(first)
	x, err = strconv.ParseFloat(first[size:], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q has non-numeric x", ErrMalformedPath, d)
	}

	second := parts[1]
	if i := strings.IndexAny(second, "cC "); i >= 0 {
		second = second[:i]
	}
	y, err = strconv.ParseFloat(second, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q has non-numeric y", ErrMalformedPath, d)
	}
	if !finite(x) || !finite(y) {
		return 0, 0, fmt.Errorf("%w: %q has a non-finite coordinate", ErrMalformedPath, d)
	}
	return x, y, nil
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// StrokeRecipe is the ordered list of stroke paths for one character.
// Order is document order and is the stroke order; it is never re-sorted.
type StrokeRecipe struct {
	Strokes []PathDescriptor
}

// Len returns the number of strokes.
func (r StrokeRecipe) Len() int {
	return len(r.Strokes)
}

// Clone returns a deep copy of the recipe.
func (r StrokeRecipe) Clone() StrokeRecipe {
	if r.Strokes == nil {
		return StrokeRecipe{}
	}
	out := make([]PathDescriptor, len(r.Strokes))
	copy(out, r.Strokes)
	return StrokeRecipe{Strokes: out}
}

// Palette is the ordered list of stroke colours used by the renderer.
// Stroke i is drawn with Palette[i].
type Palette []string
