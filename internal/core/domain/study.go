package domain

import "time"

// Confidence bounds for study entries.
const (
	MinConfidence = 0
	MaxConfidence = 5
)

// StudyEntry is a character on the user's study list.
type StudyEntry struct {
	// Literal is the character being studied.
	Literal rune

	// Confidence is the self-rated recall level, MinConfidence..MaxConfidence.
	Confidence int

	// AddedAt is when the entry was first added.
	AddedAt time.Time
}

// ValidConfidence reports whether c is within bounds.
func ValidConfidence(c int) bool {
	return c >= MinConfidence && c <= MaxConfidence
}
