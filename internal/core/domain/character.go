package domain

import (
	"fmt"
	"strings"
)

// CharacterRecord is the normalised dictionary record for one character.
type CharacterRecord struct {
	// Literal is the character itself. It is the unique key.
	Literal rune

	// OnReadings are the Sino-Japanese readings in source order.
	OnReadings []string

	// KunReadings are the native Japanese readings in source order.
	KunReadings []string

	// Meanings are the English meanings in source order.
	Meanings []string

	// Nanori are readings used only in names.
	Nanori []string

	// Grade is the school grade (0 if absent).
	Grade int

	// StrokeCount is the accepted stroke count (0 if absent).
	StrokeCount int

	// Frequency is the newspaper frequency rank (0 if absent).
	Frequency int

	// JLPT is the former JLPT level (0 if absent).
	JLPT int
}

// HasMeaning reports whether m is one of the record's meanings.
func (c *CharacterRecord) HasMeaning(m string) bool {
	for _, meaning := range c.Meanings {
		if meaning == m {
			return true
		}
	}
	return false
}

// Summary returns a one-line description for listings.
func (c *CharacterRecord) Summary() string {
	return fmt.Sprintf("kanji: %c, meanings: [%s], on_readings: [%s], kun_readings: [%s]",
		c.Literal,
		strings.Join(c.Meanings, ", "),
		strings.Join(c.OnReadings, ", "),
		strings.Join(c.KunReadings, ", "))
}

// Clone returns a deep copy of the record.
func (c CharacterRecord) Clone() CharacterRecord {
	c.OnReadings = cloneStrings(c.OnReadings)
	c.KunReadings = cloneStrings(c.KunReadings)
	c.Meanings = cloneStrings(c.Meanings)
	c.Nanori = cloneStrings(c.Nanori)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
