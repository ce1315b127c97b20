package domain

// RawCharacterEntry is one decoded kanjidic2 character entry.
// It is the dictionary source's output before record building.
type RawCharacterEntry struct {
	// Literal is the character text as it appears in the source.
	Literal string

	// Codepoints are the typed code point values (ucs, jis208, ...).
	Codepoints []TypedValue

	// Radicals are the typed radical numbers (classical, nelson_c, ...).
	Radicals []TypedValue

	// Misc holds the optional grade/stroke count/frequency/JLPT block.
	Misc *RawMisc

	// ReadingMeaning is nil when the entry carries no reading/meaning block.
	ReadingMeaning *RawReadingMeaning
}

// TypedValue is a source value tagged with its declared type attribute.
type TypedValue struct {
	Type  string
	Value string
}

// RawMisc is the miscellaneous block of a dictionary entry.
// Zero means the field was absent.
type RawMisc struct {
	Grade       int
	StrokeCount []int
	Frequency   int
	JLPT        int
}

// RawReadingMeaning is the reading/meaning block of a dictionary entry.
type RawReadingMeaning struct {
	// Readings are tagged by kind (ja_on, ja_kun, pinyin, ...).
	Readings []TypedValue

	// Meanings are tagged by language. An empty Type means English.
	Meanings []TypedValue

	// Nanori are name readings.
	Nanori []string
}

// RawStrokeEntry is one decoded KanjiVG character entry.
type RawStrokeEntry struct {
	// ID is the raw identifier, e.g. "kvg:kanji_04e2a".
	ID string

	// Root is the top-level stroke group.
	Root RawGroupNode
}

// RawGroupNode is a recursive stroke group.
// Each node is owned by its parent; the tree has no back-edges.
type RawGroupNode struct {
	// Paths are the path descriptions directly owned by this group.
	Paths []string

	// Groups are the child groups in document order.
	Groups []RawGroupNode
}
