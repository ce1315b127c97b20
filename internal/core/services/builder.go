package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/logger"
)

// Reading and meaning tags kept by the record builder.
const (
	readingOn       = "ja_on"
	readingKun      = "ja_kun"
	meaningLanguage = "en"
)

// strokeIDPrefix precedes the hex code point in a stroke entry identifier.
const strokeIDPrefix = "kvg:kanji_"

// FlattenGroup returns the paths of a stroke group in stroke order.
// A node's own paths come before its child groups, depth first.
func FlattenGroup(node domain.RawGroupNode) []domain.PathDescriptor {
	out := make([]domain.PathDescriptor, 0, len(node.Paths))
	return appendGroup(out, node)
}

func appendGroup(out []domain.PathDescriptor, node domain.RawGroupNode) []domain.PathDescriptor {
	for _, d := range node.Paths {
		out = append(out, domain.PathDescriptor{D: d})
	}
	for _, child := range node.Groups {
		out = appendGroup(out, child)
	}
	return out
}

// BuildCharacterRecord normalises a raw dictionary entry.
// Only on and kun readings and English meanings are kept.
func BuildCharacterRecord(raw domain.RawCharacterEntry) (domain.CharacterRecord, error) {
	literal, err := parseLiteral(raw.Literal)
	if err != nil {
		return domain.CharacterRecord{}, domain.NewEntryError(raw.Literal, err)
	}

	rec := domain.CharacterRecord{
		Literal:     literal,
		OnReadings:  []string{},
		KunReadings: []string{},
		Meanings:    []string{},
		Nanori:      []string{},
	}

	if rm := raw.ReadingMeaning; rm != nil {
		for _, r := range rm.Readings {
			switch r.Type {
			case readingOn:
				rec.OnReadings = append(rec.OnReadings, r.Value)
			case readingKun:
				rec.KunReadings = append(rec.KunReadings, r.Value)
			}
		}
		for _, m := range rm.Meanings {
			if m.Type == "" || m.Type == meaningLanguage {
				rec.Meanings = append(rec.Meanings, m.Value)
			}
		}
		rec.Nanori = append(rec.Nanori, rm.Nanori...)
	}

	if misc := raw.Misc; misc != nil {
		rec.Grade = misc.Grade
		rec.Frequency = misc.Frequency
		rec.JLPT = misc.JLPT
		if len(misc.StrokeCount) > 0 {
			// The first count is the accepted one; the rest are common miscounts.
			rec.StrokeCount = misc.StrokeCount[0]
		}
	}

	return rec, nil
}

func parseLiteral(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: literal %q is not a single character", domain.ErrSourceMalformed, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("%w: literal %q is not valid UTF-8", domain.ErrSourceMalformed, s)
	}
	return r, nil
}

// ParseStrokeIdentifier converts an identifier like "kvg:kanji_04e2a" to its character.
// The identifier must start with the "kvg:kanji_" prefix; the remainder is
// read as a hexadecimal code point.
func ParseStrokeIdentifier(id string) (rune, error) {
	hex, ok := strings.CutPrefix(id, strokeIDPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q lacks the %q prefix", domain.ErrMalformedIdentifier, id, strokeIDPrefix)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a hex code point", domain.ErrMalformedIdentifier, id)
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, fmt.Errorf("%w: %q is not a valid code point", domain.ErrMalformedIdentifier, id)
	}
	return r, nil
}

// BuildStrokeRecipe flattens a raw stroke entry keyed by its character.
func BuildStrokeRecipe(raw domain.RawStrokeEntry) (rune, domain.StrokeRecipe, error) {
	literal, err := ParseStrokeIdentifier(raw.ID)
	if err != nil {
		return 0, domain.StrokeRecipe{}, domain.NewEntryError(raw.ID, err)
	}
	return literal, domain.StrokeRecipe{Strokes: FlattenGroup(raw.Root)}, nil
}

// DatabaseBuilder joins dictionary and stroke entries into a Database.
type DatabaseBuilder struct {
	policy domain.MalformedEntryPolicy
}

// NewDatabaseBuilder creates a builder. An invalid policy falls back to abort.
func NewDatabaseBuilder(policy domain.MalformedEntryPolicy) *DatabaseBuilder {
	if !policy.IsValid() {
		policy = domain.PolicyAbort
	}
	return &DatabaseBuilder{policy: policy}
}

// Policy returns the builder's malformed-entry policy.
func (b *DatabaseBuilder) Policy() domain.MalformedEntryPolicy {
	return b.policy
}

// Build normalises and joins the raw entries by literal.
// Literals present on only one side keep the other side absent.
// A later entry for the same literal replaces an earlier one.
func (b *DatabaseBuilder) Build(
	characters []domain.RawCharacterEntry,
	strokes []domain.RawStrokeEntry,
) (*domain.Database, *domain.BuildReport, error) {
	defer logger.Stage("Database Build")()
	logger.Debug("Raw entries: %d characters, %d stroke entries", len(characters), len(strokes))

	report := &domain.BuildReport{Policy: b.Policy()}
	records := make(map[rune]domain.CharacterRecord, len(characters))
	recipes := make(map[rune]domain.StrokeRecipe, len(strokes))

	for _, raw := range characters {
		rec, err := BuildCharacterRecord(raw)
		if err != nil {
			if skipErr := b.handle(report, err); skipErr != nil {
				return nil, nil, fmt.Errorf("build character records: %w", skipErr)
			}
			continue
		}
		if _, exists := records[rec.Literal]; exists {
			report.Duplicates++
			logger.Debug("Duplicate character entry %q replaces earlier entry", raw.Literal)
		}
		records[rec.Literal] = rec
	}

	for _, raw := range strokes {
		literal, recipe, err := BuildStrokeRecipe(raw)
		if err != nil {
			if skipErr := b.handle(report, err); skipErr != nil {
				return nil, nil, fmt.Errorf("build stroke recipes: %w", skipErr)
			}
			continue
		}
		if _, exists := recipes[literal]; exists {
			report.Duplicates++
			logger.Debug("Duplicate stroke entry %q replaces earlier entry", raw.ID)
		}
		recipes[literal] = recipe
	}

	for literal := range records {
		if _, ok := recipes[literal]; ok {
			report.Joined++
		}
	}
	report.Characters = len(records)
	report.Strokes = len(recipes)

	logger.Info("Built database: %d characters, %d stroke recipes, %d joined, %d skipped",
		report.Characters, report.Strokes, report.Joined, len(report.Skipped))

	return domain.NewDatabase(records, recipes), report, nil
}

// handle applies the policy to an entry failure.
// It returns the error to abort with, or nil when the entry was skipped.
func (b *DatabaseBuilder) handle(report *domain.BuildReport, err error) error {
	if b.policy == domain.PolicyAbort {
		return err
	}
	var entryErr *domain.EntryError
	if !errors.As(err, &entryErr) {
		return err
	}
	report.Skipped = append(report.Skipped, *entryErr)
	logger.Report("skipped malformed entry %q: %v", entryErr.Key, entryErr.Err)
	return nil
}
