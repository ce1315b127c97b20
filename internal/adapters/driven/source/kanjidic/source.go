// Package kanjidic decodes the kanjidic2 XML dictionary.
package kanjidic

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kanji-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.DictionarySource = (*Source)(nil)

// Source reads a kanjidic2 document from a file.
type Source struct {
	path string
}

// New creates a source for the kanjidic2 file at path.
func New(path string) *Source {
	return &Source{path: path}
}

// Location returns the file path.
func (s *Source) Location() string {
	return s.path
}

// Entries decodes every character entry in document order.
func (s *Source) Entries(ctx context.Context) ([]domain.RawCharacterEntry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnreadable, err)
	}
	defer f.Close()

	entries, err := Decode(ctx, f)
	if err != nil {
		return nil, err
	}
	logger.Debug("Decoded %d dictionary entries from %s", len(entries), s.path)
	return entries, nil
}

// character mirrors one <character> element.
type character struct {
	Literal        string          `xml:"literal"`
	CodePoints     []typedValue    `xml:"codepoint>cp_value"`
	Radicals       []radValue      `xml:"radical>rad_value"`
	Misc           *misc           `xml:"misc"`
	ReadingMeaning *readingMeaning `xml:"reading_meaning"`
}

type typedValue struct {
	Type  string `xml:"cp_type,attr"`
	Value string `xml:",chardata"`
}

type radValue struct {
	Type  string `xml:"rad_type,attr"`
	Value string `xml:",chardata"`
}

type misc struct {
	Grade       int   `xml:"grade"`
	StrokeCount []int `xml:"stroke_count"`
	Freq        int   `xml:"freq"`
	JLPT        int   `xml:"jlpt"`
}

type readingMeaning struct {
	Groups []rmGroup `xml:"rmgroup"`
	Nanori []string  `xml:"nanori"`
}

type rmGroup struct {
	Readings []reading `xml:"reading"`
	Meanings []meaning `xml:"meaning"`
}

type reading struct {
	Type  string `xml:"r_type,attr"`
	Value string `xml:",chardata"`
}

type meaning struct {
	Lang  string `xml:"m_lang,attr"`
	Value string `xml:",chardata"`
}

// Decode reads a kanjidic2 document and returns its character entries.
// Elements other than <character> (the header, comments) are ignored.
func Decode(ctx context.Context, r io.Reader) ([]domain.RawCharacterEntry, error) {
	dec := xml.NewDecoder(r)
	var entries []domain.RawCharacterEntry
	sawRoot := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrSourceMalformed, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !sawRoot {
			sawRoot = true
			continue
		}
		if start.Name.Local != "character" {
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrSourceMalformed, err)
			}
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var c character
		if err := dec.DecodeElement(&c, &start); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", domain.ErrSourceMalformed, len(entries)+1, err)
		}
		entries = append(entries, c.toRaw())
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: no root element", domain.ErrSourceMalformed)
	}
	return entries, nil
}

func (c character) toRaw() domain.RawCharacterEntry {
	raw := domain.RawCharacterEntry{
		Literal: strings.TrimSpace(c.Literal),
	}
	for _, cp := range c.CodePoints {
		raw.Codepoints = append(raw.Codepoints, domain.TypedValue{Type: cp.Type, Value: cp.Value})
	}
	for _, rad := range c.Radicals {
		raw.Radicals = append(raw.Radicals, domain.TypedValue{Type: rad.Type, Value: rad.Value})
	}
	if c.Misc != nil {
		raw.Misc = &domain.RawMisc{
			Grade:       c.Misc.Grade,
			StrokeCount: c.Misc.StrokeCount,
			Frequency:   c.Misc.Freq,
			JLPT:        c.Misc.JLPT,
		}
	}
	if rm := c.ReadingMeaning; rm != nil {
		out := &domain.RawReadingMeaning{Nanori: rm.Nanori}
		for _, g := range rm.Groups {
			for _, rd := range g.Readings {
				out.Readings = append(out.Readings, domain.TypedValue{Type: rd.Type, Value: rd.Value})
			}
			for _, m := range g.Meanings {
				out.Meanings = append(out.Meanings, domain.TypedValue{Type: m.Lang, Value: m.Value})
			}
		}
		raw.ReadingMeaning = out
	}
	return raw
}
