// Package kanjivg decodes the KanjiVG stroke atlas.
package kanjivg

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kanji-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.StrokeSource = (*Source)(nil)

// Source reads a KanjiVG document from a file.
type Source struct {
	path string
}

// New creates a source for the KanjiVG file at path.
func New(path string) *Source {
	return &Source{path: path}
}

// Location returns the file path.
func (s *Source) Location() string {
	return s.path
}

// Entries decodes every stroke entry in document order.
func (s *Source) Entries(ctx context.Context) ([]domain.RawStrokeEntry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnreadable, err)
	}
	defer f.Close()

	entries, err := Decode(ctx, f)
	if err != nil {
		return nil, err
	}
	logger.Debug("Decoded %d stroke entries from %s", len(entries), s.path)
	return entries, nil
}

// kanji mirrors one <kanji> element.
type kanji struct {
	ID     string  `xml:"id,attr"`
	Paths  []path  `xml:"path"`
	Groups []group `xml:"g"`
}

type group struct {
	Paths  []path  `xml:"path"`
	Groups []group `xml:"g"`
}

type path struct {
	D string `xml:"d,attr"`
}

// Decode reads a KanjiVG document and returns its stroke entries.
func Decode(ctx context.Context, r io.Reader) ([]domain.RawStrokeEntry, error) {
	dec := xml.NewDecoder(r)
	var entries []domain.RawStrokeEntry
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
		if start.Name.Local != "kanji" {
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrSourceMalformed, err)
			}
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var k kanji
		if err := dec.DecodeElement(&k, &start); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", domain.ErrSourceMalformed, len(entries)+1, err)
		}
		entries = append(entries, k.toRaw())
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: no root element", domain.ErrSourceMalformed)
	}
	return entries, nil
}

// toRaw uses the single top-level group as the root. Any other shape is
// wrapped in a synthetic root holding the kanji's own paths and groups.
func (k kanji) toRaw() domain.RawStrokeEntry {
	if len(k.Paths) == 0 && len(k.Groups) == 1 {
		return domain.RawStrokeEntry{ID: k.ID, Root: k.Groups[0].toRaw()}
	}
	return domain.RawStrokeEntry{ID: k.ID, Root: group{Paths: k.Paths, Groups: k.Groups}.toRaw()}
}

func (g group) toRaw() domain.RawGroupNode {
	node := domain.RawGroupNode{}
	for _, p := range g.Paths {
		node.Paths = append(node.Paths, p.D)
	}
	for _, child := range g.Groups {
		node.Groups = append(node.Groups, child.toRaw())
	}
	return node
}
