package mcp

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

// defaultSearchLimit caps tool results when the caller gives no limit.
const defaultSearchLimit = 20

// SearchInput is the input schema for the search_kanji tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"characters to look up, or an English meaning"`
	Match string `json:"match,omitempty" jsonschema:"meaning match mode: exact (default) or contains"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 20)"`
}

// SearchOutput is the output schema for the search_kanji tool.
type SearchOutput struct {
	Results []CharacterOutput `json:"results"`
	Count   int               `json:"count"`
}

// CharacterOutput is one character record.
type CharacterOutput struct {
	Literal     string   `json:"literal"`
	OnReadings  []string `json:"on_readings"`
	KunReadings []string `json:"kun_readings"`
	Meanings    []string `json:"meanings"`
	Nanori      []string `json:"nanori,omitempty"`
	Grade       int      `json:"grade,omitempty"`
	StrokeCount int      `json:"stroke_count,omitempty"`
	Frequency   int      `json:"frequency,omitempty"`
	JLPT        int      `json:"jlpt,omitempty"`
	HasStrokes  bool     `json:"has_strokes"`
}

// RenderInput is the input schema for the render_strokes tool.
type RenderInput struct {
	Literal string `json:"literal" jsonschema:"a single character"`
}

// RenderOutput is the output schema for the render_strokes tool.
type RenderOutput struct {
	Literal string `json:"literal"`
	Found   bool   `json:"found"`
	SVG     string `json:"svg,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_kanji",
		Description: "Find kanji that occur in the query or whose English meaning matches it",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render_strokes",
		Description: "Draw the stroke order of one kanji as an SVG document",
	}, s.handleRender)
}

func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{
		Match: domain.MatchMode(input.Match),
		Limit: input.Limit,
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultSearchLimit
	}

	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]CharacterOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = characterOutput(&results[i])
	}
	return nil, output, nil
}

func (s *Server) handleRender(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenderInput,
) (*mcp.CallToolResult, RenderOutput, error) {
	literal, err := singleRune(input.Literal)
	if err != nil {
		return nil, RenderOutput{}, err
	}

	svg, ok, err := s.ports.Render.RenderLiteral(ctx, literal)
	if err != nil {
		return nil, RenderOutput{}, err
	}
	return nil, RenderOutput{Literal: input.Literal, Found: ok, SVG: svg}, nil
}

func characterOutput(result *domain.SearchResult) CharacterOutput {
	rec := result.Record
	return CharacterOutput{
		Literal:     string(rec.Literal),
		OnReadings:  rec.OnReadings,
		KunReadings: rec.KunReadings,
		Meanings:    rec.Meanings,
		Nanori:      rec.Nanori,
		Grade:       rec.Grade,
		StrokeCount: rec.StrokeCount,
		Frequency:   rec.Frequency,
		JLPT:        rec.JLPT,
		HasStrokes:  result.HasStrokes(),
	}
}

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%w: expected a single character, got %q", domain.ErrInvalidInput, s)
	}
	return r, nil
}
