package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

func asiaResult() domain.SearchResult {
	return domain.SearchResult{
		Record: domain.CharacterRecord{
			Literal:     '亜',
			OnReadings:  []string{"ア"},
			KunReadings: []string{"つ.ぐ"},
			Meanings:    []string{"Asia", "rank next"},
			Grade:       8,
			StrokeCount: 7,
		},
		Strokes: &domain.StrokeRecipe{Strokes: []domain.PathDescriptor{{D: "M1,2"}}},
	}
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns character records", func(t *testing.T) {
		mockSearch := &mockSearchService{results: []domain.SearchResult{asiaResult()}}
		server, err := NewServer(&Ports{Search: mockSearch, Render: &mockRenderService{}})
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "Asia", Match: "contains", Limit: 5})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Results, 1)
		got := output.Results[0]
		assert.Equal(t, "亜", got.Literal)
		assert.Equal(t, []string{"ア"}, got.OnReadings)
		assert.Equal(t, []string{"Asia", "rank next"}, got.Meanings)
		assert.Equal(t, 7, got.StrokeCount)
		assert.True(t, got.HasStrokes)
		assert.Equal(t, domain.MatchContains, mockSearch.lastOpts.Match)
		assert.Equal(t, 5, mockSearch.lastOpts.Limit)
	})

	t.Run("default limit applies", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		server, err := NewServer(&Ports{Search: mockSearch, Render: &mockRenderService{}})
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "x"})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Equal(t, defaultSearchLimit, mockSearch.lastOpts.Limit)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		mockSearch := &mockSearchService{err: errors.New("search failed")}
		server, err := NewServer(&Ports{Search: mockSearch, Render: &mockRenderService{}})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "test"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}

func TestServer_handleRender(t *testing.T) {
	ctx := context.Background()
	render := &mockRenderService{svgs: map[rune]string{'个': "<svg>个</svg>"}}
	server, err := NewServer(&Ports{Search: &mockSearchService{}, Render: render})
	require.NoError(t, err)

	t.Run("renders known literal", func(t *testing.T) {
		_, output, err := server.handleRender(ctx, nil, RenderInput{Literal: "个"})
		require.NoError(t, err)
		assert.True(t, output.Found)
		assert.Equal(t, "<svg>个</svg>", output.SVG)
	})

	t.Run("absent strokes is not an error", func(t *testing.T) {
		_, output, err := server.handleRender(ctx, nil, RenderInput{Literal: "亜"})
		require.NoError(t, err)
		assert.False(t, output.Found)
		assert.Empty(t, output.SVG)
	})

	t.Run("rejects more than one character", func(t *testing.T) {
		_, _, err := server.handleRender(ctx, nil, RenderInput{Literal: "亜个"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, _, err := server.handleRender(ctx, nil, RenderInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("propagates render errors", func(t *testing.T) {
		failing, err := NewServer(&Ports{
			Search: &mockSearchService{},
			Render: &mockRenderService{err: domain.ErrPaletteExhausted},
		})
		require.NoError(t, err)

		_, _, err = failing.handleRender(ctx, nil, RenderInput{Literal: "个"})
		assert.ErrorIs(t, err, domain.ErrPaletteExhausted)
	})
}
