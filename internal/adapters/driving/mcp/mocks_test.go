package mcp

import (
	"context"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results  []domain.SearchResult
	lookup   map[rune]domain.SearchResult
	err      error
	lastOpts domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.lastOpts = opts
	return m.results, m.err
}

func (m *mockSearchService) Lookup(_ context.Context, literal rune) (*domain.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	result, ok := m.lookup[literal]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &result, nil
}

// mockRenderService is a mock implementation of driving.RenderService.
type mockRenderService struct {
	svgs map[rune]string
	err  error
}

func (m *mockRenderService) Render(_ domain.StrokeRecipe) (string, error) {
	return "<svg/>", m.err
}

func (m *mockRenderService) RenderLiteral(_ context.Context, literal rune) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	svg, ok := m.svgs[literal]
	return svg, ok, nil
}

// mockStudyService is a mock implementation of driving.StudyService.
type mockStudyService struct {
	items []driving.StudyItem
	err   error
}

func (m *mockStudyService) Add(_ context.Context, literal rune) (*domain.StudyEntry, error) {
	return &domain.StudyEntry{Literal: literal}, m.err
}

func (m *mockStudyService) List(_ context.Context) ([]driving.StudyItem, error) {
	return m.items, m.err
}

func (m *mockStudyService) Remove(_ context.Context, _ rune) error {
	return m.err
}

func (m *mockStudyService) SetConfidence(_ context.Context, _ rune, _ int) error {
	return m.err
}

func validPorts() *Ports {
	return &Ports{
		Search: &mockSearchService{},
		Render: &mockRenderService{},
	}
}
