package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	SearchFunc func(
		ctx context.Context, query string, opts domain.SearchOptions,
	) ([]domain.SearchResult, error)
}

func (m *MockSearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, opts)
	}
	return nil, nil
}

func (m *MockSearchService) Lookup(_ context.Context, _ rune) (*domain.SearchResult, error) {
	return nil, domain.ErrNotFound
}

// MockResultActionService implements driving.ResultActionService for testing.
type MockResultActionService struct{}

func (m *MockResultActionService) CopyLiteral(_ context.Context, _ *domain.SearchResult) error {
	return nil
}

func (m *MockResultActionService) WriteDiagram(_ context.Context, _ *domain.SearchResult, _ string) error {
	return nil
}

func (m *MockResultActionService) OpenDiagram(_ context.Context, _ *domain.SearchResult) (string, error) {
	return "/tmp/diagram.svg", nil
}

// MockStudyService implements driving.StudyService for testing.
type MockStudyService struct {
	Items []driving.StudyItem
}

func (m *MockStudyService) Add(_ context.Context, literal rune) (*domain.StudyEntry, error) {
	return &domain.StudyEntry{Literal: literal}, nil
}

func (m *MockStudyService) List(_ context.Context) ([]driving.StudyItem, error) {
	return m.Items, nil
}

func (m *MockStudyService) Remove(_ context.Context, _ rune) error {
	return nil
}

func (m *MockStudyService) SetConfidence(_ context.Context, _ rune, _ int) error {
	return nil
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	Settings domain.AppSettings
	GetErr   error
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	s := m.Settings
	return &s, nil
}

func (m *MockSettingsService) Save(s *domain.AppSettings) error {
	m.Settings = *s
	return nil
}

func (m *MockSettingsService) Set(_, _ string) error {
	return nil
}

func (m *MockSettingsService) Keys() []string {
	return nil
}

func (m *MockSettingsService) Reset(_ ...string) error {
	m.Settings = domain.DefaultAppSettings()
	return nil
}

func (m *MockSettingsService) SetMalformedEntryPolicy(p domain.MalformedEntryPolicy) error {
	m.Settings.Build.OnMalformedEntry = p
	return nil
}

func (m *MockSettingsService) SetMatchMode(mode domain.MatchMode) error {
	m.Settings.Search.Match = mode
	return nil
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func TestNewPorts(t *testing.T) {
	search := &MockSearchService{}
	actions := &MockResultActionService{}
	study := &MockStudyService{}
	settings := &MockSettingsService{}

	ports := NewPorts(search, actions, study, settings)

	require.NotNil(t, ports)
	assert.Equal(t, search, ports.Search)
	assert.Equal(t, actions, ports.ResultAction)
	assert.Equal(t, study, ports.Study)
	assert.Equal(t, settings, ports.Settings)
}

func TestPorts_Validate_SearchOnly(t *testing.T) {
	ports := &Ports{Search: &MockSearchService{}}

	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingSearch(t *testing.T) {
	ports := &Ports{Study: &MockStudyService{}}

	assert.ErrorIs(t, ports.Validate(), ErrMissingSearchService)
}

func TestPorts_Validate_Nil(t *testing.T) {
	var ports *Ports

	assert.ErrorIs(t, ports.Validate(), ErrInvalidPorts)
	assert.NotErrorIs(t, ErrInvalidPorts, ErrMissingSearchService)
}
