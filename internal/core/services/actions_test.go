package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

func individualResult(t *testing.T) *domain.SearchResult {
	t.Helper()
	recipe := individualRecipe(t)
	return &domain.SearchResult{Record: domain.CharacterRecord{Literal: '个'}, Strokes: &recipe}
}

func TestResultActionService_WriteDiagram(t *testing.T) {
	svc := NewResultActionService(nil, nil)
	path := filepath.Join(t.TempDir(), "out.svg")

	require.NoError(t, svc.WriteDiagram(context.Background(), individualResult(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, individualSVG, string(data))
}

func TestResultActionService_WriteDiagramNoStrokes(t *testing.T) {
	svc := NewResultActionService(nil, nil)
	result := &domain.SearchResult{Record: domain.CharacterRecord{Literal: '唖'}}

	err := svc.WriteDiagram(context.Background(), result, filepath.Join(t.TempDir(), "x.svg"))
	assert.ErrorIs(t, err, domain.ErrNoStrokes)

	assert.Error(t, svc.WriteDiagram(context.Background(), nil, "x.svg"))
}

func TestResultActionService_OpenDiagram(t *testing.T) {
	out := filepath.Join(t.TempDir(), "showcase.svg")
	settings := NewSettingsService(memory.NewConfigStoreWith(map[string]any{keyRenderOutput: out}))
	svc := NewResultActionService(nil, settings)

	var opened string
	svc.opener = func(path string) error {
		opened = path
		return nil
	}

	path, err := svc.OpenDiagram(context.Background(), individualResult(t))
	require.NoError(t, err)
	assert.Equal(t, out, path)
	assert.Equal(t, out, opened)
	assert.FileExists(t, out)
}

func TestResultActionService_OpenDiagramOpenerFails(t *testing.T) {
	out := filepath.Join(t.TempDir(), "showcase.svg")
	settings := NewSettingsService(memory.NewConfigStoreWith(map[string]any{keyRenderOutput: out}))
	svc := NewResultActionService(nil, settings)
	svc.opener = func(string) error { return errors.New("no display") }

	path, err := svc.OpenDiagram(context.Background(), individualResult(t))
	require.Error(t, err)
	assert.Equal(t, out, path)
	assert.FileExists(t, out)
}

func TestResultActionService_CopyLiteralNil(t *testing.T) {
	svc := NewResultActionService(nil, nil)
	assert.Error(t, svc.CopyLiteral(context.Background(), nil))
}

func TestResultActionService_CopyLiteral(t *testing.T) {
	svc := NewResultActionService(nil, nil)
	var copied string
	svc.copier = func(text string) error {
		copied = text
		return nil
	}

	err := svc.CopyLiteral(context.Background(), &domain.SearchResult{Record: domain.CharacterRecord{Literal: '水'}})

	require.NoError(t, err)
	assert.Equal(t, "水", copied)
}
