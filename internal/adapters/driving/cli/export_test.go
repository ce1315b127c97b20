package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

func TestExportCmd_Stdout(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "export")
	require.NoError(t, err)

	var records []exportRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 3)

	assert.Equal(t, "水", records[0].Literal)
	assert.Equal(t, "氷", records[1].Literal)
	assert.Equal(t, "永", records[2].Literal)

	assert.Len(t, records[0].Strokes, 4)
	assert.Equal(t, []string{"ヒョウ"}, records[1].OnReadings)
	assert.Equal(t, 5, records[1].StrokeCount)
	assert.Empty(t, records[2].Strokes)
}

func TestExportCmd_File(t *testing.T) {
	setupTestServices(t)
	path := filepath.Join(t.TempDir(), "kanji.json")

	out, err := executeCommand(t, "export", "-o", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Exported 3 records to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var records []exportRecord
	require.NoError(t, json.Unmarshal(data, &records))
	assert.Len(t, records, 3)
}

func TestNewExportRecord_EmptyFieldsAreArrays(t *testing.T) {
	rec := newExportRecord(domain.CharacterRecord{Literal: '丶'}, nil)

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.JSONEq(t, `{"literal":"丶","on_readings":[],"kun_readings":[],"meanings":[]}`, string(data))
}

func TestExportCmd_NotConfigured(t *testing.T) {
	SetServices(Services{})

	_, err := executeCommand(t, "export")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog service not configured")
}
