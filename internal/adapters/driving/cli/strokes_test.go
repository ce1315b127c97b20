package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

func TestStrokesCmd_Flags(t *testing.T) {
	for _, name := range []string{"pick", "output", "stdout", "open"} {
		assert.NotNil(t, strokesCmd.Flags().Lookup(name), "missing --%s", name)
	}
	assert.Equal(t, "0", strokesCmd.Flags().Lookup("pick").DefValue)
}

func TestStrokesCmd_WritesSVGWhenNotTerminal(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "strokes", "水")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.True(t, strings.HasSuffix(out, "</svg>"))
	assert.Equal(t, 4, strings.Count(out, "<path "))
	assert.Contains(t, out, `style="fill:none;stroke:darkmagenta;stroke-width:2" d="M54.5,15.5c1,1,1.5,3,1.5,5"`)
	assert.Contains(t, out, `<text x="54.5" y="15.5" style="fill:darkmagenta" font-size="5">1</text>`)
}

func TestStrokesCmd_ByMeaning(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "strokes", "ice")

	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "<path "))
}

func TestStrokesCmd_MultipleMatchesNeedPick(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "strokes", "水氷")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 characters match; choose one with --pick")
	assert.Contains(t, out, "[1] kanji: 水")
	assert.Contains(t, out, "[2] kanji: 氷")
}

func TestStrokesCmd_Pick(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "strokes", "--pick", "2", "水氷")

	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "<path "))
}

func TestStrokesCmd_PickOutOfRange(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "strokes", "-p", "3", "水氷")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStrokesCmd_StrokeOnlyCharacter(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "strokes", "丶")

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "<path "))
}

func TestStrokesCmd_NoStrokeData(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "strokes", "永")

	assert.ErrorIs(t, err, domain.ErrNoStrokes)
}

func TestStrokesCmd_NoMatch(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "strokes", "fire")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStrokesCmd_OutputFile(t *testing.T) {
	setupTestServices(t)
	path := filepath.Join(t.TempDir(), "water.svg")

	out, err := executeCommand(t, "strokes", "--output", path, "水")

	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 水 (4 strokes) to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg "))
}

func TestStrokesCmd_Open(t *testing.T) {
	env := setupTestServices(t)

	out, err := executeCommand(t, "strokes", "--open", "水")

	require.NoError(t, err)
	assert.Contains(t, out, "Opened /tmp/showcase.svg")
	assert.Equal(t, []rune{'水'}, env.actions.opened)
}

func TestDefaultRenderOutput(t *testing.T) {
	env := setupTestServices(t)
	assert.Equal(t, "showcase.svg", defaultRenderOutput())

	require.NoError(t, env.config.Set("render.output", "custom.svg"))
	assert.Equal(t, "custom.svg", defaultRenderOutput())
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, isTerminal(&strings.Builder{}))
}
