package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

func TestNewSearchInput(t *testing.T) {
	input := NewSearchInput(styles.DefaultStyles())

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.True(t, input.Focused())
	assert.Equal(t, domain.MatchExact, input.Mode())
}

func TestNewSearchInput_NilStyles(t *testing.T) {
	input := NewSearchInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestSearchInput_Init(t *testing.T) {
	input := NewSearchInput(nil)

	assert.NotNil(t, input.Init())
}

func TestSearchInput_UpdateTypesRunes(t *testing.T) {
	input := NewSearchInput(nil)

	updated, _ := input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'水'}})

	assert.Same(t, input, updated)
	assert.Equal(t, "水", input.Value())
}

func TestSearchInput_ViewShowsLabelAndMode(t *testing.T) {
	input := NewSearchInput(nil)
	input.SetMode(domain.MatchContains)

	view := input.View()

	assert.Contains(t, view, "Search")
	assert.Contains(t, view, "[contains]")
}

func TestSearchInput_Query(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetValue("  water \t")

	// The text field stores a tab as a space.
	assert.Equal(t, "  water  ", input.Value())
	assert.Equal(t, "water", input.Query())
}

func TestSearchInput_SetModeIgnoresInvalid(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetMode(domain.MatchContains)
	input.SetMode(domain.MatchMode("fuzzy"))

	assert.Equal(t, domain.MatchContains, input.Mode())
}

func TestSearchInput_FocusBlur(t *testing.T) {
	input := NewSearchInput(nil)

	input.Blur()
	assert.False(t, input.Focused())

	input.Focus()
	assert.True(t, input.Focused())
}

func TestSearchInput_SetWidth(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		wantInner int
	}{
		{"wide", 100, 76},
		{"narrow clamps", 30, minInputWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := NewSearchInput(nil)

			input.SetWidth(tt.width)

			assert.Equal(t, tt.width, input.Width())
			assert.Equal(t, tt.wantInner, input.field.Width)
		})
	}
}

func TestSearchInput_Reset(t *testing.T) {
	input := NewSearchInput(nil)
	input.SetValue("fire")

	input.Reset()

	assert.Empty(t, input.Value())
}
