// Package input holds the search query box.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

const (
	queryCharLimit = 64
	minInputWidth  = 20

	// chrome is the room taken by the label and the mode badge.
	chrome = 24
)

// SearchInput is a single-line query box with a match mode badge.
// A query is either one character or an English meaning, so the box
// stays short.
type SearchInput struct {
	field  textinput.Model
	styles *styles.Styles
	mode   domain.MatchMode
	width  int
}

func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.Placeholder = "Character or English meaning..."
	field.CharLimit = queryCharLimit
	field.Focus()

	in := &SearchInput{field: field, styles: s, mode: domain.MatchExact}
	in.SetWidth(64)
	return in
}

func (s *SearchInput) Init() tea.Cmd { return textinput.Blink }

func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)
	return s, cmd
}

func (s *SearchInput) View() string {
	//nolint:misspell // lipgloss.Center is the library's spelling
	return lipgloss.JoinHorizontal(lipgloss.Center,
		s.styles.Title.Render("Search: "),
		s.styles.InputField.Render(s.field.View()),
		s.styles.Muted.Render(" ["+s.mode.String()+"]"),
	)
}

// Value is the raw text, Query the text with outer whitespace trimmed.
func (s *SearchInput) Value() string { return s.field.Value() }
func (s *SearchInput) Query() string { return strings.TrimSpace(s.field.Value()) }

func (s *SearchInput) SetValue(v string) { s.field.SetValue(v) }
func (s *SearchInput) Reset()            { s.field.Reset() }

// SetMode changes the badge. Unknown modes are ignored.
func (s *SearchInput) SetMode(mode domain.MatchMode) {
	if mode.IsValid() {
		s.mode = mode
	}
}

func (s *SearchInput) Mode() domain.MatchMode { return s.mode }

func (s *SearchInput) Focus() tea.Cmd { return s.field.Focus() }
func (s *SearchInput) Blur()          { s.field.Blur() }
func (s *SearchInput) Focused() bool  { return s.field.Focused() }

// SetWidth sizes the whole component; the text field gets what the label
// and badge leave, but never less than minInputWidth.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.field.Width = max(width-chrome, minInputWidth)
}

func (s *SearchInput) Width() int { return s.width }
