// Package styles holds the TUI colour theme and the lipgloss styles built from it.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// ConfidenceLevels is the number of study confidence colours, 0 through 5.
const ConfidenceLevels = 6

// Theme is the TUI palette. The accents follow a vermilion seal on dark paper.
type Theme struct {
	Primary   lipgloss.Color // headings, literals, selection background
	Secondary lipgloss.Color // subtitles

	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Confidence runs from a new study entry to a known one.
	Confidence [ConfidenceLevels]lipgloss.Color
}

// DefaultTheme returns the dark vermilion theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    "#E34234",
		Secondary:  "#4C8BF5",
		Background: "#1C1B22",
		Foreground: "#E8E6E3",
		Muted:      "#7A7885",
		Border:     "#3E3C47",
		Success:    "#8BC34A",
		Warning:    "#F2C94C",
		Error:      "#FF6B6B",
		Confidence: [ConfidenceLevels]lipgloss.Color{
			"#FF6B6B", "#F2994A", "#F2C94C", "#C5D86D", "#8BC34A", "#4CAF50",
		},
	}
}

// Styles are the rendered styles shared by every view.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style

	// Selected highlights the cursor row.
	Selected lipgloss.Style

	// Literal draws a kanji in result and study rows.
	Literal lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Border     lipgloss.Style
}

// NewStyles builds styles from theme. A nil theme means DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	rounded := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	return &Styles{
		theme: theme,

		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Help:     fg(theme.Muted),

		Selected: fg(theme.Foreground).Bold(true).Background(theme.Primary),
		Literal:  fg(theme.Primary).Bold(true),

		Error:   fg(theme.Error),
		Success: fg(theme.Success),
		Warning: fg(theme.Warning),

		InputField: rounded.Padding(0, 1),
		StatusBar:  fg(theme.Muted).Background(theme.Background).Padding(0, 1),
		Border:     rounded,
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Confidence returns the style for a study confidence level, clamped to 0-5.
func (s *Styles) Confidence(level int) lipgloss.Style {
	level = max(0, min(level, ConfidenceLevels-1))
	return lipgloss.NewStyle().Bold(true).Foreground(s.theme.Confidence[level])
}
