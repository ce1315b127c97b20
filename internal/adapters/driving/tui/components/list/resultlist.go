// Package list renders search results as a scrolling, selectable list.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

// linesPerResult is the height of one row: the headline and the readings line.
const linesPerResult = 2

// ResultList displays search results in a navigable list.
// The selected row also shows the record's metadata.
type ResultList struct {
	results  []domain.SearchResult
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &ResultList{styles: s, width: 80, height: 12}
}

func (r *ResultList) Init() tea.Cmd { return nil }

// Update moves the selection. g and G jump to the ends.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		case "home", "g":
			r.SetSelected(0)
		case "end", "G":
			r.SetSelected(len(r.results) - 1)
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results)))
	lines := []string{header, ""}

	// One extra line is reserved for the selected row's metadata.
	visible := max((r.height-3)/linesPerResult, 1)
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.results))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

func (r *ResultList) renderResult(index int, result *domain.SearchResult) string {
	rec := &result.Record
	isSelected := index == r.selected

	indicator := "  "
	if isSelected {
		indicator = "> "
	}

	meanings := strings.Join(rec.Meanings, ", ")
	if meanings == "" {
		meanings = "(no meanings)"
	}
	meanings = truncate(meanings, max(r.width-16, 10))

	var headline string
	if isSelected {
		headline = r.styles.Selected.Render(fmt.Sprintf("%s%c  %s", indicator, rec.Literal, meanings))
	} else {
		headline = indicator + r.styles.Literal.Render(string(rec.Literal)) + "  " +
			r.styles.Normal.Render(meanings)
	}
	if !result.HasStrokes() {
		headline += r.styles.Warning.Render("  no strokes")
	}

	readings := fmt.Sprintf("    on: %s  kun: %s",
		orDash(strings.Join(rec.OnReadings, "、")),
		orDash(strings.Join(rec.KunReadings, "、")))
	out := headline + "\n" + r.styles.Muted.Render(truncate(readings, max(r.width-2, 20)))

	if isSelected {
		if meta := metadata(rec); meta != "" {
			out += "\n" + r.styles.Subtitle.Render("    "+meta)
		}
	}
	return out
}

// metadata lists the record's set numeric fields.
func metadata(rec *domain.CharacterRecord) string {
	var parts []string
	if rec.StrokeCount > 0 {
		parts = append(parts, fmt.Sprintf("%d strokes", rec.StrokeCount))
	}
	if rec.Grade > 0 {
		parts = append(parts, fmt.Sprintf("grade %d", rec.Grade))
	}
	if rec.JLPT > 0 {
		parts = append(parts, fmt.Sprintf("JLPT N%d", rec.JLPT))
	}
	if rec.Frequency > 0 {
		parts = append(parts, fmt.Sprintf("freq #%d", rec.Frequency))
	}
	if len(rec.Nanori) > 0 {
		parts = append(parts, "nanori: "+strings.Join(rec.Nanori, "、"))
	}
	return strings.Join(parts, " · ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// SetResults replaces the results and selects the first.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results, r.selected = results, 0
}

// SetSelected ignores out of range indexes.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult is nil when the list is empty.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

func (r *ResultList) MoveUp()   { r.SetSelected(r.selected - 1) }
func (r *ResultList) MoveDown() { r.SetSelected(r.selected + 1) }

func (r *ResultList) SetDimensions(width, height int) {
	r.width, r.height = width, height
}

func (r *ResultList) Results() []domain.SearchResult { return r.results }
func (r *ResultList) Selected() int                  { return r.selected }
func (r *ResultList) Width() int                     { return r.width }
func (r *ResultList) Height() int                    { return r.height }
func (r *ResultList) Count() int                     { return len(r.results) }
func (r *ResultList) IsEmpty() bool                  { return len(r.results) == 0 }
