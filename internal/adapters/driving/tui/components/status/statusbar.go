// Package status renders the one-line bar at the bottom of every view.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/styles"
)

// State selects the left-hand text and the key hints.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateResults   State = "results"
	StateStudy     State = "study"
	StateNotice    State = "notice"
	StateError     State = "error"
	StateHelp      State = "help"
)

// Bar is passive: views drive it through the setters and call View.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	hints  help.Model

	state State
	// message is the error text in StateError and the notice in StateNotice.
	message string
	count   int
	width   int
}

func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	hints := help.New()
	hints.Styles.ShortKey = s.Muted
	hints.Styles.ShortDesc = s.Muted
	hints.Styles.ShortSeparator = s.Muted
	hints.ShortSeparator = " | "

	return &Bar{styles: s, keymap: km, hints: hints, state: StateReady, width: 80}
}

// View renders exactly one line. The StatusBar padding counts inside the
// width, and hints that do not fit are truncated by the help model.
func (s *Bar) View() string {
	inner := max(s.width-s.styles.StatusBar.GetHorizontalFrameSize(), 0)
	left := s.status()
	s.hints.Width = max(inner-lipgloss.Width(left)-1, 1)
	right := s.hints.ShortHelpView(s.bindings())
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return s.styles.StatusBar.Width(s.width).MaxHeight(1).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *Bar) status() string {
	switch s.state {
	case StateSearching:
		return s.styles.Muted.Render("Searching...")
	case StateError:
		text := "Error"
		if s.message != "" {
			text += ": " + s.message
		}
		return s.styles.Error.Render(text)
	case StateNotice:
		return s.styles.Success.Render(s.message)
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateStudy:
		return s.styles.Normal.Render(count(s.count, "character") + " in study list")
	case StateReady, StateResults:
		if s.count > 0 {
			return s.styles.Normal.Render(count(s.count, "result"))
		}
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) bindings() []key.Binding {
	switch {
	case s.state == StateStudy:
		return s.keymap.StudyHelp()
	case (s.state == StateResults || s.state == StateNotice) && s.count > 0:
		return s.keymap.ResultsHelp()
	default:
		return s.keymap.ShortHelp()
	}
}

// count formats n with noun, pluralised by a trailing s.
func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Notify shows a success line until the next state change.
func (s *Bar) Notify(message string) {
	s.state, s.message = StateNotice, message
}

// Clear returns to StateReady with no message or count.
func (s *Bar) Clear() {
	s.state, s.message, s.count = StateReady, "", 0
}

func (s *Bar) SetState(state State)      { s.state = state }
func (s *Bar) SetMessage(message string) { s.message = message }
func (s *Bar) SetCount(n int)            { s.count = n }
func (s *Bar) SetWidth(width int)        { s.width = width }

func (s *Bar) State() State    { return s.state }
func (s *Bar) Message() string { return s.message }
func (s *Bar) Count() int      { return s.count }
func (s *Bar) Width() int      { return s.width }
