// Package study provides the study list view for the TUI.
package study

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
)

// ErrNoStudyService is returned when the view has no study service.
var ErrNoStudyService = errors.New("study list is not available")

const dateLayout = "2006-01-02"

// View lists study entries and edits their confidence.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	studyService driving.StudyService
	ctx          context.Context

	items    []driving.StudyItem
	selected int
	loaded   bool
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new study view.
func NewView(s *styles.Styles, km *keymap.KeyMap, studyService driving.StudyService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetState(status.StateStudy)

	return &View{
		styles:       s,
		keymap:       km,
		statusbar:    bar,
		studyService: studyService,
		ctx:          context.Background(),
		width:        80,
		height:       24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the study list.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	return func() tea.Msg {
		if v.studyService == nil {
			return messages.StudyLoaded{Err: ErrNoStudyService}
		}
		items, err := v.studyService.List(v.ctx)
		return messages.StudyLoaded{Items: items, Err: err}
	}
}

// Update handles messages for the study view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.StudyLoaded:
		v.loaded = true
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.items = msg.Items
		v.selected = max(0, min(v.selected, len(v.items)-1))
		v.statusbar.SetState(status.StateStudy)
		v.statusbar.SetCount(len(v.items))
		return v, nil

	case messages.StudyChanged:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		return v, v.load()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(v.items)-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keymap.MoreConfident):
		return v, v.adjust(1)
	case keymap.Matches(k, v.keymap.LessConfident):
		return v, v.adjust(-1)
	case keymap.Matches(k, v.keymap.Remove):
		return v, v.remove()
	}
	return v, nil
}

// adjust changes the selected entry's confidence by delta.
// It returns nil when the result would leave the valid range.
func (v *View) adjust(delta int) tea.Cmd {
	item := v.SelectedItem()
	if item == nil {
		return nil
	}
	next := item.Entry.Confidence + delta
	if !domain.ValidConfidence(next) {
		return nil
	}
	literal := item.Entry.Literal
	return func() tea.Msg {
		if v.studyService == nil {
			return messages.StudyChanged{Literal: literal, Err: ErrNoStudyService}
		}
		err := v.studyService.SetConfidence(v.ctx, literal, next)
		return messages.StudyChanged{Literal: literal, Err: err}
	}
}

func (v *View) remove() tea.Cmd {
	item := v.SelectedItem()
	if item == nil {
		return nil
	}
	literal := item.Entry.Literal
	return func() tea.Msg {
		if v.studyService == nil {
			return messages.StudyChanged{Literal: literal, Err: ErrNoStudyService}
		}
		err := v.studyService.Remove(v.ctx, literal)
		return messages.StudyChanged{Literal: literal, Err: err}
	}
}

// View renders the study view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{v.styles.Title.Render("Study List"), ""}

	switch {
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case !v.loaded:
		sections = append(sections, v.styles.Muted.Render("Loading..."))
	case len(v.items) == 0:
		sections = append(sections, v.styles.Muted.Render("Study list is empty. Press [a] on a search result to add one."))
	default:
		sections = append(sections, v.renderItems())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderItems() string {
	visible := max(v.height-6, 1)
	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := min(start+visible, len(v.items))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, v.renderItem(i, &v.items[i]))
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderItem(index int, item *driving.StudyItem) string {
	c := item.Entry.Confidence
	meter := strings.Repeat("■", c) + strings.Repeat("□", domain.MaxConfidence-c)
	meaning := strings.Join(item.Record.Meanings, ", ")
	added := item.Entry.AddedAt.Format(dateLayout)

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("> %c  %s %d/%d  %s  %s",
			item.Entry.Literal, meter, c, domain.MaxConfidence, meaning, added))
	}
	return "  " + v.styles.Literal.Render(string(item.Entry.Literal)) + "  " +
		v.styles.Confidence(c).Render(meter) +
		v.styles.Muted.Render(fmt.Sprintf(" %d/%d  ", c, domain.MaxConfidence)) +
		v.styles.Normal.Render(meaning) + "  " +
		v.styles.Muted.Render(added)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Items returns the loaded entries.
func (v *View) Items() []driving.StudyItem {
	return v.items
}

// Selected returns the selected index.
func (v *View) Selected() int {
	return v.selected
}

// SelectedItem returns the selected entry, or nil if the list is empty.
func (v *View) SelectedItem() *driving.StudyItem {
	if v.selected < 0 || v.selected >= len(v.items) {
		return nil
	}
	return &v.items[v.selected]
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Reset clears loaded state so the next Init starts fresh.
func (v *View) Reset() {
	v.items = nil
	v.selected = 0
	v.loaded = false
	v.err = nil
	v.statusbar.Clear()
	v.statusbar.SetState(status.StateStudy)
}
