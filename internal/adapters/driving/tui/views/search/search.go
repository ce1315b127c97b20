// Package search is the query screen with its result list and the
// per-result action menu.
package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
)

// View has two modes. While the input is focused keys edit the query;
// after a search they navigate the results.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	actionService driving.ResultActionService
	studyService  driving.StudyService
	ctx           context.Context

	opts       domain.SearchOptions
	width      int
	height     int
	ready      bool
	err        error
	focusInput bool
	actionMenu *ActionMenu
}

// NewView creates a new search view. The action and study services may be nil.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	actionService driving.ResultActionService,
	studyService driving.StudyService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		actionService: actionService,
		studyService:  studyService,
		ctx:           context.Background(),
		opts:          domain.SearchOptions{Match: domain.MatchExact},
		width:         80,
		height:        24,
		focusInput:    true,
	}
}

// WithContext sets the context passed to every service call.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetOptions sets the match mode and limit used for the next searches.
func (v *View) SetOptions(opts domain.SearchOptions) {
	if !opts.Match.IsValid() {
		opts.Match = domain.MatchExact
	}
	v.opts = opts
	v.input.SetMode(opts.Match)
}

// Options returns the current search options.
func (v *View) Options() domain.SearchOptions {
	return v.opts
}

func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ActionCompleted:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		} else {
			v.statusbar.Notify(msg.Status)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.actionMenu != nil {
		return v.handleActionMenuKey(msg)
	}

	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.focusInput {
		switch msg.Type {
		case tea.KeyEnter:
			query := v.input.Query()
			if query == "" {
				return v, nil
			}
			v.statusbar.SetState(status.StateSearching)
			v.focusInput = false
			v.input.Blur()
			return v, v.performSearch(query)
		default:
			if keymap.Matches(msg.String(), v.keymap.ToggleMatch) {
				v.toggleMatch()
				return v, nil
			}
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd
		}
	}

	if msg.Type == tea.KeyEnter {
		if result := v.list.SelectedResult(); result != nil {
			v.actionMenu = &ActionMenu{result: *result}
		}
		return v, nil
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.NewSearch):
		v.focusInput = true
		v.input.SetValue("")
		return v, v.input.Focus()
	case keymap.Matches(msg.String(), v.keymap.Study):
		if result := v.list.SelectedResult(); result != nil {
			return v, v.addToStudy(result.Record.Literal)
		}
		return v, nil
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

func (v *View) toggleMatch() {
	next := domain.MatchContains
	if v.opts.Match == domain.MatchContains {
		next = domain.MatchExact
	}
	v.SetOptions(domain.SearchOptions{Match: next, Limit: v.opts.Limit})
}

func (v *View) performSearch(query string) tea.Cmd {
	opts := v.opts
	return func() tea.Msg {
		if v.searchService == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}

		results, err := v.searchService.Search(v.ctx, query, opts)
		return messages.SearchCompleted{Results: results, Err: err}
	}
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.list.SetResults(msg.Results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetCount(len(msg.Results))

	v.focusInput = false
	v.input.Blur()
}

func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("Kanji Search"),
		"",
		v.input.View(),
		"",
	}

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View())

	if v.actionMenu != nil {
		sections = append(sections, "", v.renderActionMenu())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions gives the result list what the header, input and status bar leave.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // header, input and status bar
	v.statusbar.SetWidth(width)
}

func (v *View) Width() int                           { return v.width }
func (v *View) Height() int                          { return v.height }
func (v *View) Ready() bool                          { return v.ready }
func (v *View) Query() string                        { return v.input.Value() }
func (v *View) SetQuery(query string)                { v.input.SetValue(query) }
func (v *View) Results() []domain.SearchResult       { return v.list.Results() }
func (v *View) SelectedIndex() int                   { return v.list.Selected() }
func (v *View) SelectedResult() *domain.SearchResult { return v.list.SelectedResult() }
func (v *View) Err() error                           { return v.err }
func (v *View) StatusMessage() string                { return v.statusbar.Message() }
func (v *View) ActionMenuOpen() bool                 { return v.actionMenu != nil }
func (v *View) InputFocused() bool                   { return v.focusInput }

func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset empties the query and results and refocuses the input.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetResults(nil)
	v.actionMenu = nil
	v.err = nil
	v.statusbar.Clear()
}
