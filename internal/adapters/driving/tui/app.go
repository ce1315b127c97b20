package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/views/study"
	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

// App is the root tea.Model. It owns one instance of each view, routes keys
// to the active one and delivers async results to the view that asked.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView     *menu.View
	searchView   *search.View
	studyView    *study.View
	settingsView *settings.View

	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		menuView:     menu.NewView(s),
		searchView:   search.NewView(s, km, ports.Search, ports.ResultAction, ports.Study),
		studyView:    study.NewView(s, km, ports.Study),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.studyView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("kanji - Dictionary & Stroke Order"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.routeKey(msg)

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.SearchCompleted, messages.ActionCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.StudyLoaded, messages.StudyChanged:
		a.studyView, cmd = a.studyView.Update(msg)
		a.err = a.studyView.Err()
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		a.err = a.settingsView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewSearch {
			a.searchView, cmd = a.searchView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Everything else (cursor blink and friends) goes to the active view.
	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewMenu, messages.ViewStudy, messages.ViewHelp:
	}
	return a, cmd
}

func (a *App) routeKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewStudy:
		a.studyView, cmd = a.studyView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		if keymap.Matches(msg.String(), a.keymap.Back) {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

func (a *App) switchView(view messages.ViewType) tea.Cmd {
	a.currentView = view
	a.err = nil

	switch view {
	case messages.ViewSearch:
		a.searchView.Reset()
		a.searchView.SetOptions(a.searchOptions())
		return a.searchView.Init()
	case messages.ViewStudy:
		a.studyView.Reset()
		return a.studyView.Init()
	case messages.ViewSettings:
		a.settingsView.Reset()
		return a.settingsView.Init()
	case messages.ViewMenu, messages.ViewHelp:
	}
	return nil
}

// searchOptions reads the saved search defaults, falling back to built-in
// defaults when no settings service is wired or it fails.
func (a *App) searchOptions() domain.SearchOptions {
	defaults := domain.DefaultAppSettings().Search
	opts := domain.SearchOptions{Match: defaults.Match, Limit: defaults.Limit}
	if a.ports.Settings == nil {
		return opts
	}
	s, err := a.ports.Settings.Get()
	if err != nil || s == nil {
		return opts
	}
	return domain.SearchOptions{Match: s.Search.Match, Limit: s.Search.Limit}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewStudy:
		return a.studyView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
	}
	return a.menuView.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

func (a *App) CurrentView() messages.ViewType { return a.currentView }
func (a *App) Results() []domain.SearchResult { return a.searchView.Results() }
func (a *App) Ready() bool                    { return a.ready }

// Err is the last error reported by the active view.
func (a *App) Err() error { return a.err }

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.studyView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
