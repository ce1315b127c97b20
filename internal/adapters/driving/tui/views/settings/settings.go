// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
)

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionPolicy
	SectionMatch
	SectionLimit
)

// limitKey is the settings key edited by the limit section.
const limitKey = "search.limit"

// resettableKeys are the settings this view edits; [r] restores them.
var resettableKeys = []string{"build.on_malformed_entry", "search.match", limitKey}

// Key constants for key handling.
const (
	keyUp    = "up"
	keyDown  = "down"
	keyEnter = "enter"
)

// ErrNoSettingsService is returned when the view has no settings service.
var ErrNoSettingsService = errors.New("settings service not available")

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error

	section  Section
	selected int

	limitInput textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	limitInput := textinput.New()
	limitInput.Placeholder = "0 for no limit"
	limitInput.CharLimit = 6

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
		limitInput:      limitInput,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.backToOverview()
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" {
		if v.section == SectionOverview {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.backToOverview()
		return v, nil
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionPolicy:
		policies := domain.AllPolicies()
		if i, ok := v.choose(msg, len(policies)); ok {
			return v, v.save(func(s driving.SettingsService) error {
				return s.SetMalformedEntryPolicy(policies[i])
			})
		}
	case SectionMatch:
		modes := domain.AllMatchModes()
		if i, ok := v.choose(msg, len(modes)); ok {
			return v, v.save(func(s driving.SettingsService) error {
				return s.SetMatchMode(modes[i])
			})
		}
	case SectionLimit:
		if msg.String() == keyEnter {
			value := strings.TrimSpace(v.limitInput.Value())
			if value == "" {
				value = "0"
			}
			return v, v.save(func(s driving.SettingsService) error {
				return s.Set(limitKey, value)
			})
		}
		var cmd tea.Cmd
		v.limitInput, cmd = v.limitInput.Update(msg)
		return v, cmd
	}

	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "r" {
		return v, v.save(func(s driving.SettingsService) error {
			return s.Reset(resettableKeys...)
		})
	}

	i, ok := v.choose(msg, 3)
	if !ok || v.settings == nil {
		return v, nil
	}

	switch i {
	case 0:
		v.section = SectionPolicy
		v.selected = indexOf(domain.AllPolicies(), v.settings.Build.OnMalformedEntry)
	case 1:
		v.section = SectionMatch
		v.selected = indexOf(domain.AllMatchModes(), v.settings.Search.Match)
	case 2:
		v.section = SectionLimit
		v.limitInput.SetValue(fmt.Sprint(v.settings.Search.Limit))
		return v, v.limitInput.Focus()
	}
	return v, nil
}

// choose moves the selection within n items and reports the chosen index
// when enter is pressed.
func (v *View) choose(msg tea.KeyMsg, n int) (int, bool) {
	switch msg.String() {
	case keyUp, "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < n-1 {
			v.selected++
		}
	case keyEnter:
		if v.selected >= 0 && v.selected < n {
			return v.selected, true
		}
	}
	return 0, false
}

func (v *View) save(apply func(driving.SettingsService) error) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Err: apply(v.settingsService)}
	}
}

func (v *View) backToOverview() {
	v.section = SectionOverview
	v.selected = 0
	v.limitInput.Blur()
}

func indexOf[T comparable](items []T, want T) int {
	for i, item := range items {
		if item == want {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionPolicy:
		b.WriteString(v.renderChoices("Malformed Entry Policy", describe(domain.AllPolicies()),
			indexOf(domain.AllPolicies(), v.settings.Build.OnMalformedEntry)))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Takes effect on the next build."))
		b.WriteString("\n")
	case SectionMatch:
		b.WriteString(v.renderChoices("Match Mode", describe(domain.AllMatchModes()),
			indexOf(domain.AllMatchModes(), v.settings.Search.Match)))
	case SectionLimit:
		b.WriteString(v.styles.Subtitle.Render("Result Limit"))
		b.WriteString("\n\n")
		b.WriteString(v.limitInput.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	limit := "none"
	if v.settings.Search.Limit > 0 {
		limit = fmt.Sprint(v.settings.Search.Limit)
	}

	items := []struct{ label, value string }{
		{"Malformed entries", v.settings.Build.OnMalformedEntry.Description()},
		{"Match mode", v.settings.Search.Match.Description()},
		{"Result limit", limit},
	}

	var b strings.Builder
	for i, item := range items {
		line := fmt.Sprintf("%s: %s", item.label, item.value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

type describer interface {
	Description() string
}

func describe[T describer](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Description()
	}
	return out
}

func (v *View) renderChoices(title string, labels []string, current int) string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(title))
	b.WriteString("\n\n")

	for i, label := range labels {
		if i == current {
			label += v.styles.Success.Render(" (current)")
		}
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + label))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [r] reset  [esc] back")
	case SectionLimit:
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	default:
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] cancel")
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Settings returns the last loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last load or save error.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.backToOverview()
	v.err = nil
	v.limitInput.SetValue("")
}
