// Package cli provides the cobra command tree for the kanji binary.
package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kanji-cli/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

var verbose bool

// Services wired by main. Commands check for nil before use.
var (
	catalogService  driving.CatalogService
	searchService   driving.SearchService
	renderService   driving.RenderService
	studyService    driving.StudyService
	settingsService driving.SettingsService
	actionService   driving.ResultActionService
)

// Services groups the driving ports the command tree depends on.
type Services struct {
	Catalog  driving.CatalogService
	Search   driving.SearchService
	Render   driving.RenderService
	Study    driving.StudyService
	Settings driving.SettingsService
	Actions  driving.ResultActionService
}

var rootCmd = &cobra.Command{
	Use:   "kanji",
	Short: "Kanji dictionary with stroke order diagrams",
	Long: `kanji looks up Japanese characters in the kanjidic2 dictionary and draws
their stroke order from KanjiVG as numbered, colour-coded SVG diagrams.

The two source documents are parsed once and cached in a local snapshot.
Run 'kanji build --force' after replacing them.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
}

// SetServices installs the services used by every command.
func SetServices(s Services) {
	catalogService = s.Catalog
	searchService = s.Search
	renderService = s.Render
	studyService = s.Study
	settingsService = s.Settings
	actionService = s.Actions
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// parseLiteral accepts exactly one character.
func parseLiteral(arg string) (rune, error) {
	r, size := utf8.DecodeRuneInString(arg)
	if r == utf8.RuneError || size != len(arg) {
		return 0, fmt.Errorf("%w: expected a single character, got %q", domain.ErrInvalidInput, arg)
	}
	return r, nil
}
