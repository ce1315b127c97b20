package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/kanji-cli/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for kanji.

Search by character or English meaning, open stroke order diagrams and
keep a study list with per-character confidence.

Controls:
  ↑/k, ↓/j   move
  enter      search, select
  tab        toggle exact and contains matching
  a          add the selected character to the study list
  +/-        adjust confidence in the study list
  esc        back
  q          quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// tuiPorts builds the TUI ports from the installed services.
func tuiPorts() *tui.Ports {
	return tui.NewPorts(searchService, actionService, studyService, settingsService)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("TUI stack:\n%s", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	app, err := tui.NewApp(tuiPorts())
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
