package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change build, search, source and render settings.

Settings are stored in ~/.kanji/config.toml unless KANJI_CONFIG_PATH is set.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set one setting",
	Long: `Set one setting by its dotted key.

Keys:
  build.on_malformed_entry  abort | skip_and_report
  search.match              exact | contains
  search.limit              maximum results, 0 = no limit
  sources.dictionary        path to kanjidic2.xml
  sources.strokes           path to kanjivg.xml
  render.output             default SVG output file`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset [key...]",
	Short: "Restore settings to their defaults",
	Long: `Remove saved values so the defaults apply again.
With no keys every setting is reset.`,
	RunE: runSettingsReset,
}

var settingsPolicyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Choose how the build treats malformed entries",
	RunE:  runSettingsPolicy,
}

var settingsMatchCmd = &cobra.Command{
	Use:   "match",
	Short: "Choose the default meaning match mode",
	RunE:  runSettingsMatch,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsPolicyCmd)
	settingsCmd.AddCommand(settingsMatchCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Build]")
	cmd.Printf("  On malformed entry: %s\n", settings.Build.OnMalformedEntry.Description())
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Match: %s\n", settings.Search.Match.Description())
	if settings.Search.Limit > 0 {
		cmd.Printf("  Limit: %d\n", settings.Search.Limit)
	} else {
		cmd.Println("  Limit: none")
	}
	cmd.Println()

	cmd.Println("[Sources]")
	cmd.Printf("  Dictionary: %s\n", orDefault(settings.Sources.Dictionary))
	cmd.Printf("  Strokes: %s\n", orDefault(settings.Sources.Strokes))
	cmd.Println()

	cmd.Println("[Render]")
	cmd.Printf("  Output: %s\n", settings.Render.Output)
	return nil
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			cmd.Printf("Valid keys: %s\n", strings.Join(settingsService.Keys(), ", "))
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Reset(args...); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			cmd.Printf("Valid keys: %s\n", strings.Join(settingsService.Keys(), ", "))
		}
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	if len(args) == 0 {
		cmd.Println("All settings restored to defaults")
		return nil
	}
	cmd.Printf("Restored to defaults: %s\n", strings.Join(args, ", "))
	return nil
}

func runSettingsPolicy(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	policies := domain.AllPolicies()
	cmd.Println("Select Malformed Entry Policy")
	cmd.Println("-----------------------------")
	for i, policy := range policies {
		cmd.Printf("  %d. %s\n", i+1, policy.Description())
	}
	cmd.Print("\nEnter choice: ")

	idx := parseChoice(readLine(bufio.NewReader(cmd.InOrStdin())), len(policies), 0)
	if idx == 0 {
		return errors.New("invalid selection")
	}

	selected := policies[idx-1]
	if err := settingsService.SetMalformedEntryPolicy(selected); err != nil {
		return fmt.Errorf("failed to set policy: %w", err)
	}
	cmd.Printf("Policy set to: %s\n", selected.Description())
	cmd.Println("Run 'kanji build --force' to apply it to the snapshot.")
	return nil
}

func runSettingsMatch(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	modes := domain.AllMatchModes()
	cmd.Println("Select Match Mode")
	cmd.Println("-----------------")
	for i, mode := range modes {
		cmd.Printf("  %d. %s\n", i+1, mode.Description())
	}
	cmd.Print("\nEnter choice: ")

	idx := parseChoice(readLine(bufio.NewReader(cmd.InOrStdin())), len(modes), 0)
	if idx == 0 {
		return errors.New("invalid selection")
	}

	selected := modes[idx-1]
	if err := settingsService.SetMatchMode(selected); err != nil {
		return fmt.Errorf("failed to set match mode: %w", err)
	}
	cmd.Printf("Match mode set to: %s\n", selected.Description())
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
