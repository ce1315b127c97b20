package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

var buildForce bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the character database",
	Long: `Parses the dictionary and stroke sources, joins them by character and
saves the result as a snapshot. Without --force an existing snapshot is kept.

The build.on_malformed_entry setting decides what happens to bad entries:
  abort            - the first bad entry fails the build (default)
  skip_and_report  - bad entries are skipped and listed`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVarP(&buildForce, "force", "f", false, "rebuild even if a snapshot exists")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	ctx := cmd.Context()

	if !buildForce {
		info, err := catalogService.Info(ctx)
		if err == nil {
			cmd.Printf("Snapshot %s is up to date (%d characters, %d stroke recipes).\n",
				info.ID, info.Characters, info.Strokes)
			cmd.Println("Use --force to rebuild.")
			return nil
		}
		if !errors.Is(err, domain.ErrSnapshotMissing) {
			return fmt.Errorf("failed to read snapshot: %w", err)
		}
	}

	report, err := catalogService.Rebuild(ctx)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	printBuildReport(cmd, report)
	return nil
}

func printBuildReport(cmd *cobra.Command, report *domain.BuildReport) {
	cmd.Println("Build complete")
	cmd.Printf("  Characters: %d\n", report.Characters)
	cmd.Printf("  Stroke recipes: %d\n", report.Strokes)
	cmd.Printf("  With both: %d\n", report.Joined)
	cmd.Printf("  On malformed entry: %s\n", report.Policy)
	if report.Duplicates > 0 {
		cmd.Printf("  Duplicates replaced: %d\n", report.Duplicates)
	}
	if len(report.Skipped) == 0 {
		return
	}
	cmd.Printf("  Skipped: %d\n", len(report.Skipped))
	for _, skipped := range report.Skipped {
		cmd.Printf("    %s\n", skipped.Error())
	}
}
