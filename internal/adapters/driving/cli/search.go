package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

var (
	searchLimit int
	searchMatch string
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search characters by literal or meaning",
	Long: `Finds every character that appears in the query, plus every character
with a matching English meaning.

Match modes:
  exact    - a meaning must equal the query (default)
  contains - a meaning must contain the query, ignoring case and width

Defaults come from the search.match and search.limit settings.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", -1, "maximum number of results (0 = no limit)")
	searchCmd.Flags().StringVarP(&searchMatch, "match", "m", "", "meaning match mode: exact or contains")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts, err := searchOptions(cmd)
	if err != nil {
		return err
	}

	results, err := searchService.Search(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	outputSearchTable(cmd, results)
	return nil
}

// searchOptions merges the saved search settings with any flags given.
func searchOptions(cmd *cobra.Command) (domain.SearchOptions, error) {
	opts := domain.SearchOptions{Match: domain.MatchExact}
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return opts, fmt.Errorf("failed to get settings: %w", err)
		}
		opts.Match = settings.Search.Match
		opts.Limit = settings.Search.Limit
	}

	if cmd.Flags().Changed("match") {
		mode := domain.MatchMode(searchMatch)
		if !mode.IsValid() {
			return opts, fmt.Errorf("%w: match mode %q (want exact or contains)", domain.ErrInvalidInput, searchMatch)
		}
		opts.Match = mode
	}
	if cmd.Flags().Changed("limit") {
		opts.Limit = searchLimit
	}
	return opts, nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	out := make([]exportRecord, 0, len(results))
	for i := range results {
		out = append(out, newExportRecord(results[i].Record, results[i].Strokes))
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s\n", i+1, results[i].Record.Summary())
		if !results[i].HasStrokes() {
			cmd.Println("      (no stroke data)")
		}
	}
}
