package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

var (
	strokesPick   int
	strokesOutput string
	strokesStdout bool
	strokesOpen   bool
)

var strokesCmd = &cobra.Command{
	Use:   "strokes [query]",
	Short: "Draw the stroke order diagram for a character",
	Long: `Searches like 'kanji search' and draws the stroke order of the match as
an SVG document: each stroke in its own colour with its number at the
stroke's starting point.

When several characters match, the list is printed and --pick selects one.
The SVG goes to stdout when stdout is not a terminal (or with --stdout);
otherwise it is written to --output, defaulting to the render.output setting.`,
	Args: cobra.ExactArgs(1),
	RunE: runStrokes,
}

func init() {
	strokesCmd.Flags().IntVarP(&strokesPick, "pick", "p", 0, "result number to draw when several match")
	strokesCmd.Flags().StringVarP(&strokesOutput, "output", "o", "", "write the SVG to this file")
	strokesCmd.Flags().BoolVar(&strokesStdout, "stdout", false, "write the SVG to stdout even on a terminal")
	strokesCmd.Flags().BoolVar(&strokesOpen, "open", false, "open the diagram in the default application")
	rootCmd.AddCommand(strokesCmd)
}

func runStrokes(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}
	if renderService == nil {
		return errors.New("render service not configured")
	}
	ctx := cmd.Context()

	recipe, literal, err := pickRecipe(cmd, args[0])
	if err != nil {
		return err
	}

	if strokesOpen {
		if actionService == nil {
			return errors.New("result action service not configured")
		}
		result := &domain.SearchResult{Record: domain.CharacterRecord{Literal: literal}, Strokes: recipe}
		path, err := actionService.OpenDiagram(ctx, result)
		if err != nil {
			return err
		}
		cmd.Printf("Opened %s\n", path)
		return nil
	}

	svg, err := renderService.Render(*recipe)
	if err != nil {
		return fmt.Errorf("render %c: %w", literal, err)
	}

	out := cmd.OutOrStdout()
	if strokesOutput == "" && (strokesStdout || !isTerminal(out)) {
		_, err := io.WriteString(out, svg)
		return err
	}

	path := strokesOutput
	if path == "" {
		path = defaultRenderOutput()
	}
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("failed to write diagram: %w", err)
	}
	cmd.Printf("Wrote %c (%d strokes) to %s\n", literal, recipe.Len(), path)
	return nil
}

// pickRecipe resolves the query to exactly one stroke recipe.
func pickRecipe(cmd *cobra.Command, query string) (*domain.StrokeRecipe, rune, error) {
	ctx := cmd.Context()

	opts, err := searchOptions(cmd)
	if err != nil {
		return nil, 0, err
	}
	opts.Limit = 0

	results, err := searchService.Search(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		// A stroke-only character has no record to search by.
		if r, size := utf8.DecodeRuneInString(query); size == len(query) && r != utf8.RuneError {
			if db, err := catalogDatabase(cmd); err == nil {
				if recipe, ok := db.Strokes(r); ok {
					return &recipe, r, nil
				}
			}
		}
		return nil, 0, fmt.Errorf("%w: no character matches %q", domain.ErrNotFound, query)
	}

	choice := 1
	if len(results) > 1 {
		if strokesPick == 0 {
			outputSearchTable(cmd, results)
			return nil, 0, fmt.Errorf("%d characters match; choose one with --pick", len(results))
		}
		choice = strokesPick
	}
	if choice < 1 || choice > len(results) {
		return nil, 0, fmt.Errorf("%w: --pick %d out of range 1-%d", domain.ErrInvalidInput, choice, len(results))
	}

	result := results[choice-1]
	if !result.HasStrokes() {
		return nil, 0, fmt.Errorf("%w: %c", domain.ErrNoStrokes, result.Record.Literal)
	}
	return result.Strokes, result.Record.Literal, nil
}

func catalogDatabase(cmd *cobra.Command) (*domain.Database, error) {
	if catalogService == nil {
		return nil, errors.New("catalog service not configured")
	}
	return catalogService.Database(cmd.Context())
}

func defaultRenderOutput() string {
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && settings.Render.Output != "" {
			return settings.Render.Output
		}
	}
	return domain.DefaultAppSettings().Render.Output
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
