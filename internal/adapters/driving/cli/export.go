package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every character record as JSON",
	Long: `Writes the whole character database as a JSON array, ascending by
code point. Records include their stroke paths when stroke data exists.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

// exportRecord is the JSON shape of a character record.
type exportRecord struct {
	Literal     string   `json:"literal"`
	OnReadings  []string `json:"on_readings"`
	KunReadings []string `json:"kun_readings"`
	Meanings    []string `json:"meanings"`
	Nanori      []string `json:"nanori,omitempty"`
	Grade       int      `json:"grade,omitempty"`
	StrokeCount int      `json:"stroke_count,omitempty"`
	Frequency   int      `json:"frequency,omitempty"`
	JLPT        int      `json:"jlpt,omitempty"`
	Strokes     []string `json:"strokes,omitempty"`
}

func newExportRecord(rec domain.CharacterRecord, recipe *domain.StrokeRecipe) exportRecord {
	out := exportRecord{
		Literal:     string(rec.Literal),
		OnReadings:  nonNil(rec.OnReadings),
		KunReadings: nonNil(rec.KunReadings),
		Meanings:    nonNil(rec.Meanings),
		Nanori:      rec.Nanori,
		Grade:       rec.Grade,
		StrokeCount: rec.StrokeCount,
		Frequency:   rec.Frequency,
		JLPT:        rec.JLPT,
	}
	if recipe != nil {
		for _, p := range recipe.Strokes {
			out.Strokes = append(out.Strokes, p.D)
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func runExport(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	db, err := catalogService.Database(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	literals := db.Literals()
	records := make([]exportRecord, 0, len(literals))
	for _, r := range literals {
		rec, _ := db.Character(r)
		var recipe *domain.StrokeRecipe
		if strokes, ok := db.Strokes(r); ok {
			recipe = &strokes
		}
		records = append(records, newExportRecord(rec, recipe))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if err := os.WriteFile(exportOutput, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	cmd.Printf("Exported %d records to %s\n", len(records), exportOutput)
	return nil
}
