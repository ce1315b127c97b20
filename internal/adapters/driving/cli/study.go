package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Manage the study list",
	Long: `Keep a list of characters to learn, each with a recall confidence
from 0 (new) to 5 (known).`,
	RunE: runStudyList,
}

var studyAddCmd = &cobra.Command{
	Use:   "add [character]",
	Short: "Add a character to the study list",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudyAdd,
}

var studyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the study list",
	Args:  cobra.NoArgs,
	RunE:  runStudyList,
}

var studyRemoveCmd = &cobra.Command{
	Use:     "rm [character]",
	Aliases: []string{"remove"},
	Short:   "Remove a character from the study list",
	Args:    cobra.ExactArgs(1),
	RunE:    runStudyRemove,
}

var studyRateCmd = &cobra.Command{
	Use:   "rate [character] [confidence]",
	Short: "Set recall confidence (0-5) for a character",
	Args:  cobra.ExactArgs(2),
	RunE:  runStudyRate,
}

func init() {
	studyCmd.AddCommand(studyAddCmd)
	studyCmd.AddCommand(studyListCmd)
	studyCmd.AddCommand(studyRemoveCmd)
	studyCmd.AddCommand(studyRateCmd)
	rootCmd.AddCommand(studyCmd)
}

func runStudyAdd(cmd *cobra.Command, args []string) error {
	if studyService == nil {
		return errors.New("study service not configured")
	}
	literal, err := parseLiteral(args[0])
	if err != nil {
		return err
	}

	entry, err := studyService.Add(cmd.Context(), literal)
	if err != nil {
		return fmt.Errorf("failed to add %c: %w", literal, err)
	}
	cmd.Printf("Added %c (confidence %d)\n", entry.Literal, entry.Confidence)
	return nil
}

func runStudyList(cmd *cobra.Command, _ []string) error {
	if studyService == nil {
		return errors.New("study service not configured")
	}

	items, err := studyService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list study entries: %w", err)
	}
	if len(items) == 0 {
		cmd.Println("Study list is empty. Add characters with 'kanji study add'.")
		return nil
	}

	cmd.Printf("Study list (%d):\n\n", len(items))
	for i := range items {
		item := &items[i]
		cmd.Printf("  %c  [%d/%d]  %s\n",
			item.Entry.Literal, item.Entry.Confidence, domain.MaxConfidence,
			item.Entry.AddedAt.Local().Format("2006-01-02"))
		if len(item.Record.Meanings) > 0 {
			cmd.Printf("      %s\n", item.Record.Summary())
		}
	}
	return nil
}

func runStudyRemove(cmd *cobra.Command, args []string) error {
	if studyService == nil {
		return errors.New("study service not configured")
	}
	literal, err := parseLiteral(args[0])
	if err != nil {
		return err
	}

	if err := studyService.Remove(cmd.Context(), literal); err != nil {
		return fmt.Errorf("failed to remove %c: %w", literal, err)
	}
	cmd.Printf("Removed %c\n", literal)
	return nil
}

func runStudyRate(cmd *cobra.Command, args []string) error {
	if studyService == nil {
		return errors.New("study service not configured")
	}
	literal, err := parseLiteral(args[0])
	if err != nil {
		return err
	}
	confidence, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: confidence %q is not a number", domain.ErrInvalidInput, args[1])
	}

	if err := studyService.SetConfidence(cmd.Context(), literal, confidence); err != nil {
		return fmt.Errorf("failed to rate %c: %w", literal, err)
	}
	cmd.Printf("%c confidence set to %d\n", literal, confidence)
	return nil
}
