package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/bulletin/internal/deck"
	"github.com/papapumpkin/bulletin/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate deck.toml...",
	Short: "Check deck files for structural problems",
	Long: `Parse and validate each deck file: required fields, duplicate ids, unknown
page references (with did-you-mean suggestions), next-link cycles, unknown
action verbs and appearance values. Every problem is reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := ui.NewWriter(os.Stderr, applyColor(viper.GetBool("no_color")))
		if failed := validateDecks(printer, args); failed > 0 {
			return fmt.Errorf("%d of %d deck(s) failed validation", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validateDecks prints a report for each path and returns how many failed.
func validateDecks(printer *ui.Printer, paths []string) int {
	failed := 0
	for _, path := range paths {
		d, err := deck.Load(path)
		if err != nil {
			printer.Error(err.Error())
			failed++
			continue
		}
		errs := deck.Validate(d)
		printer.ValidationErrors(path, len(d.Pages), errs)
		if len(errs) > 0 {
			failed++
		}
	}
	return failed
}
