package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/bulletin/internal/config"
	"github.com/papapumpkin/bulletin/internal/history"
	"github.com/papapumpkin/bulletin/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded deck runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		limit, _ := cmd.Flags().GetInt("limit")

		ctx := context.Background()
		store, err := history.Open(ctx, cfg.HistoryPath)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.List(ctx, limit)
		if err != nil {
			return err
		}
		ui.NewWriter(os.Stderr, applyColor(cfg.NoColor)).History(runs)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
