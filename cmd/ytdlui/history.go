package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ytget/ytdlui/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:          "history",
	Short:        "List recent download runs",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.History.Enabled {
			fmt.Fprintln(cmd.OutOrStdout(), "Run history is disabled")
			return nil
		}

		store, err := history.Open(cfg.History.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Recent(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		total, err := store.Count(cmd.Context())
		if err != nil {
			return err
		}

		printHistory(color.Output, runs, total)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", history.DefaultLimit, "Number of runs to show")
}
