package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the acting user's travel statistics",
	Long:  "Recompute countries visited, continents visited, and the world-explored percentage from current data.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sub := subject()
		stats, err := exec.Stats(sub, sub.ID)
		if err != nil {
			return err
		}
		if flags.jsonMode {
			return printJSON(cmd.OutOrStdout(), stats)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "countries visited:  %d\n", stats.CountriesVisited)
		fmt.Fprintf(cmd.OutOrStdout(), "continents visited: %d\n", stats.ContinentsVisited)
		if stats.WorldExploredPercent != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "world explored:     %.1f%%\n", *stats.WorldExploredPercent)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "world explored:     n/a")
		}
		return nil
	},
}
