package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voyagerhq/voyager/internal/paths"
	"github.com/voyagerhq/voyager/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load reference data from the seed feed",
	Long:  "Read JSONL seed files from the seed directory and insert them through the normal write path. Rows violating schema constraints abort the run.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		dir := cfg.SeedDir
		n, err := seed.NewLoader(exec).Run(dir)
		if err != nil {
			return fmt.Errorf("seed aborted after %d rows: %w", n, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d rows from %s\n", n, dir)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export reference data as a JSONL seed feed",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := paths.ResolveSeedDir(flags.seedDir, paths.ResolveConfigDir(flags.configDir))
		if len(args) == 1 {
			dir = args[0]
		}
		if err := seed.Export(exec, dir); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported reference data to %s\n", dir)
		return nil
	},
}
