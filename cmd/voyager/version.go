package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the voyager release version.
const Version = "0.3.0"

const modulePath = "github.com/voyagerhq/voyager"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the voyager version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "voyager v%s\nmodule: %s\n", Version, modulePath)
		return nil
	},
}
