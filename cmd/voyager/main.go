// Package main provides the voyager CLI: migrations, reference-data
// seeding, and per-user travel tracking over the voyager store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
