package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/voyagerhq/voyager/internal/paths"
	"github.com/voyagerhq/voyager/internal/sqlite"
	"github.com/voyagerhq/voyager/pkg/types"
)

// configFileContent is the structure written to config.yaml.
type configFileContent struct {
	DataDir string `yaml:"data_dir,omitempty"`
	SeedDir string `yaml:"seed_dir,omitempty"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize voyager storage",
	Long:  "Create the configuration and data directories, write a default config.yaml, and bring the schema up to date.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir := paths.ResolveConfigDir(flags.configDir)
	if err := ensureConfigDir(configDir); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if err := writeConfigIfMissing(configFilePath(configDir), cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	// Attach then detach: creates the data directory and applies the
	// full migration sequence.
	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	if err := backend.Detach(); err != nil {
		return fmt.Errorf("finalize storage: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Voyager initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with the resolved values if
// the file does not exist. Idempotent.
func writeConfigIfMissing(path string, cfg types.Config) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	data, err := yaml.Marshal(&configFileContent{DataDir: cfg.DataDir, SeedDir: cfg.SeedDir})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
