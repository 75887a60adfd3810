// Config loading for the voyager CLI. Values come from, in order of
// precedence: command-line flags, environment (.env included), then
// config.yaml in the config directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/voyagerhq/voyager/internal/paths"
	"github.com/voyagerhq/voyager/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyDataDir = "data_dir"
	cfgKeySeedDir = "seed_dir"
)

// resolveConfig produces the backend Config from flags, environment, and
// config.yaml.
func resolveConfig() (types.Config, error) {
	// A .env in the working directory is optional.
	_ = godotenv.Load()

	configDir := paths.ResolveConfigDir(flags.configDir)
	v, err := loadConfig(configDir)
	if err != nil {
		return types.Config{}, err
	}

	dataDir := flags.dataDir
	if dataDir == "" {
		if cfgVal := v.GetString(cfgKeyDataDir); cfgVal != "" {
			dataDir = cfgVal
		}
	}
	dataDir = paths.ResolveDataDir(dataDir)

	seedDir := flags.seedDir
	if seedDir == "" {
		if cfgVal := v.GetString(cfgKeySeedDir); cfgVal != "" {
			seedDir = cfgVal
		}
	}
	seedDir = paths.ResolveSeedDir(seedDir, configDir)

	return types.Config{DataDir: dataDir, SeedDir: seedDir}, nil
}

// loadConfig reads config.yaml from the config directory using Viper.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// configFilePath returns the path of config.yaml inside the config
// directory.
func configFilePath(configDir string) string {
	return filepath.Join(configDir, configFileName+"."+configFileType)
}
