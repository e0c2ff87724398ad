// Config loading for the wanderplan CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/wanderplan/wanderplan/pkg/geometry"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir    = "data_dir"
	cfgKeyCatalogURL = "catalog_url"
	cfgKeyListenAddr = "listen_addr"
	cfgKeyPxPerHour  = "px_per_hour"

	defaultListenAddr = ":8080"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Wanderplan CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Experience catalog service URL; when unset the local catalog is used
# catalog_url:

# Address the serve command listens on
listen_addr: ":8080"

# Timeline scale used by the move command
px_per_hour: 60
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyListenAddr, defaultListenAddr)
	v.SetDefault(cfgKeyPxPerHour, geometry.DefaultPxPerHour)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
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

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
