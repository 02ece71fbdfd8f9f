package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (LEXICON_*)
// 2. Config file (.lexicon/config.yml or .lexicon/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".lexicon")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Enable environment variable overrides, e.g. LEXICON_SEARCH_LIMIT.
	v.SetEnvPrefix("LEXICON")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("input.document")
	v.BindEnv("output.dir")
	v.BindEnv("search.limit")
	v.BindEnv("search.dimensions")
	v.BindEnv("search.min_score")
	v.BindEnv("storage.sqlite")
	v.BindEnv("storage.database")
	v.BindEnv("storage.cache_capacity")

	setDefaults(v)

	// Config file not found is acceptable - we'll use defaults + env vars.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("input.document", defaults.Input.Document)
	v.SetDefault("output.dir", defaults.Output.Dir)
	v.SetDefault("paths.exclude", defaults.Paths.Exclude)
	v.SetDefault("search.limit", defaults.Search.Limit)
	v.SetDefault("search.dimensions", defaults.Search.Dimensions)
	v.SetDefault("search.min_score", defaults.Search.MinScore)
	v.SetDefault("storage.sqlite", defaults.Storage.SQLite)
	v.SetDefault("storage.database", defaults.Storage.Database)
	v.SetDefault("storage.cache_capacity", defaults.Storage.CacheCapacity)
}

// LoadConfig is a convenience function that creates a loader and loads config.
// It uses the current working directory as the root.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
