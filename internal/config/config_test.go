package config

// Test Plan:
// 1. Default configuration is valid
// 2. Load priority: defaults, then config file, then environment
// 3. Missing config file falls back to defaults
// 4. Malformed config file is a load error
// 5. Validation rejects bad limits, dimensions, globs, and storage settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "docs.json", cfg.Input.Document)
	assert.Equal(t, ".lexicon/out", cfg.Output.Dir)
	assert.Equal(t, 15, cfg.Search.Limit)
	assert.Equal(t, 256, cfg.Search.Dimensions)
	assert.False(t, cfg.Storage.SQLite)
}

func TestLoadWithoutConfigFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromConfigFile(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	configDir := filepath.Join(rootDir, ".lexicon")
	require.NoError(t, os.MkdirAll(configDir, 0755))

	configYML := `
input:
  document: api/typedoc.json
output:
  dir: build/lexicon
paths:
  exclude:
    - "*.internal*"
search:
  limit: 30
storage:
  sqlite: true
  database: records.db
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(configYML), 0644))

	cfg, err := LoadConfigFromDir(rootDir)
	require.NoError(t, err)

	assert.Equal(t, "api/typedoc.json", cfg.Input.Document)
	assert.Equal(t, "build/lexicon", cfg.Output.Dir)
	assert.Equal(t, []string{"*.internal*"}, cfg.Paths.Exclude)
	assert.Equal(t, 30, cfg.Search.Limit)
	assert.True(t, cfg.Storage.SQLite)
	assert.Equal(t, "records.db", cfg.Storage.Database)

	// Unset keys keep their defaults.
	assert.Equal(t, 256, cfg.Search.Dimensions)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	rootDir := t.TempDir()
	configDir := filepath.Join(rootDir, ".lexicon")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("search:\n  limit: 30\n"), 0644))

	t.Setenv("LEXICON_SEARCH_LIMIT", "50")

	cfg, err := LoadConfigFromDir(rootDir)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Search.Limit)
}

func TestLoadMalformedConfigFile(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	configDir := filepath.Join(rootDir, ".lexicon")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("search: [not: valid"), 0644))

	_, err := LoadConfigFromDir(rootDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "empty document",
			mutate:  func(c *Config) { c.Input.Document = "  " },
			wantErr: ErrEmptyDocument,
		},
		{
			name:    "empty output dir",
			mutate:  func(c *Config) { c.Output.Dir = "" },
			wantErr: ErrEmptyOutputDir,
		},
		{
			name:    "bad exclude glob",
			mutate:  func(c *Config) { c.Paths.Exclude = []string{"[unclosed"} },
			wantErr: ErrInvalidExclude,
		},
		{
			name:    "zero limit",
			mutate:  func(c *Config) { c.Search.Limit = 0 },
			wantErr: ErrInvalidLimit,
		},
		{
			name:    "limit too large",
			mutate:  func(c *Config) { c.Search.Limit = 500 },
			wantErr: ErrInvalidLimit,
		},
		{
			name:    "zero dimensions",
			mutate:  func(c *Config) { c.Search.Dimensions = 0 },
			wantErr: ErrInvalidDimensions,
		},
		{
			name:    "min score above one",
			mutate:  func(c *Config) { c.Search.MinScore = 1.5 },
			wantErr: ErrInvalidMinScore,
		},
		{
			name: "sqlite without database",
			mutate: func(c *Config) {
				c.Storage.SQLite = true
				c.Storage.Database = ""
			},
			wantErr: ErrInvalidStorage,
		},
		{
			name:    "negative cache capacity",
			mutate:  func(c *Config) { c.Storage.CacheCapacity = -1 },
			wantErr: ErrInvalidStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCollectsMultipleErrors(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Input.Document = ""
	cfg.Search.Limit = -1

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
