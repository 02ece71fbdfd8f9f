package config

// Config represents the complete lexicon configuration.
// It can be loaded from .lexicon/config.yml with environment variable overrides.
type Config struct {
	Input   InputConfig   `yaml:"input" mapstructure:"input"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
	Search  SearchConfig  `yaml:"search" mapstructure:"search"`
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`
}

// InputConfig locates the declaration document to extract from.
type InputConfig struct {
	Document string `yaml:"document" mapstructure:"document"` // path to the declaration document JSON
}

// OutputConfig defines where run artifacts are written.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"` // artifact directory, relative to the project root
}

// PathsConfig defines which declarations to skip during extraction.
type PathsConfig struct {
	Exclude []string `yaml:"exclude" mapstructure:"exclude"` // glob patterns matched against dotted full paths
}

// SearchConfig tunes the keyword and semantic searchers.
type SearchConfig struct {
	Limit      int     `yaml:"limit" mapstructure:"limit"`           // default result limit
	Dimensions int     `yaml:"dimensions" mapstructure:"dimensions"` // embedding vector dimensions
	MinScore   float64 `yaml:"min_score" mapstructure:"min_score"`   // minimum similarity for semantic results
}

// StorageConfig defines the optional SQLite backend and lookup cache.
type StorageConfig struct {
	SQLite        bool   `yaml:"sqlite" mapstructure:"sqlite"`                 // also persist records to SQLite with FTS5
	Database      string `yaml:"database" mapstructure:"database"`             // database file, relative to the output dir
	CacheCapacity int    `yaml:"cache_capacity" mapstructure:"cache_capacity"` // lookup cache entries
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Document: "docs.json",
		},
		Output: OutputConfig{
			Dir: ".lexicon/out",
		},
		Paths: PathsConfig{
			Exclude: nil, // extract everything unless told otherwise
		},
		Search: SearchConfig{
			Limit:      15,
			Dimensions: 256,
			MinScore:   0,
		},
		Storage: StorageConfig{
			SQLite:        false,
			Database:      "lexicon.db",
			CacheCapacity: 10000,
		},
	}
}
