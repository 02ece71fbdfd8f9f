package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrEmptyDocument indicates a missing input document path
	ErrEmptyDocument = errors.New("empty input document")

	// ErrEmptyOutputDir indicates a missing output directory
	ErrEmptyOutputDir = errors.New("empty output directory")

	// ErrInvalidExclude indicates an exclude pattern that does not compile
	ErrInvalidExclude = errors.New("invalid exclude pattern")

	// ErrInvalidLimit indicates an out-of-range search limit
	ErrInvalidLimit = errors.New("invalid search limit")

	// ErrInvalidDimensions indicates invalid embedding dimensions
	ErrInvalidDimensions = errors.New("invalid embedding dimensions")

	// ErrInvalidMinScore indicates an out-of-range minimum score
	ErrInvalidMinScore = errors.New("invalid minimum score")

	// ErrInvalidStorage indicates invalid storage configuration
	ErrInvalidStorage = errors.New("invalid storage settings")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateInput(&cfg.Input); err != nil {
		errs = append(errs, err)
	}
	if err := validateOutput(&cfg.Output); err != nil {
		errs = append(errs, err)
	}
	if err := validatePaths(&cfg.Paths); err != nil {
		errs = append(errs, err)
	}
	if err := validateSearch(&cfg.Search); err != nil {
		errs = append(errs, err)
	}
	if err := validateStorage(&cfg.Storage); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateInput(cfg *InputConfig) error {
	if strings.TrimSpace(cfg.Document) == "" {
		return fmt.Errorf("%w: input.document is required", ErrEmptyDocument)
	}
	return nil
}

func validateOutput(cfg *OutputConfig) error {
	if strings.TrimSpace(cfg.Dir) == "" {
		return fmt.Errorf("%w: output.dir is required", ErrEmptyOutputDir)
	}
	return nil
}

func validatePaths(cfg *PathsConfig) error {
	var errs []error

	// Fail fast on patterns the walker would reject at run time.
	for _, pattern := range cfg.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidExclude, pattern, err))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateSearch(cfg *SearchConfig) error {
	var errs []error

	if cfg.Limit <= 0 || cfg.Limit > 100 {
		errs = append(errs, fmt.Errorf("%w: limit must be 1-100, got %d", ErrInvalidLimit, cfg.Limit))
	}
	if cfg.Dimensions <= 0 {
		errs = append(errs, fmt.Errorf("%w: dimensions must be positive, got %d", ErrInvalidDimensions, cfg.Dimensions))
	}
	if cfg.MinScore < 0 || cfg.MinScore > 1 {
		errs = append(errs, fmt.Errorf("%w: min_score must be in [0, 1], got %.2f", ErrInvalidMinScore, cfg.MinScore))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateStorage(cfg *StorageConfig) error {
	var errs []error

	if cfg.SQLite && strings.TrimSpace(cfg.Database) == "" {
		errs = append(errs, fmt.Errorf("%w: database is required when sqlite is enabled", ErrInvalidStorage))
	}
	if cfg.CacheCapacity < 0 {
		errs = append(errs, fmt.Errorf("%w: cache_capacity cannot be negative, got %d", ErrInvalidStorage, cfg.CacheCapacity))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
