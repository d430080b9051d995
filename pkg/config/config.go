// Package config provides configuration management functionality for the solvac application.
package config

import (
	"fmt"
	"runtime"
	"strings"
)

// DefaultConfigFileName is the configuration file looked up in the working directory.
const DefaultConfigFileName = ".solvac.yaml"

// Config represents the application configuration.
type Config struct {
	// Root is the directory scanned when counting occurrences.
	Root string `yaml:"root"`
	// Extensions selects source files, both targets and counted files.
	Extensions []string `yaml:"extensions"`
	// Ignore holds the regular expressions of names that are always kept.
	// A nil list falls back to the default; any other list replaces it.
	Ignore []string `yaml:"ignore"`
	// Workers bounds the number of files scanned in parallel. 0 means one per CPU.
	Workers int `yaml:"workers"`
	// ExcludeDirs lists directory names that are never walked.
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if len(c.Extensions) == 0 {
		return ErrNoExtensions
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// EffectiveWorkers returns the number of parallel workers to use.
func (c Config) EffectiveWorkers() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// withDefaults fills every unset field from the given defaults.
func (c Config) withDefaults(defaults Config) Config {
	if c.Root == "" {
		c.Root = defaults.Root
	}
	if c.Extensions == nil {
		c.Extensions = defaults.Extensions
	}
	if c.Ignore == nil {
		c.Ignore = defaults.Ignore
	}
	if c.ExcludeDirs == nil {
		c.ExcludeDirs = defaults.ExcludeDirs
	}
	return c
}
