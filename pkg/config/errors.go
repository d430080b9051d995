package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("configuration file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrConfigExists    = errors.New("configuration file already exists")

	// Configuration validation errors.
	ErrNoExtensions     = errors.New("at least one extension is required")
	ErrInvalidExtension = errors.New("extension must start with a dot")
	ErrInvalidWorkers   = errors.New("workers cannot be negative")
)
