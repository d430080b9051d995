// Package dependencies provides a centralized dependency container for the solvac application.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/solvac/pkg/config"
	"github.com/lerenn/solvac/pkg/deletion"
	"github.com/lerenn/solvac/pkg/fs"
	"github.com/lerenn/solvac/pkg/logger"
	"github.com/lerenn/solvac/pkg/occurrence"
	"github.com/lerenn/solvac/pkg/report"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing              = errors.New("fs dependency is required but not set")
	ErrConfigMissing          = errors.New("config dependency is required but not set")
	ErrLoggerMissing          = errors.New("logger dependency is required but not set")
	ErrReporterMissing        = errors.New("reporter dependency is required but not set")
	ErrCounterProviderMissing = errors.New("counter provider dependency is required but not set")
	ErrEngineProviderMissing  = errors.New("engine provider dependency is required but not set")
)

// CounterProvider builds the occurrence counter once the workers are known.
type CounterProvider func(params occurrence.NewCounterParams) occurrence.Counter

// EngineProvider builds the deletion engine.
type EngineProvider func(params deletion.NewEngineParams) deletion.Engine

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS              fs.FS
	Config          config.Manager
	Logger          logger.Logger
	Reporter        report.Reporter
	CounterProvider CounterProvider
	EngineProvider  EngineProvider
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		FS:              fs.NewFS(),
		Logger:          logger.NewNoopLogger(),
		CounterProvider: occurrence.NewCounter,
		EngineProvider:  deletion.NewEngine,
		// Note: Config and Reporter are left nil as they depend on
		// command line flags and are set via With* methods
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithReporter sets the reporter and returns the instance for chaining.
func (d *Dependencies) WithReporter(reporter report.Reporter) *Dependencies {
	d.Reporter = reporter
	return d
}

// WithCounterProvider sets the counter provider and returns the instance for chaining.
func (d *Dependencies) WithCounterProvider(cp CounterProvider) *Dependencies {
	d.CounterProvider = cp
	return d
}

// WithEngineProvider sets the engine provider and returns the instance for chaining.
func (d *Dependencies) WithEngineProvider(ep EngineProvider) *Dependencies {
	d.EngineProvider = ep
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS == nil, ErrFSMissing},
		{d.Config == nil, ErrConfigMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.Reporter == nil, ErrReporterMissing},
		{d.CounterProvider == nil, ErrCounterProviderMissing},
		{d.EngineProvider == nil, ErrEngineProviderMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}
