// Package vacuum finds unused functions in Solidity sources and optionally removes them.
package vacuum

import (
	"context"

	"github.com/lerenn/solvac/pkg/classifier"
	"github.com/lerenn/solvac/pkg/deletion"
	"github.com/lerenn/solvac/pkg/dependencies"
)

// RunParams contains parameters for one run.
type RunParams struct {
	// File is a single source file to analyze.
	File string
	// Dir is a directory whose source files are all analyzed.
	Dir string
	// Root is the directory where occurrences are counted.
	Root string
	// Delete removes the unused functions from their files.
	Delete bool
	// Ignore holds the patterns of names that are always kept.
	Ignore []string
	// Extensions selects source files.
	Extensions []string
	// ExcludeDirs lists directory names never walked.
	ExcludeDirs []string
	// Workers bounds parallel file reads.
	Workers int
}

// SourceFile is a target file as read at the start of a run.
type SourceFile struct {
	Path      string
	Content   string
	Functions []string
}

// FileSummary is the outcome of a run for one file.
type FileSummary struct {
	Path      string
	Decisions []classifier.Decision
	Unused    []string
	Removed   []string
	Skipped   []deletion.Skipped
}

// Summary is the outcome of a run.
type Summary struct {
	Files        []FileSummary
	TotalUnused  int
	TotalRemoved int
}

// Vacuum interface provides the unused function analysis.
type Vacuum interface {
	// Run analyzes the targets and, when asked, removes their unused functions.
	Run(ctx context.Context, params RunParams) (Summary, error)
}

// NewVacuumParams contains parameters for creating a new Vacuum instance.
type NewVacuumParams struct {
	Dependencies *dependencies.Dependencies
}

type realVacuum struct {
	deps *dependencies.Dependencies
}

// NewVacuum creates a new Vacuum instance.
func NewVacuum(params NewVacuumParams) (Vacuum, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realVacuum{
		deps: deps,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (v *realVacuum) VerbosePrint(msg string, args ...interface{}) {
	v.deps.Logger.Logf(msg, args...)
}
