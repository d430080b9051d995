// Package report renders analysis results for humans or machines.
package report

import (
	"github.com/lerenn/solvac/pkg/classifier"
)

// FileReport is the analysis of one source file.
type FileReport struct {
	Path      string
	Decisions []classifier.Decision
	// Unused lists the functions marked for removal, in declaration order.
	Unused []string
	// RunningTotal is the number of unused functions found so far in the run,
	// this file included.
	RunningTotal int
}

// Summary closes a run.
type Summary struct {
	TotalUnused  int
	TotalRemoved int
}

// Reporter is the sink receiving every event of a run.
type Reporter interface {
	// Warn reports a non fatal problem with the input.
	Warn(format string, args ...interface{})
	// FileReport reports the usage of every function of one file.
	FileReport(report FileReport)
	// FunctionRemoved reports a function removed from a file.
	FunctionRemoved(path, name string)
	// FunctionSkipped reports a function that was marked but could not be removed.
	FunctionSkipped(path, name, reason string)
	// FileUpdated reports a file rewritten on disk.
	FileUpdated(path string)
	// Summary reports the totals of the run.
	Summary(summary Summary)
	// Flush writes anything still buffered.
	Flush() error
}
