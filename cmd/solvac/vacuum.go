package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lerenn/solvac/pkg/dependencies"
	"github.com/lerenn/solvac/pkg/report"
	"github.com/lerenn/solvac/pkg/vacuum"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ErrUnusedFunctionsFound is returned with --fail-on-unused when the run found unused functions.
var ErrUnusedFunctionsFound = errors.New("unused functions found")

type vacuumFlags struct {
	file         string
	dir          string
	root         string
	delete       bool
	ignore       []string
	extensions   []string
	excludeDirs  []string
	workers      int
	jsonOutput   bool
	failOnUnused bool
	noColor      bool
}

func createVacuumCmd() *cobra.Command {
	var flags vacuumFlags

	vacuumCmd := &cobra.Command{
		Use:   "vacuum (--file <file> | --dir <dir>) [--root <dir>] [--delete] [--ignore <regex>]...",
		Short: "Find and optionally remove unused functions",
		Long: `Report every function declared in the target files whose name appears nowhere
else under the root directory, and optionally remove them.

Flags:
  --file            Single Solidity file to analyze
  --dir             Directory whose Solidity files are all analyzed
  --root            Directory where occurrences are counted
  --delete          Remove unused functions from their files
  --ignore          Regular expression of names that are always kept (repeatable)
  --extension       Source file extension (repeatable)
  --exclude-dir     Directory name never walked (repeatable)
  --workers         Number of files scanned in parallel
  --json            Print a JSON report
  --fail-on-unused  Exit with an error when unused functions are found
  --no-color        Disable colored output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVacuum(cmd, flags)
		},
	}

	// Add flags
	vacuumCmd.Flags().StringVar(&flags.file, "file", "", "Single Solidity file to analyze")
	vacuumCmd.Flags().StringVar(&flags.dir, "dir", "", "Directory whose Solidity files are all analyzed")
	vacuumCmd.Flags().StringVar(&flags.root, "root", "", "Directory where occurrences are counted (default from config, \".\")")
	vacuumCmd.Flags().BoolVar(&flags.delete, "delete", false, "Remove unused functions from their files")
	vacuumCmd.Flags().StringArrayVar(&flags.ignore, "ignore", nil,
		"Regular expression of names that are always kept (default from config, \"^test\")")
	vacuumCmd.Flags().StringArrayVar(&flags.extensions, "extension", nil, "Source file extension (default from config, \".sol\")")
	vacuumCmd.Flags().StringArrayVar(&flags.excludeDirs, "exclude-dir", nil, "Directory name never walked")
	vacuumCmd.Flags().IntVar(&flags.workers, "workers", 0, "Number of files scanned in parallel (default from config)")
	vacuumCmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Print a JSON report")
	vacuumCmd.Flags().BoolVar(&flags.failOnUnused, "fail-on-unused", false, "Exit with an error when unused functions are found")
	vacuumCmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	return vacuumCmd
}

func runVacuum(cmd *cobra.Command, flags vacuumFlags) error {
	params := vacuum.RunParams{
		File:    flags.file,
		Dir:     flags.dir,
		Root:    flags.root,
		Delete:  flags.delete,
		Workers: flags.workers,
	}
	// Flags replace the configured lists only when given.
	if cmd.Flags().Changed("ignore") {
		params.Ignore = nonNil(flags.ignore)
	}
	if cmd.Flags().Changed("extension") {
		params.Extensions = nonNil(flags.extensions)
	}
	if cmd.Flags().Changed("exclude-dir") {
		params.ExcludeDirs = nonNil(flags.excludeDirs)
	}

	deps := dependencies.New().
		WithConfig(newConfigManager()).
		WithLogger(newLogger()).
		WithReporter(newReporter(cmd.OutOrStdout(), flags))

	v, err := vacuum.NewVacuum(vacuum.NewVacuumParams{Dependencies: deps})
	if err != nil {
		return err
	}

	summary, err := v.Run(cmd.Context(), params)
	if err != nil {
		return err
	}

	if flags.failOnUnused && summary.TotalUnused > 0 {
		return fmt.Errorf("%w: %d", ErrUnusedFunctionsFound, summary.TotalUnused)
	}
	return nil
}

func newReporter(out io.Writer, flags vacuumFlags) report.Reporter {
	if flags.jsonOutput {
		return report.NewJSONReporter(out)
	}
	if quiet {
		return report.NewTextReporter(report.TextReporterParams{Writer: io.Discard})
	}

	color := !flags.noColor && out == os.Stdout && isatty.IsTerminal(os.Stdout.Fd())
	return report.NewTextReporter(report.TextReporterParams{Writer: out, Color: color})
}

// nonNil turns an explicitly empty list into an empty, non-nil one.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
