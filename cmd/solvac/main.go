// Package main provides the command-line interface for the solvac application.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lerenn/solvac/pkg/config"
	"github.com/lerenn/solvac/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// newConfigManager returns the manager of the selected configuration file.
func newConfigManager() config.Manager {
	path := configPath
	if path == "" {
		path = config.DefaultConfigFileName
	}
	return config.NewManager(path)
}

// newLogger returns the diagnostics logger, writing to stderr in verbose mode only.
func newLogger() logger.Logger {
	if verbose {
		return logger.NewWriterLogger(os.Stderr)
	}
	return logger.NewNoopLogger()
}

func createRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "solvac",
		Short: "Solidity vacuum - unused function finder",
		Long: `Find Solidity functions that are never referenced anywhere in a project ` +
			`and optionally remove them from their source files.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Specify a custom config file path (default "+config.DefaultConfigFileName+")")

	// Add subcommands
	rootCmd.AddCommand(createVacuumCmd(), createInitCmd())

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := createRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}
