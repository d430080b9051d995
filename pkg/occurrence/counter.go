package occurrence

import (
	"context"
	"fmt"

	"github.com/lerenn/solvac/pkg/fs"
	"github.com/lerenn/solvac/pkg/logger"
	"golang.org/x/sync/errgroup"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=counter.go -destination=mocks/counter.gen.go -package=mocks

// CountParams contains parameters for a count over a source tree.
type CountParams struct {
	Root        string
	Names       []string
	Extensions  []string
	ExcludeDirs []string
}

// Counter counts name occurrences over every source file under a root.
type Counter interface {
	// Count returns, for every name, its occurrences across all source files
	// under the root, declaration sites included. Unreadable files are logged
	// and skipped.
	Count(ctx context.Context, params CountParams) (Counts, error)
}

// NewCounterParams contains parameters for creating a new Counter.
type NewCounterParams struct {
	FS     fs.FS
	Logger logger.Logger
	// Workers bounds the number of files read at once. Values below 1 mean 1.
	Workers int
}

type realCounter struct {
	fs      fs.FS
	logger  logger.Logger
	workers int
}

// NewCounter creates a new Counter instance.
func NewCounter(params NewCounterParams) Counter {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	workers := params.Workers
	if workers < 1 {
		workers = 1
	}

	return &realCounter{
		fs:      params.FS,
		logger:  log,
		workers: workers,
	}
}

// Count returns the occurrences of every name under params.Root.
func (c *realCounter) Count(ctx context.Context, params CountParams) (Counts, error) {
	files, err := c.listFiles(params)
	if err != nil {
		return nil, err
	}

	// One partial result per file, folded once every worker is done.
	partials := make([]Counts, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			content, err := c.fs.ReadFile(path)
			if err != nil {
				c.logger.Logf("skipping unreadable file %s: %v", path, err)
				return nil
			}

			partials[i] = CountIn(string(content), params.Names)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := NewCounts(params.Names)
	for _, partial := range partials {
		counts.Merge(partial)
	}

	c.logger.Logf("counted %d names over %d files under %s", len(counts), len(files), params.Root)
	return counts, nil
}

func (c *realCounter) listFiles(params CountParams) ([]string, error) {
	var files []string
	err := c.fs.WalkFiles(fs.WalkParams{
		Root:        params.Root,
		Extensions:  params.Extensions,
		ExcludeDirs: params.ExcludeDirs,
		OnError: func(path string, err error) {
			c.logger.Logf("skipping unreadable entry %s: %v", path, err)
		},
	}, func(path string) error {
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListFiles, err)
	}
	return files, nil
}
