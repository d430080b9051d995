package deletion

import (
	"fmt"

	"github.com/lerenn/solvac/pkg/fs"
	"github.com/lerenn/solvac/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=engine.go -destination=mocks/engine.gen.go -package=mocks

// ApplyParams contains parameters for removing functions from one file.
type ApplyParams struct {
	Path string
	// Content is the file content read during analysis.
	Content string
	// Names are the functions to remove, in order.
	Names []string
}

// Engine removes functions from source files.
type Engine interface {
	// Apply removes the named functions from the content and, when anything was
	// removed, replaces the file with the result in a single atomic write.
	Apply(params ApplyParams) (Result, error)
}

// NewEngineParams contains parameters for creating a new Engine.
type NewEngineParams struct {
	FS     fs.FS
	Logger logger.Logger
}

type realEngine struct {
	fs     fs.FS
	logger logger.Logger
}

// NewEngine creates a new Engine instance.
func NewEngine(params NewEngineParams) Engine {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realEngine{
		fs:     params.FS,
		logger: log,
	}
}

// Apply removes the named functions from params.Path.
func (e *realEngine) Apply(params ApplyParams) (Result, error) {
	result := Remove(params.Content, params.Names)
	for _, s := range result.Skipped {
		e.logger.Logf("cannot remove %s from %s: %v", s.Name, params.Path, s.Err)
	}
	if !result.Changed() {
		return result, nil
	}

	if err := e.write(params.Path, result.Content); err != nil {
		return Result{Content: params.Content, Skipped: result.Skipped}, err
	}

	e.logger.Logf("wrote %s: %d bytes removed", params.Path, len(params.Content)-len(result.Content))
	return result, nil
}

func (e *realEngine) write(path, content string) error {
	info, err := e.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrStatFile, path, err)
	}

	unlock, err := e.fs.FileLock(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrLockFile, path, err)
	}
	defer unlock()

	if err := e.fs.WriteFileAtomic(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteFile, path, err)
	}
	return nil
}
