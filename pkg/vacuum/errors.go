package vacuum

import "errors"

// Error definitions for vacuum package.
var (
	// Input errors.
	ErrNoTarget       = errors.New("either --file or --dir must be specified")
	ErrTargetNotFound = errors.New("target not found")
	ErrRootNotFound   = errors.New("root directory not found")
	ErrRootNotDir     = errors.New("root is not a directory")

	// Read errors.
	ErrReadTarget = errors.New("failed to read source file")
)
