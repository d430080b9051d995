package occurrence

import "errors"

// Error definitions for occurrence package.
var (
	ErrListFiles = errors.New("failed to list source files")
)
