package deletion

import "errors"

// Error definitions for deletion package.
var (
	ErrStatFile  = errors.New("failed to stat source file")
	ErrLockFile  = errors.New("failed to lock source file")
	ErrWriteFile = errors.New("failed to write source file")
)
