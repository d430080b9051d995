package classifier

import "errors"

// Error definitions for classifier package.
var (
	ErrInvalidIgnorePattern = errors.New("invalid ignore pattern")
)
