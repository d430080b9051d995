package span

import "errors"

// Error definitions for span package.
var (
	ErrFunctionNotFound = errors.New("function declaration not found")
	ErrUnterminatedBody = errors.New("unterminated function body")
)
