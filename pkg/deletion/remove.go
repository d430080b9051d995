// Package deletion removes functions from source text.
package deletion

import (
	"github.com/lerenn/solvac/pkg/span"
)

// Skipped is a function that could not be removed.
type Skipped struct {
	Name string `json:"name"`
	Err  error  `json:"-"`
}

// Reason returns a human readable reason.
func (s Skipped) Reason() string {
	return s.Err.Error()
}

// Result is the outcome of removing functions from one buffer.
type Result struct {
	// Content is the buffer once every resolvable function has been removed.
	Content string
	// Removed lists the functions actually removed, in order.
	Removed []string
	// Skipped lists the functions left in place.
	Skipped []Skipped
}

// Changed reports whether at least one function was removed.
func (r Result) Changed() bool {
	return len(r.Removed) > 0
}

// Remove removes every named function from content, one at a time and in the
// given order. Each span is located against the buffer as left by the previous
// removal. Functions whose span cannot be resolved are skipped.
func Remove(content string, names []string) Result {
	result := Result{Content: content}
	for _, name := range names {
		s, err := span.Locate(result.Content, name)
		if err != nil {
			result.Skipped = append(result.Skipped, Skipped{Name: name, Err: err})
			continue
		}
		result.Content = s.Cut(result.Content)
		result.Removed = append(result.Removed, name)
	}
	return result
}
