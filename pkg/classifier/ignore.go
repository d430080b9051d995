// Package classifier decides which functions are kept and which are removed.
package classifier

import (
	"fmt"
	"regexp"
)

// IgnoreSet is an ordered set of patterns of function names that are always kept.
type IgnoreSet struct {
	patterns []*regexp.Regexp
}

// NewIgnoreSet compiles the given patterns, in order.
func NewIgnoreSet(patterns []string) (IgnoreSet, error) {
	set := IgnoreSet{patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return IgnoreSet{}, fmt.Errorf("%w %q: %w", ErrInvalidIgnorePattern, p, err)
		}
		set.patterns = append(set.patterns, re)
	}
	return set, nil
}

// Match reports whether name matches any pattern of the set.
func (s IgnoreSet) Match(name string) bool {
	for _, re := range s.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Patterns returns the source of every pattern, in order.
func (s IgnoreSet) Patterns() []string {
	out := make([]string, 0, len(s.patterns))
	for _, re := range s.patterns {
		out = append(out, re.String())
	}
	return out
}
