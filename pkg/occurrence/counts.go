// Package occurrence counts how often function names appear across a source tree.
package occurrence

import "strings"

// Counts maps a function name to its number of literal occurrences.
type Counts map[string]int

// NewCounts returns counts holding a zero entry for every name.
func NewCounts(names []string) Counts {
	counts := make(Counts, len(names))
	for _, name := range names {
		counts[name] = 0
	}
	return counts
}

// Merge adds other into c. Merging is commutative and associative, so partial
// counts can be folded in any order.
func (c Counts) Merge(other Counts) {
	for name, n := range other {
		c[name] += n
	}
}

// CountIn returns the number of non-overlapping occurrences of every name in content.
func CountIn(content string, names []string) Counts {
	counts := NewCounts(names)
	for name := range counts {
		if name == "" {
			continue
		}
		counts[name] = strings.Count(content, name)
	}
	return counts
}
