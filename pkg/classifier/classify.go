package classifier

import (
	"github.com/lerenn/solvac/pkg/occurrence"
)

// UsedThreshold is the occurrence count a function must exceed to be used.
// The declaration itself is one occurrence.
const UsedThreshold = 1

// Decision is the keep/remove verdict for one declared function.
type Decision struct {
	Name    string `json:"name"`
	Count   int    `json:"occurrences"`
	Ignored bool   `json:"ignored"`
	Remove  bool   `json:"remove"`
}

// Classify returns one decision per name, in order. A function is removed when
// its count is at most UsedThreshold and no ignore pattern matches it.
func Classify(names []string, counts occurrence.Counts, ignore IgnoreSet) []Decision {
	decisions := make([]Decision, 0, len(names))
	for _, name := range names {
		d := Decision{
			Name:    name,
			Count:   counts[name],
			Ignored: ignore.Match(name),
		}
		d.Remove = !d.Ignored && d.Count <= UsedThreshold
		decisions = append(decisions, d)
	}
	return decisions
}

// Unused returns the names of the decisions marked for removal, in order.
func Unused(decisions []Decision) []string {
	var names []string
	for _, d := range decisions {
		if d.Remove {
			names = append(names, d.Name)
		}
	}
	return names
}
