package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lerenn/solvac/pkg/classifier"
)

// JSONReport is the document written by the JSON reporter.
type JSONReport struct {
	Files        []*JSONFile `json:"files"`
	Warnings     []string    `json:"warnings,omitempty"`
	TotalUnused  int         `json:"total_unused"`
	TotalRemoved int         `json:"total_removed"`
}

// JSONFile is the analysis of one file in the JSON report.
type JSONFile struct {
	Path      string                `json:"path"`
	Functions []classifier.Decision `json:"functions"`
	Unused    []string              `json:"unused"`
	Removed   []string              `json:"removed,omitempty"`
	Skipped   []JSONSkipped         `json:"skipped,omitempty"`
	Updated   bool                  `json:"updated"`
}

// JSONSkipped is a function that could not be removed.
type JSONSkipped struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type jsonReporter struct {
	w      io.Writer
	report JSONReport
	byPath map[string]*JSONFile
}

// NewJSONReporter creates a reporter writing a single JSON document on Flush.
func NewJSONReporter(w io.Writer) Reporter {
	return &jsonReporter{
		w:      w,
		report: JSONReport{Files: []*JSONFile{}},
		byPath: make(map[string]*JSONFile),
	}
}

func (j *jsonReporter) file(path string) *JSONFile {
	f, ok := j.byPath[path]
	if !ok {
		f = &JSONFile{Path: path, Functions: []classifier.Decision{}, Unused: []string{}}
		j.byPath[path] = f
		j.report.Files = append(j.report.Files, f)
	}
	return f
}

// Warn records a warning.
func (j *jsonReporter) Warn(format string, args ...interface{}) {
	j.report.Warnings = append(j.report.Warnings, fmt.Sprintf(format, args...))
}

// FileReport records the analysis of one file.
func (j *jsonReporter) FileReport(report FileReport) {
	f := j.file(report.Path)
	f.Functions = append(f.Functions, report.Decisions...)
	f.Unused = append(f.Unused, report.Unused...)
}

// FunctionRemoved records a removal.
func (j *jsonReporter) FunctionRemoved(path, name string) {
	f := j.file(path)
	f.Removed = append(f.Removed, name)
}

// FunctionSkipped records a function left in place.
func (j *jsonReporter) FunctionSkipped(path, name, reason string) {
	f := j.file(path)
	f.Skipped = append(f.Skipped, JSONSkipped{Name: name, Reason: reason})
}

// FileUpdated records a rewritten file.
func (j *jsonReporter) FileUpdated(path string) {
	j.file(path).Updated = true
}

// Summary records the totals.
func (j *jsonReporter) Summary(summary Summary) {
	j.report.TotalUnused = summary.TotalUnused
	j.report.TotalRemoved = summary.TotalRemoved
}

// Flush writes the JSON document.
func (j *jsonReporter) Flush() error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "\t")
	return enc.Encode(j.report)
}
