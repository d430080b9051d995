package report

import (
	"fmt"
	"io"

	"github.com/lerenn/solvac/pkg/classifier"
)

// TextReporterParams contains parameters for creating a text reporter.
type TextReporterParams struct {
	Writer io.Writer
	// Color enables colors. They are still dropped when the writer is not a terminal.
	Color bool
}

type textReporter struct {
	w      io.Writer
	styles styles
}

// NewTextReporter creates a reporter printing a human readable report.
func NewTextReporter(params TextReporterParams) Reporter {
	return &textReporter{
		w:      params.Writer,
		styles: newStyles(params.Writer, params.Color),
	}
}

func (t *textReporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(t.w, format, args...)
}

// Warn prints a warning line.
func (t *textReporter) Warn(format string, args ...interface{}) {
	t.printf("%s\n", t.styles.warning.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// FileReport prints the usage of every function and the removal candidates.
func (t *textReporter) FileReport(report FileReport) {
	t.printf("\n%s\n", t.styles.title.Render(fmt.Sprintf("Function Usage Report for %q:", report.Path)))
	for _, d := range report.Decisions {
		t.printf("%s: %s\n", t.styles.name.Render(d.Name), t.occurrences(d))
	}

	if len(report.Unused) == 0 {
		t.printf("\n%s\n", t.styles.used.Render(fmt.Sprintf("No unused functions found in %q.", report.Path)))
		return
	}

	t.printf("\nFunctions marked for removal in %q:\n", report.Path)
	for _, name := range report.Unused {
		t.printf("- %s\n", t.styles.unused.Render(name))
	}
	t.printf("Unused functions so far: %d\n", report.RunningTotal)
}

func (t *textReporter) occurrences(d classifier.Decision) string {
	text := fmt.Sprintf("%d occurrences", d.Count)
	switch {
	case d.Ignored:
		return t.styles.ignored.Render(text + " (ignored)")
	case d.Remove:
		return t.styles.unused.Render(text)
	default:
		return t.styles.used.Render(text)
	}
}

// FunctionRemoved prints a removal notice.
func (t *textReporter) FunctionRemoved(_ string, name string) {
	t.printf("%s\n", t.styles.removed.Render("Removed function: "+name))
}

// FunctionSkipped prints why a function was left in place.
func (t *textReporter) FunctionSkipped(_ string, name, reason string) {
	t.printf("%s\n", t.styles.warning.Render(fmt.Sprintf("Skipped function: %s (%s)", name, reason)))
}

// FileUpdated prints an update notice.
func (t *textReporter) FileUpdated(path string) {
	t.printf("Updated %q with unused functions removed.\n", path)
}

// Summary prints the totals.
func (t *textReporter) Summary(summary Summary) {
	t.printf("\n%s\n", t.styles.total.Render(fmt.Sprintf("Total unused functions found: %d", summary.TotalUnused)))
	if summary.TotalRemoved > 0 {
		t.printf("Total functions removed: %d\n", summary.TotalRemoved)
	}
}

// Flush does nothing: the text report is written as it goes.
func (t *textReporter) Flush() error {
	return nil
}
