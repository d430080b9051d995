package vacuum

import (
	"context"
	"fmt"

	"github.com/lerenn/solvac/pkg/classifier"
	"github.com/lerenn/solvac/pkg/config"
	"github.com/lerenn/solvac/pkg/deletion"
	"github.com/lerenn/solvac/pkg/occurrence"
	"github.com/lerenn/solvac/pkg/report"
)

// Run analyzes the targets and, when params.Delete is set, removes their unused functions.
//
// Occurrences are counted once, over the declared names of every target, before
// any file is modified. Removing functions from one target therefore never
// changes the decisions taken for another one.
func (v *realVacuum) Run(ctx context.Context, params RunParams) (Summary, error) {
	if params.File == "" && params.Dir == "" {
		return Summary{}, ErrNoTarget
	}

	params, err := v.resolveParams(params)
	if err != nil {
		return Summary{}, err
	}
	if err := (config.Config{
		Root:       params.Root,
		Extensions: params.Extensions,
		Workers:    params.Workers,
	}).Validate(); err != nil {
		return Summary{}, err
	}

	ignore, err := classifier.NewIgnoreSet(params.Ignore)
	if err != nil {
		return Summary{}, err
	}
	v.VerbosePrint("keeping functions matching %q", ignore.Patterns())

	if err := v.checkRoot(params.Root); err != nil {
		return Summary{}, err
	}

	paths, err := v.resolveTargets(params)
	if err != nil {
		return Summary{}, err
	}
	v.VerbosePrint("analyzing %d file(s) against %s", len(paths), params.Root)

	files, err := v.readTargets(ctx, paths, params.Workers)
	if err != nil {
		return Summary{}, err
	}

	counter := v.deps.CounterProvider(occurrence.NewCounterParams{
		FS:      v.deps.FS,
		Logger:  v.deps.Logger,
		Workers: params.Workers,
	})
	counts, err := counter.Count(ctx, occurrence.CountParams{
		Root:        params.Root,
		Names:       declaredNames(files),
		Extensions:  params.Extensions,
		ExcludeDirs: params.ExcludeDirs,
	})
	if err != nil {
		return Summary{}, fmt.Errorf("failed to count occurrences: %w", err)
	}

	var engine deletion.Engine
	if params.Delete {
		engine = v.deps.EngineProvider(deletion.NewEngineParams{
			FS:     v.deps.FS,
			Logger: v.deps.Logger,
		})
	}

	summary := Summary{Files: make([]FileSummary, 0, len(files))}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		fileSummary, err := v.processFile(file, counts, ignore, engine, &summary)
		summary.Files = append(summary.Files, fileSummary)
		if err != nil {
			return summary, err
		}
	}

	v.deps.Reporter.Summary(report.Summary{
		TotalUnused:  summary.TotalUnused,
		TotalRemoved: summary.TotalRemoved,
	})
	if err := v.deps.Reporter.Flush(); err != nil {
		return summary, fmt.Errorf("failed to write report: %w", err)
	}

	return summary, nil
}

// processFile reports one file and removes its unused functions when engine is set.
func (v *realVacuum) processFile(
	file SourceFile,
	counts occurrence.Counts,
	ignore classifier.IgnoreSet,
	engine deletion.Engine,
	summary *Summary,
) (FileSummary, error) {
	decisions := classifier.Classify(file.Functions, counts, ignore)
	unused := classifier.Unused(decisions)
	summary.TotalUnused += len(unused)

	v.deps.Reporter.FileReport(report.FileReport{
		Path:         file.Path,
		Decisions:    decisions,
		Unused:       unused,
		RunningTotal: summary.TotalUnused,
	})

	result := FileSummary{
		Path:      file.Path,
		Decisions: decisions,
		Unused:    unused,
	}
	if engine == nil || len(unused) == 0 {
		return result, nil
	}

	removal, err := engine.Apply(deletion.ApplyParams{
		Path:    file.Path,
		Content: file.Content,
		Names:   unused,
	})
	result.Skipped = removal.Skipped
	for _, s := range removal.Skipped {
		v.deps.Reporter.FunctionSkipped(file.Path, s.Name, s.Reason())
	}
	if err != nil {
		return result, err
	}

	result.Removed = removal.Removed
	summary.TotalRemoved += len(removal.Removed)
	for _, name := range removal.Removed {
		v.deps.Reporter.FunctionRemoved(file.Path, name)
	}
	if removal.Changed() {
		v.deps.Reporter.FileUpdated(file.Path)
	}

	return result, nil
}
