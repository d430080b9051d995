package vacuum

import (
	"context"
	"fmt"

	"github.com/lerenn/solvac/pkg/matcher"
	"golang.org/x/sync/errgroup"
)

// readTargets reads every target once and extracts its declared functions.
// Files are independent, so they are read in parallel; the result keeps the
// order of paths.
func (v *realVacuum) readTargets(ctx context.Context, paths []string, workers int) ([]SourceFile, error) {
	files := make([]SourceFile, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			content, err := v.deps.FS.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%w %s: %w", ErrReadTarget, path, err)
			}

			files[i] = SourceFile{
				Path:      path,
				Content:   string(content),
				Functions: matcher.ExtractFunctions(string(content)),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// declaredNames returns every name declared by the files, once.
func declaredNames(files []SourceFile) []string {
	var names []string
	seen := make(map[string]bool)
	for _, f := range files {
		for _, name := range f.Functions {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
