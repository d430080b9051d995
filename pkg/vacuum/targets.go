package vacuum

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/solvac/pkg/fs"
)

// checkRoot fails when the root is missing or is not a directory.
func (v *realVacuum) checkRoot(root string) error {
	exists, err := v.deps.FS.Exists(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRootNotFound, root, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	isDir, err := v.deps.FS.IsDir(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRootNotFound, root, err)
	}
	if !isDir {
		return fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}
	return nil
}

// resolveTargets returns the files to analyze: the single file first, then the
// directory's source files in walk order. A file reached twice is kept once.
func (v *realVacuum) resolveTargets(params RunParams) ([]string, error) {
	var targets []string
	seen := make(map[string]bool)
	add := func(path string) {
		key := targetKey(path)
		if seen[key] {
			return
		}
		seen[key] = true
		targets = append(targets, path)
	}

	if params.File != "" {
		if err := v.checkTarget(params.File); err != nil {
			return nil, err
		}
		if !fs.HasExtension(params.File, params.Extensions) {
			v.deps.Reporter.Warn("%q does not have a %s extension.", params.File, params.Extensions[0])
		}
		add(params.File)
	}

	if params.Dir != "" {
		if err := v.checkTarget(params.Dir); err != nil {
			return nil, err
		}
		err := v.deps.FS.WalkFiles(fs.WalkParams{
			Root:        params.Dir,
			Extensions:  params.Extensions,
			ExcludeDirs: params.ExcludeDirs,
			OnError: func(path string, err error) {
				v.VerbosePrint("skipping unreadable entry %s: %v", path, err)
			},
		}, func(path string) error {
			add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", params.Dir, err)
		}
	}

	return targets, nil
}

// targetKey identifies a file whatever the spelling of its path: relative or
// absolute, and through symlinks.
func targetKey(path string) string {
	key, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(key); err == nil {
		key = resolved
	}
	return key
}

func (v *realVacuum) checkTarget(path string) error {
	exists, err := v.deps.FS.Exists(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTargetNotFound, path, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrTargetNotFound, path)
	}
	return nil
}
