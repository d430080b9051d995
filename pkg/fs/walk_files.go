package fs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// WalkFiles calls fn for every regular file, or symlink to one, under the root
// matching the extensions.
// Files are visited in lexical order. Unreadable entries below the root are reported
// to params.OnError and skipped; an unreadable root fails the walk.
func (f *realFS) WalkFiles(params WalkParams, fn WalkFunc) error {
	return filepath.WalkDir(params.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == params.Root {
				return fmt.Errorf("%w %s: %w", ErrWalkRoot, params.Root, err)
			}
			if params.OnError != nil {
				params.OnError(path, err)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != params.Root && slices.Contains(params.ExcludeDirs, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !HasExtension(path, params.Extensions) {
			return nil
		}
		regular, err := isRegularFile(path, d)
		if err != nil {
			if params.OnError != nil {
				params.OnError(path, err)
			}
			return nil
		}
		if !regular {
			return nil
		}

		return fn(path)
	})
}

// isRegularFile reports whether the entry is a regular file, following a
// symlink to its target. Symlinked directories are not walked.
func isRegularFile(path string, d fs.DirEntry) (bool, error) {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// HasExtension reports whether the path ends with one of the extensions.
// An empty extension list matches every path.
func HasExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	return slices.Contains(extensions, filepath.Ext(path))
}
