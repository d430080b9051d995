// Package fs provides file system operations used to scan and rewrite source files.
package fs

import (
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// WalkFunc is called for every regular file selected by WalkFiles.
type WalkFunc func(path string) error

// WalkParams contains parameters for walking a directory tree.
type WalkParams struct {
	Root string
	// Extensions selects files by extension (".sol"). Empty selects every file.
	Extensions []string
	// ExcludeDirs lists directory base names that are never entered.
	ExcludeDirs []string
	// OnError is called for entries that cannot be read. The walk goes on.
	OnError func(path string, err error)
}

// FS interface provides file system operations for source scanning and rewriting.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// Stat returns the file info of the given path.
	Stat(path string) (os.FileInfo, error)

	// WalkFiles calls fn for every regular file under the root matching the extensions.
	WalkFiles(params WalkParams, fn WalkFunc) error

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// FileLock acquires a file lock and returns an unlock function.
	FileLock(filename string) (func(), error)
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
