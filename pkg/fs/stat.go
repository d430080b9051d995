package fs

import "os"

// Stat returns the file info of the given path.
func (f *realFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}
