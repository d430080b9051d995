package fs

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
func (f *realFS) WriteFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	// Create temporary file in the same directory so the rename stays on one device
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	// Ensure cleanup on error
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	// Write data to temporary file
	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err = tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return err
	}

	// Close temporary file
	if err = tmpFile.Close(); err != nil {
		return err
	}

	// Set permissions on temporary file
	if err = os.Chmod(tmpPath, perm); err != nil {
		return err
	}

	// Atomically rename temporary file to target file
	return os.Rename(tmpPath, filename)
}
