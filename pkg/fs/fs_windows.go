//go:build windows

package fs

import (
	"fmt"
	"os"
)

// FileLock acquires a file lock and returns an unlock function.
// Windows has no flock, so the lock file is created exclusively and its presence is the lock.
func (f *realFS) FileLock(filename string) (func(), error) {
	lockPath := filename + ".lock"

	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0600)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: %s exists, remove it if no other process holds it: %w", ErrFileLock, lockPath, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrFileLock, lockPath, err)
	}

	unlock := func() {
		_ = lockFile.Close()
		_ = os.Remove(lockPath)
	}

	return unlock, nil
}
