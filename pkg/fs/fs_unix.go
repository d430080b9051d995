//go:build !windows

package fs

import (
	"fmt"
	"os"
	"syscall"
)

// FileLock acquires an exclusive, non-blocking lock on "<filename>.lock" and returns
// an unlock function that releases and removes it.
func (f *realFS) FileLock(filename string) (func(), error) {
	lockPath := filename + ".lock"

	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileLock, err)
	}

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		_ = lockFile.Close()
		return nil, fmt.Errorf("%w: %s is held by another process: %w", ErrFileLock, lockPath, err)
	}

	unlock := func() {
		_ = syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)
		_ = lockFile.Close()
		_ = os.Remove(lockPath)
	}

	return unlock, nil
}
