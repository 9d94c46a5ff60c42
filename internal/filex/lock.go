package filex

import (
	"fmt"
	"os"
)

// Lock is an exclusive advisory lock held on a sidecar file.
type Lock struct {
	f *os.File
}

// AcquireLock blocks until it holds an exclusive lock on path, creating the
// file with 0600 permissions if needed. The lock is released by Release or
// when the process exits.
func AcquireLock(path string) (*Lock, error) {
	if _, err := EnsureDir(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file %s: %w", path, err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("acquire lock on %s: %w", path, err)
	}
	return &Lock{f: f}, nil
}

// Release drops the lock. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := unlockFile(l.f)
	if cerr := l.f.Close(); err == nil {
		err = cerr
	}
	l.f = nil
	return err
}
