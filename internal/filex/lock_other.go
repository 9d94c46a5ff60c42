//go:build !unix

package filex

import "os"

// Advisory locks are not available; callers still serialise in-process.
func lockFile(*os.File) error   { return nil }
func unlockFile(*os.File) error { return nil }

// TryLock always reports the lock as free on platforms without flock.
func TryLock(string) (bool, error) { return true, nil }
