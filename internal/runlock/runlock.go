// Package runlock serializes batch runs against one database across
// processes with an advisory file lock.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("another filingdesk run holds the lock")

type Lock struct {
	fl *flock.Flock
}

// TryAcquire takes the exclusive lock at path without waiting.
func TryAcquire(path string) (*Lock, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating lock directory: %w", err)
		}
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, path)
	}
	return &Lock{fl: fl}, nil
}

func (l *Lock) Release() error {
	return l.fl.Unlock()
}

// With runs fn while holding the lock at path.
func With(path string, fn func() error) (err error) {
	l, err := TryAcquire(path)
	if err != nil {
		return err
	}
	defer func() {
		if uerr := l.Release(); uerr != nil && err == nil {
			err = fmt.Errorf("releasing lock: %w", uerr)
		}
	}()
	return fn()
}
