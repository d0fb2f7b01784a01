package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const (
	DefaultLockTimeout = 3 * time.Second
	lockRetryInterval  = 50 * time.Millisecond
	lockFileName       = ".lock"
	docExt             = ".json"
)

// File keeps one document per key in a directory. Each call holds an
// advisory lock on the directory so separate processes never observe a
// half-written document.
type File struct {
	dir         string
	lock        *flock.Flock
	lockTimeout time.Duration
	mu          sync.Mutex
}

func NewFile(dir string, lockTimeout time.Duration) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %q: %w", dir, err)
	}
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}

	return &File{
		dir:         dir,
		lock:        flock.New(filepath.Join(dir, lockFileName)),
		lockTimeout: lockTimeout,
	}, nil
}

func (f *File) Path(key string) string {
	return filepath.Join(f.dir, key+docExt)
}

func (f *File) Get(key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	var data []byte
	err := f.withLock(func() error {
		var err error
		data, err = os.ReadFile(f.Path(key))
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotExist
		}
		if err != nil {
			return fmt.Errorf("%w: failed to read %q: %v", ErrUnavailable, key, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (f *File) Set(key string, doc []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	return f.withLock(func() error {
		path := f.Path(key)
		tmpPath := path + ".tmp"
		if err := os.WriteFile(tmpPath, doc, 0o644); err != nil {
			return fmt.Errorf("%w: failed to write %q: %v", ErrUnavailable, key, err)
		}
		if err := os.Rename(tmpPath, path); err != nil {
			_ = os.Remove(tmpPath)
			return fmt.Errorf("%w: failed to replace %q: %v", ErrUnavailable, key, err)
		}
		return nil
	})
}

func (f *File) Remove(key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	return f.withLock(func() error {
		err := os.Remove(f.Path(key))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: failed to remove %q: %v", ErrUnavailable, key, err)
		}
		return nil
	})
}

func (f *File) withLock(fn func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), f.lockTimeout)
	defer cancel()

	locked, err := f.lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return fmt.Errorf("%w: failed to acquire lock: %v", ErrUnavailable, err)
	}
	if !locked {
		return fmt.Errorf("%w: could not acquire lock", ErrUnavailable)
	}
	defer func() { _ = f.lock.Unlock() }()

	return fn()
}
