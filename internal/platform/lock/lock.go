package lock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const retryDelay = 50 * time.Millisecond

// FileLock serializes state mutations across processes with an advisory
// exclusive lock. WithLock scopes the acquisition strictly to fn and
// releases on every exit path.
type FileLock struct {
	path string
}

func New(path string) *FileLock {
	return &FileLock{path: path}
}

func (l *FileLock) WithLock(ctx context.Context, fn func(context.Context) error) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create lock dir: %w", err)
	}
	fl := flock.New(l.path)
	locked, err := fl.TryLockContext(ctx, retryDelay)
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", l.path, err)
	}
	if !locked {
		return fmt.Errorf("acquire lock %s: not acquired", l.path)
	}
	defer func() { _ = fl.Unlock() }()
	return fn(ctx)
}
