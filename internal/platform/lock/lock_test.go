package lock_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"ttrack/internal/platform/lock"
)

func TestWithLockRunsFn(t *testing.T) {
	t.Parallel()
	lk := lock.New(filepath.Join(t.TempDir(), "tracker.lock"))
	ran := false
	err := lk.WithLock(context.Background(), func(context.Context) error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("with lock: %v", err)
	}
	if !ran {
		t.Fatal("fn did not run")
	}
}

func TestWithLockPropagatesFnError(t *testing.T) {
	t.Parallel()
	lk := lock.New(filepath.Join(t.TempDir(), "tracker.lock"))
	boom := errors.New("boom")
	if err := lk.WithLock(context.Background(), func(context.Context) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestWithLockReleasesOnAllPaths(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "tracker.lock")
	lk := lock.New(path)
	ctx := context.Background()

	_ = lk.WithLock(ctx, func(context.Context) error { return errors.New("first holder fails") })

	// A second acquisition on the same path must not block.
	done := make(chan error, 1)
	go func() {
		done <- lk.WithLock(ctx, func(context.Context) error { return nil })
	}()
	if err := <-done; err != nil {
		t.Fatalf("reacquire: %v", err)
	}
}

func TestWithLockSerializesCriticalSections(t *testing.T) {
	t.Parallel()
	lk := lock.New(filepath.Join(t.TempDir(), "tracker.lock"))
	ctx := context.Background()

	counter := 0
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_ = lk.WithLock(ctx, func(context.Context) error {
				counter++
				return nil
			})
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
	if counter != 4 {
		t.Fatalf("counter = %d, want 4", counter)
	}
}
