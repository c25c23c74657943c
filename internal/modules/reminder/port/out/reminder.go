package out

import (
	"context"
	"time"

	"ttrack/internal/modules/reminder/domain"
)

// HandleStore persists the daemon's PID file. The handle exists iff a
// daemon is believed alive.
type HandleStore interface {
	Write(ctx context.Context, pid int) error
	Read(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
	LogPath() string
}

// SessionSource exposes the active session to the daemon. Snapshot
// reports a missing or corrupt record as apperrors.ErrNotRunning, which
// the polling loop treats as a terminal signal.
type SessionSource interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	MarkNotified(ctx context.Context, at time.Time) error
}
