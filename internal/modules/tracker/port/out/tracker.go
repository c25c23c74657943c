package out

import (
	"context"

	"ttrack/internal/modules/tracker/domain"
)

// StateStore owns the single active-session record. Load reports a
// missing or unreadable file as apperrors.ErrNotRunning; corruption is
// never a hard error.
type StateStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}

// LogStore is the append-only record of completed sessions.
type LogStore interface {
	Initialize(ctx context.Context) error
	Append(ctx context.Context, entry domain.LogEntry) error
	QueryByDate(ctx context.Context, date string) ([]domain.LogEntry, error)
	All(ctx context.Context) ([]domain.LogEntry, error)
	Path() string
}

// LogProjector mirrors log entries into a queryable index. The log
// store stays the source of truth; the projection is rebuildable.
type LogProjector interface {
	Record(ctx context.Context, entry domain.LogEntry) error
	Reset(ctx context.Context) error
	DailyTotals(ctx context.Context, month string) ([]domain.DailyTotal, error)
}
