package out

import (
	"context"
	"time"

	reminderdomain "ttrack/internal/modules/reminder/domain"
	reminderout "ttrack/internal/modules/reminder/port/out"
	trackerout "ttrack/internal/modules/tracker/port/out"
	"ttrack/internal/platform/lock"
)

// TrackerSessionSource adapts the tracker's state store for the daemon.
// Reads are single snapshots; the notification-timestamp update runs
// under the same named lock as the controller's mutations.
type TrackerSessionSource struct {
	state trackerout.StateStore
	lock  *lock.FileLock
}

func NewTrackerSessionSource(state trackerout.StateStore, lk *lock.FileLock) reminderout.SessionSource {
	return &TrackerSessionSource{state: state, lock: lk}
}

func (s *TrackerSessionSource) Snapshot(ctx context.Context) (reminderdomain.Snapshot, error) {
	session, err := s.state.Load(ctx)
	if err != nil {
		return reminderdomain.Snapshot{}, err
	}
	return reminderdomain.Snapshot{
		User:             session.User,
		Description:      session.Description,
		StartedAt:        session.StartedAt,
		LastNotification: session.LastNotification,
	}, nil
}

func (s *TrackerSessionSource) MarkNotified(ctx context.Context, at time.Time) error {
	return s.lock.WithLock(ctx, func(ctx context.Context) error {
		session, err := s.state.Load(ctx)
		if err != nil {
			return err
		}
		session.LastNotification = at
		return s.state.Save(ctx, session)
	})
}
