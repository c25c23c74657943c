package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	notifyin "ttrack/internal/modules/notify/port/in"
	reminderin "ttrack/internal/modules/reminder/port/in"
	"ttrack/internal/modules/tracker/domain"
	sessiondto "ttrack/internal/modules/tracker/dto"
	trackerin "ttrack/internal/modules/tracker/port/in"
	trackerout "ttrack/internal/modules/tracker/port/out"
	"ttrack/internal/modules/tracker/service"
	apperrors "ttrack/internal/platform/errors"
	"ttrack/internal/platform/lock"
)

type Interactor struct {
	svc       *service.TrackerService
	state     trackerout.StateStore
	log       trackerout.LogStore
	projector trackerout.LogProjector
	lock      *lock.FileLock
	daemon    reminderin.Usecase
	notifier  notifyin.Usecase
	user      string
}

func NewInteractor(
	svc *service.TrackerService,
	state trackerout.StateStore,
	log trackerout.LogStore,
	projector trackerout.LogProjector,
	lk *lock.FileLock,
	daemon reminderin.Usecase,
	notifier notifyin.Usecase,
	user string,
) trackerin.Usecase {
	return &Interactor{
		svc:       svc,
		state:     state,
		log:       log,
		projector: projector,
		lock:      lk,
		daemon:    daemon,
		notifier:  notifier,
		user:      user,
	}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StartOutput, error) {
	user := input.User
	if user == "" {
		user = i.user
	}

	var session domain.Session
	err := i.lock.WithLock(ctx, func(ctx context.Context) error {
		existing, err := i.state.Load(ctx)
		if err == nil {
			return &domain.AlreadyRunningError{
				Description: existing.Description,
				Elapsed:     i.svc.Elapsed(existing),
			}
		}
		if !errors.Is(err, apperrors.ErrNotRunning) {
			return err
		}
		if err := i.log.Initialize(ctx); err != nil {
			return err
		}
		session = i.svc.Begin(ctx, user, input.Description)
		return i.state.Save(ctx, session)
	})
	if err != nil {
		return sessiondto.StartOutput{}, err
	}

	out := sessiondto.StartOutput{
		User:        session.User,
		Description: session.Description,
		StartedAt:   session.StartedAt,
	}
	// A failed spawn must not roll back the session: the state record is
	// the source of truth, reminders are best-effort.
	if i.daemon != nil {
		if err := i.daemon.Spawn(ctx); err != nil {
			out.DaemonWarning = fmt.Sprintf("reminders will not fire: %v", err)
		}
	}
	if i.notifier != nil {
		i.notifier.Notify(ctx, "Time Tracker Started", "Started tracking: "+session.Description)
	}
	return out, nil
}

func (i *Interactor) Stop(ctx context.Context) (sessiondto.StopOutput, error) {
	var out sessiondto.StopOutput
	err := i.lock.WithLock(ctx, func(ctx context.Context) error {
		session, err := i.state.Load(ctx)
		if err != nil {
			return err
		}
		entry, endedAt := i.svc.Finish(ctx, session)
		if err := i.log.Initialize(ctx); err != nil {
			return err
		}
		// Append must complete before the state record is removed, so a
		// failed append leaves the session active for a retried stop.
		if err := i.log.Append(ctx, entry); err != nil {
			return err
		}
		if i.projector != nil {
			// The projection is rebuildable via Reindex; a projector
			// failure never blocks the stop.
			_ = i.projector.Record(ctx, entry)
		}
		if err := i.state.Clear(ctx); err != nil {
			return err
		}
		out = sessiondto.StopOutput{
			User:        session.User,
			Description: session.Description,
			StartedAt:   session.StartedAt,
			EndedAt:     endedAt,
			Duration:    endedAt.Sub(session.StartedAt),
			Hours:       entry.DurationHours,
			LogPath:     i.log.Path(),
		}
		return nil
	})
	if err != nil {
		return sessiondto.StopOutput{}, err
	}

	if i.daemon != nil {
		_ = i.daemon.Terminate(ctx)
	}
	if i.notifier != nil {
		i.notifier.Notify(ctx, "Time Tracker Stopped",
			fmt.Sprintf("Worked for %s\nLogged to %s", domain.FormatDuration(out.Duration), out.LogPath))
	}
	return out, nil
}

func (i *Interactor) Status(ctx context.Context) (sessiondto.StatusOutput, error) {
	session, err := i.state.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotRunning) {
			return sessiondto.StatusOutput{Running: false}, nil
		}
		return sessiondto.StatusOutput{}, err
	}
	return sessiondto.StatusOutput{
		Running:          true,
		User:             session.User,
		Description:      session.Description,
		StartedAt:        session.StartedAt,
		Elapsed:          i.svc.Elapsed(session),
		LastNotification: session.LastNotification,
	}, nil
}

func (i *Interactor) Report(ctx context.Context, date string) (sessiondto.ReportOutput, error) {
	if date == "" {
		return sessiondto.ReportOutput{}, fmt.Errorf("%w: report date is required", apperrors.ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return sessiondto.ReportOutput{}, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrInvalidInput)
	}
	entries, err := i.log.QueryByDate(ctx, date)
	if err != nil {
		return sessiondto.ReportOutput{}, err
	}
	out := sessiondto.ReportOutput{Date: date}
	for _, entry := range entries {
		out.Entries = append(out.Entries, sessiondto.ReportEntry{
			StartTime:     entry.StartTime,
			EndTime:       entry.EndTime,
			DurationHours: entry.DurationHours,
			Description:   entry.Description,
		})
		out.TotalHours += entry.DurationHours
	}
	return out, nil
}

func (i *Interactor) Summary(ctx context.Context, month string) (sessiondto.SummaryOutput, error) {
	if month == "" {
		return sessiondto.SummaryOutput{}, fmt.Errorf("%w: summary month is required", apperrors.ErrInvalidInput)
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return sessiondto.SummaryOutput{}, fmt.Errorf("%w: month must be YYYY-MM", apperrors.ErrInvalidInput)
	}
	if i.projector == nil {
		return sessiondto.SummaryOutput{}, fmt.Errorf("log projector is not configured")
	}
	totals, err := i.projector.DailyTotals(ctx, month)
	if err != nil {
		return sessiondto.SummaryOutput{}, err
	}
	out := sessiondto.SummaryOutput{Month: month}
	for _, total := range totals {
		out.Rows = append(out.Rows, sessiondto.SummaryRow{Date: total.Date, Hours: total.Hours, Entries: total.Entries})
		out.TotalHours += total.Hours
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	if i.projector == nil {
		return fmt.Errorf("log projector is not configured")
	}
	entries, err := i.log.All(ctx)
	if err != nil {
		return err
	}
	if err := i.projector.Reset(ctx); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := i.projector.Record(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
