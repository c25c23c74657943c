package domain

import (
	"fmt"
	"math"
	"time"

	apperrors "ttrack/internal/platform/errors"
)

const (
	DefaultDescription = "Work session"

	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04:05"
	TimestampLayout = "2006-01-02T15:04:05"
)

// Session is the single in-progress tracked interval. Its file's
// presence is the sole source of truth for "tracking is active".
type Session struct {
	User             string
	Description      string
	StartedAt        time.Time
	LastNotification time.Time
}

// LogEntry is one completed session as recorded in the append-only log.
// DurationHours is rounded to two decimals at write time; reports sum
// the stored value, never a recomputation.
type LogEntry struct {
	User          string
	Date          string
	StartTime     string
	EndTime       string
	DurationHours float64
	Description   string
}

// DailyTotal aggregates one day of log entries.
type DailyTotal struct {
	Date    string
	Hours   float64
	Entries int
}

// NewLogEntry closes a session at endedAt. Timestamps are naive local
// wall-clock; a negative interval collapses to zero.
func NewLogEntry(session Session, endedAt time.Time) LogEntry {
	elapsed := endedAt.Sub(session.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return LogEntry{
		User:          session.User,
		Date:          session.StartedAt.Format(DateLayout),
		StartTime:     session.StartedAt.Format(ClockLayout),
		EndTime:       endedAt.Format(ClockLayout),
		DurationHours: RoundHours(elapsed),
		Description:   session.Description,
	}
}

func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// FormatDuration renders an elapsed interval as H:MM:SS.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// AlreadyRunningError reports a start attempt against an active
// session, carrying enough context for the caller to describe it
// without re-reading state.
type AlreadyRunningError struct {
	Description string
	Elapsed     time.Duration
}

func (e *AlreadyRunningError) Error() string {
	return fmt.Sprintf("time tracking already running for %s: %s", FormatDuration(e.Elapsed), e.Description)
}

func (e *AlreadyRunningError) Unwrap() error {
	return apperrors.ErrAlreadyRunning
}
