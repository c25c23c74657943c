package service

import (
	"context"
	"strings"
	"time"

	"ttrack/internal/modules/tracker/domain"
	"ttrack/internal/platform/clock"
)

type TrackerService struct {
	clock clock.Clock
}

func NewTrackerService(clock clock.Clock) *TrackerService {
	return &TrackerService{clock: clock}
}

func (s *TrackerService) Begin(_ context.Context, user, description string) domain.Session {
	if strings.TrimSpace(description) == "" {
		description = domain.DefaultDescription
	}
	now := s.clock.Now()
	return domain.Session{
		User:             user,
		Description:      description,
		StartedAt:        now,
		LastNotification: now,
	}
}

func (s *TrackerService) Finish(_ context.Context, session domain.Session) (domain.LogEntry, time.Time) {
	endedAt := s.clock.Now()
	return domain.NewLogEntry(session, endedAt), endedAt
}

func (s *TrackerService) Elapsed(session domain.Session) time.Duration {
	elapsed := s.clock.Now().Sub(session.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}
