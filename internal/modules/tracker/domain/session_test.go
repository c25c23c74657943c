package domain_test

import (
	"errors"
	"testing"
	"time"

	"ttrack/internal/modules/tracker/domain"
	apperrors "ttrack/internal/platform/errors"
)

func TestNewLogEntryHalfHour(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	session := domain.Session{
		User:        "casey",
		Description: "deep work",
		StartedAt:   start,
	}
	entry := domain.NewLogEntry(session, start.Add(30*time.Minute))
	if entry.Date != "2026-03-10" {
		t.Fatalf("date = %q", entry.Date)
	}
	if entry.StartTime != "09:00:00" || entry.EndTime != "09:30:00" {
		t.Fatalf("times = %q..%q", entry.StartTime, entry.EndTime)
	}
	if entry.DurationHours != 0.5 {
		t.Fatalf("duration = %v, want 0.5", entry.DurationHours)
	}
	if entry.User != "casey" || entry.Description != "deep work" {
		t.Fatalf("identity fields lost: %+v", entry)
	}
}

func TestNewLogEntryClampsNegativeInterval(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	entry := domain.NewLogEntry(domain.Session{StartedAt: start}, start.Add(-time.Hour))
	if entry.DurationHours != 0 {
		t.Fatalf("duration = %v, want 0", entry.DurationHours)
	}
}

func TestRoundHours(t *testing.T) {
	t.Parallel()
	cases := []struct {
		d    time.Duration
		want float64
	}{
		{30 * time.Minute, 0.5},
		{90 * time.Minute, 1.5},
		{time.Minute, 0.02},
		{29 * time.Second, 0.01},
		{0, 0},
	}
	for _, tc := range cases {
		if got := domain.RoundHours(tc.d); got != tc.want {
			t.Errorf("RoundHours(%v) = %v, want %v", tc.d, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00:00"},
		{59 * time.Second, "0:00:59"},
		{30 * time.Minute, "0:30:00"},
		{2*time.Hour + 5*time.Minute + 3*time.Second, "2:05:03"},
		{-time.Minute, "0:00:00"},
	}
	for _, tc := range cases {
		if got := domain.FormatDuration(tc.d); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestAlreadyRunningErrorWrapsSentinel(t *testing.T) {
	t.Parallel()
	err := &domain.AlreadyRunningError{Description: "deep work", Elapsed: 90 * time.Minute}
	if !errors.Is(err, apperrors.ErrAlreadyRunning) {
		t.Fatal("expected errors.Is match on ErrAlreadyRunning")
	}
	var target *domain.AlreadyRunningError
	if !errors.As(err, &target) {
		t.Fatal("expected errors.As match")
	}
	if target.Description != "deep work" {
		t.Fatalf("description = %q", target.Description)
	}
}
