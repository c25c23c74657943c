package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	notifyin "ttrack/internal/modules/notify/port/in"
	reminderout "ttrack/internal/modules/reminder/port/out"
	"ttrack/internal/platform/clock"
	apperrors "ttrack/internal/platform/errors"
)

const (
	terminateTimeout = 2 * time.Second
	terminatePoll    = 100 * time.Millisecond
)

type Options struct {
	BaseDir          string
	ReminderInterval time.Duration
	PollTick         time.Duration
}

// ReminderService owns the daemon lifecycle. The daemon is a separate
// detached process that shares nothing with the controller but the
// session state file and its own PID file.
type ReminderService struct {
	opts     Options
	clock    clock.Clock
	handle   reminderout.HandleStore
	source   reminderout.SessionSource
	notifier notifyin.Usecase
	logger   hclog.Logger
}

func NewReminderService(
	opts Options,
	clk clock.Clock,
	handle reminderout.HandleStore,
	source reminderout.SessionSource,
	notifier notifyin.Usecase,
	logger hclog.Logger,
) *ReminderService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ReminderService{
		opts:     opts,
		clock:    clk,
		handle:   handle,
		source:   source,
		notifier: notifier,
		logger:   logger,
	}
}

// Run is the daemon body: write own handle, install termination
// handlers, poll until the session disappears.
func (s *ReminderService) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err := s.handle.Write(ctx, os.Getpid()); err != nil {
		return err
	}
	defer func() { _ = s.handle.Clear(context.Background()) }()

	s.logger.Info("reminder daemon started",
		"pid", os.Getpid(),
		"interval", s.opts.ReminderInterval.String(),
		"tick", s.opts.PollTick.String(),
	)

	ticker := time.NewTicker(s.opts.PollTick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder daemon stopping", "reason", "termination signal")
			return nil
		case <-ticker.C:
			done, err := s.pollOnce(ctx)
			if err != nil {
				s.logger.Warn("reminder daemon exiting on state error", "error", err)
				return nil
			}
			if done {
				s.logger.Info("reminder daemon stopping", "reason", "session ended")
				return nil
			}
		}
	}
}

// pollOnce performs one tick. done reports that tracking stopped; any
// state read or write failure is terminal, never retried.
func (s *ReminderService) pollOnce(ctx context.Context) (bool, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotRunning) {
			return true, nil
		}
		return true, err
	}
	now := s.clock.Now()
	if now.Sub(snap.LastNotification) < s.opts.ReminderInterval {
		return false, nil
	}
	elapsed := now.Sub(snap.StartedAt)
	if s.notifier != nil {
		s.notifier.Notify(ctx, "Time Tracker Reminder",
			fmt.Sprintf("You've been working for %.1f hours\nCurrent task: %s", elapsed.Hours(), snap.Description))
	}
	if err := s.source.MarkNotified(ctx, now); err != nil {
		return true, err
	}
	s.logger.Debug("reminder fired", "elapsed_hours", elapsed.Hours())
	return false, nil
}

// Spawn re-executes this binary as a detached daemon process with its
// output directed to the daemon log.
func (s *ReminderService) Spawn(ctx context.Context) error {
	if pid, err := s.handle.Read(ctx); err == nil && processAlive(pid) {
		return nil
	}

	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("%w: resolve executable: %v", apperrors.ErrDaemonStartFailed, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.handle.LogPath()), 0o755); err != nil {
		return fmt.Errorf("%w: create daemon log dir: %v", apperrors.ErrDaemonStartFailed, err)
	}
	logFile, err := os.OpenFile(s.handle.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open daemon log: %v", apperrors.ErrDaemonStartFailed, err)
	}
	defer logFile.Close()

	cmd := exec.Command(execPath, "daemon", "run", "--dir", s.opts.BaseDir)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.Stdin = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrDaemonStartFailed, err)
	}
	// The child rewrites the handle with its own PID on startup; this
	// write makes the handle visible before the child gets scheduled.
	if err := s.handle.Write(ctx, cmd.Process.Pid); err != nil {
		return err
	}
	_ = cmd.Process.Release()
	return nil
}

// Terminate signals the daemon and deterministically clears the handle
// after a bounded wait. A missing or stale handle is success.
func (s *ReminderService) Terminate(ctx context.Context) error {
	pid, err := s.handle.Read(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		// Garbage in the handle means the daemon is not locatable;
		// treat as already stopped.
		return s.handle.Clear(ctx)
	}
	if pid <= 0 || !processAlive(pid) {
		return s.handle.Clear(ctx)
	}
	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil && !errors.Is(err, syscall.ESRCH) {
		return fmt.Errorf("terminate daemon pid=%d: %w", pid, err)
	}
	deadline := time.Now().Add(terminateTimeout)
	for time.Now().Before(deadline) {
		if !processAlive(pid) {
			break
		}
		time.Sleep(terminatePoll)
	}
	if processAlive(pid) {
		_ = syscall.Kill(pid, syscall.SIGKILL)
	}
	return s.handle.Clear(ctx)
}

func (s *ReminderService) Status(ctx context.Context) (int, bool, error) {
	pid, err := s.handle.Read(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return pid, processAlive(pid), nil
}

func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	return err == nil || errors.Is(err, syscall.EPERM)
}
