package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ttrack/internal/modules/tracker/domain"
	trackerout "ttrack/internal/modules/tracker/port/out"
	apperrors "ttrack/internal/platform/errors"
)

// FileStateStore keeps the active session as a single JSON file. A
// missing, unreadable, or malformed file is reported as ErrNotRunning
// so stale garbage can never wedge the tracker.
type FileStateStore struct {
	path string
}

func NewFileStateStore(path string) trackerout.StateStore {
	return &FileStateStore{path: path}
}

type stateRecord struct {
	Name             string `json:"name"`
	StartTime        string `json:"start_time"`
	Description      string `json:"description"`
	LastNotification string `json:"last_notification"`
}

func (s *FileStateStore) Save(_ context.Context, session domain.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	record := stateRecord{
		Name:             session.User,
		StartTime:        session.StartedAt.Format(domain.TimestampLayout),
		Description:      session.Description,
		LastNotification: session.LastNotification.Format(domain.TimestampLayout),
	}
	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}

func (s *FileStateStore) Load(_ context.Context) (domain.Session, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Session{}, apperrors.ErrNotRunning
	}
	record := stateRecord{}
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.Session{}, apperrors.ErrNotRunning
	}
	startedAt, err := time.ParseInLocation(domain.TimestampLayout, record.StartTime, time.Local)
	if err != nil {
		return domain.Session{}, apperrors.ErrNotRunning
	}
	lastNotification, err := time.ParseInLocation(domain.TimestampLayout, record.LastNotification, time.Local)
	if err != nil {
		lastNotification = startedAt
	}
	return domain.Session{
		User:             record.Name,
		Description:      record.Description,
		StartedAt:        startedAt,
		LastNotification: lastNotification,
	}, nil
}

func (s *FileStateStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear session state: %w", err)
	}
	return nil
}
