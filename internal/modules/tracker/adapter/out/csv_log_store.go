package out

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofrs/flock"

	"ttrack/internal/modules/tracker/domain"
	trackerout "ttrack/internal/modules/tracker/port/out"
)

var csvHeader = []string{"name", "date", "start_time", "end_time", "duration_hours", "description"}

// CSVLogStore is the append-only record of completed sessions. Rows are
// only ever appended; nothing truncates or rewrites the file.
type CSVLogStore struct {
	path string
}

func NewCSVLogStore(path string) trackerout.LogStore {
	return &CSVLogStore{path: path}
}

func (s *CSVLogStore) Path() string { return s.path }

func (s *CSVLogStore) Initialize(_ context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat log store: %w", err)
	}
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("create log store: %w", err)
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write log header: %w", err)
	}
	writer.Flush()
	return writer.Error()
}

func (s *CSVLogStore) Append(ctx context.Context, entry domain.LogEntry) error {
	// Exclusive lock on the log file itself, scoped to this one write.
	fl := flock.New(s.path)
	locked, err := fl.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("lock log store: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock log store: not acquired")
	}
	defer func() { _ = fl.Unlock() }()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log store: %w", err)
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	if err := writer.Write([]string{
		entry.User,
		entry.Date,
		entry.StartTime,
		entry.EndTime,
		strconv.FormatFloat(entry.DurationHours, 'f', 2, 64),
		entry.Description,
	}); err != nil {
		return fmt.Errorf("append log entry: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush log entry: %w", err)
	}
	return nil
}

func (s *CSVLogStore) QueryByDate(ctx context.Context, date string) ([]domain.LogEntry, error) {
	entries, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.LogEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Date == date {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func (s *CSVLogStore) All(_ context.Context) ([]domain.LogEntry, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.LogEntry{}, nil
		}
		return nil, fmt.Errorf("open log store: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read log store: %w", err)
	}
	entries := make([]domain.LogEntry, 0, len(records))
	for idx, record := range records {
		if idx == 0 || len(record) != len(csvHeader) {
			continue
		}
		hours, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			continue
		}
		entries = append(entries, domain.LogEntry{
			User:          record[0],
			Date:          record[1],
			StartTime:     record[2],
			EndTime:       record[3],
			DurationHours: hours,
			Description:   record[5],
		})
	}
	return entries, nil
}
