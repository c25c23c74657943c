package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"ttrack/internal/modules/tracker/domain"
	trackerout "ttrack/internal/modules/tracker/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteLogProjector mirrors log entries into SQLite for aggregate
// queries. The CSV log store remains the source of truth; this index is
// rebuilt from it on reindex.
type SQLiteLogProjector struct {
	db *sql.DB
}

func NewSQLiteLogProjector(dbPath string) (trackerout.LogProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteLogProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteLogProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS log_entries (
  user TEXT NOT NULL,
  date TEXT NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT NOT NULL,
  duration_hours REAL NOT NULL,
  description TEXT
);
CREATE INDEX IF NOT EXISTS idx_log_entries_date ON log_entries(date);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create log_entries table: %w", err)
	}
	return nil
}

func (s *SQLiteLogProjector) Record(ctx context.Context, entry domain.LogEntry) error {
	const stmt = `
INSERT INTO log_entries (user, date, start_time, end_time, duration_hours, description)
VALUES (?, ?, ?, ?, ?, ?);
`
	_, err := s.db.ExecContext(ctx, stmt,
		entry.User,
		entry.Date,
		entry.StartTime,
		entry.EndTime,
		entry.DurationHours,
		entry.Description,
	)
	if err != nil {
		return fmt.Errorf("record log entry: %w", err)
	}
	return nil
}

func (s *SQLiteLogProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM log_entries`); err != nil {
		return fmt.Errorf("reset log entries: %w", err)
	}
	return nil
}

func (s *SQLiteLogProjector) DailyTotals(ctx context.Context, month string) ([]domain.DailyTotal, error) {
	const stmt = `
SELECT date, SUM(duration_hours), COUNT(*)
FROM log_entries
WHERE date LIKE ? || '-%'
GROUP BY date
ORDER BY date;
`
	rows, err := s.db.QueryContext(ctx, stmt, month)
	if err != nil {
		return nil, fmt.Errorf("query daily totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.DailyTotal{}
	for rows.Next() {
		total := domain.DailyTotal{}
		if err := rows.Scan(&total.Date, &total.Hours, &total.Entries); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		totals = append(totals, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily totals: %w", err)
	}
	return totals, nil
}
