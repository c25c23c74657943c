package out_test

import (
	"context"
	"path/filepath"
	"testing"

	adapter "ttrack/internal/modules/tracker/adapter/out"
)

func TestSQLiteLogProjectorDailyTotals(t *testing.T) {
	t.Parallel()
	projector, err := adapter.NewSQLiteLogProjector(filepath.Join(t.TempDir(), "time_logs.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	ctx := context.Background()

	rows := []struct {
		date  string
		hours float64
	}{
		{"2026-03-10", 0.5},
		{"2026-03-10", 1.25},
		{"2026-03-11", 2},
		{"2026-04-01", 3},
	}
	for _, row := range rows {
		if err := projector.Record(ctx, entry(row.date, "09:00:00", "10:00:00", row.hours, "work")); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	totals, err := projector.DailyTotals(ctx, "2026-03")
	if err != nil {
		t.Fatalf("daily totals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("got %d days, want 2", len(totals))
	}
	if totals[0].Date != "2026-03-10" || totals[0].Hours != 1.75 || totals[0].Entries != 2 {
		t.Fatalf("first day = %+v", totals[0])
	}
	if totals[1].Date != "2026-03-11" || totals[1].Hours != 2 || totals[1].Entries != 1 {
		t.Fatalf("second day = %+v", totals[1])
	}
}

func TestSQLiteLogProjectorReset(t *testing.T) {
	t.Parallel()
	projector, err := adapter.NewSQLiteLogProjector(filepath.Join(t.TempDir(), "time_logs.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	ctx := context.Background()

	if err := projector.Record(ctx, entry("2026-03-10", "09:00:00", "09:30:00", 0.5, "work")); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := projector.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	totals, err := projector.DailyTotals(ctx, "2026-03")
	if err != nil {
		t.Fatalf("daily totals: %v", err)
	}
	if len(totals) != 0 {
		t.Fatalf("got %d days after reset, want 0", len(totals))
	}
}
