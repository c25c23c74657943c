package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ttrack/internal/platform/config"
)

func TestNewDerivesPathsFromBaseDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	wantPaths := map[string]string{
		"state":  filepath.Join(dir, "current_session.json"),
		"log":    filepath.Join(dir, "time_logs.csv"),
		"lock":   filepath.Join(dir, "tracker.lock"),
		"pid":    filepath.Join(dir, "daemon.pid"),
		"dlog":   filepath.Join(dir, "daemon.log"),
		"db":     filepath.Join(dir, "time_logs.db"),
		"config": filepath.Join(dir, "config.yaml"),
	}
	gotPaths := map[string]string{
		"state":  cfg.StatePath,
		"log":    cfg.LogPath,
		"lock":   cfg.LockPath,
		"pid":    cfg.PIDPath,
		"dlog":   cfg.DaemonLog,
		"db":     cfg.DBPath,
		"config": cfg.ConfigPath,
	}
	for key, want := range wantPaths {
		if gotPaths[key] != want {
			t.Errorf("%s path = %q, want %q", key, gotPaths[key], want)
		}
	}
	if cfg.ReminderInterval != 2*time.Hour {
		t.Errorf("reminder interval = %v, want 2h", cfg.ReminderInterval)
	}
	if cfg.PollTick != time.Minute {
		t.Errorf("poll tick = %v, want 1m", cfg.PollTick)
	}
	if cfg.User == "" {
		t.Error("user must never be empty")
	}
}

func TestNewRequiresBaseDir(t *testing.T) {
	t.Parallel()
	if _, err := config.New(""); err == nil {
		t.Fatal("expected error for empty base dir")
	}
}

func TestNewAppliesFileOverrides(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	payload := "user: frodo\nreminder_interval: 45m\npoll_tick: 10s\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(payload), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.User != "frodo" {
		t.Errorf("user = %q, want frodo", cfg.User)
	}
	if cfg.ReminderInterval != 45*time.Minute {
		t.Errorf("reminder interval = %v, want 45m", cfg.ReminderInterval)
	}
	if cfg.PollTick != 10*time.Second {
		t.Errorf("poll tick = %v, want 10s", cfg.PollTick)
	}
}

func TestNewRejectsInvalidDurations(t *testing.T) {
	t.Parallel()
	for _, payload := range []string{
		"reminder_interval: soon\n",
		"reminder_interval: -1h\n",
		"poll_tick: 0s\n",
	} {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(payload), 0o644); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := config.New(dir); err == nil {
			t.Errorf("payload %q: expected validation error", payload)
		}
	}
}

func TestNewIgnoresMissingConfigFile(t *testing.T) {
	t.Parallel()
	if _, err := config.New(t.TempDir()); err != nil {
		t.Fatalf("new without config.yaml: %v", err)
	}
}
