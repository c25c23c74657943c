package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultReminderInterval = 2 * time.Hour
	defaultPollTick         = time.Minute
)

// Config carries every path and interval the tool uses. It replaces the
// original's module-level globals: constructors receive it explicitly.
type Config struct {
	BaseDir    string
	StatePath  string
	LogPath    string
	LockPath   string
	PIDPath    string
	DaemonLog  string
	DBPath     string
	ConfigPath string

	User             string
	ReminderInterval time.Duration
	PollTick         time.Duration
}

// fileConfig is the optional config.yaml in the base dir.
type fileConfig struct {
	User             string `yaml:"user"`
	ReminderInterval string `yaml:"reminder_interval"`
	PollTick         string `yaml:"poll_tick"`
}

func New(baseDir string) (Config, error) {
	if baseDir == "" {
		return Config{}, fmt.Errorf("base dir is required")
	}
	cfg := Config{
		BaseDir:          baseDir,
		StatePath:        filepath.Join(baseDir, "current_session.json"),
		LogPath:          filepath.Join(baseDir, "time_logs.csv"),
		LockPath:         filepath.Join(baseDir, "tracker.lock"),
		PIDPath:          filepath.Join(baseDir, "daemon.pid"),
		DaemonLog:        filepath.Join(baseDir, "daemon.log"),
		DBPath:           filepath.Join(baseDir, "time_logs.db"),
		ConfigPath:       filepath.Join(baseDir, "config.yaml"),
		User:             currentUser(),
		ReminderInterval: defaultReminderInterval,
		PollTick:         defaultPollTick,
	}
	if err := cfg.applyFile(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultBaseDir is ~/.ttrack, falling back to the working directory when
// the home dir cannot be resolved.
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ttrack"
	}
	return filepath.Join(home, ".ttrack")
}

func (c *Config) applyFile() error {
	raw, err := os.ReadFile(c.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	if fc.User != "" {
		c.User = fc.User
	}
	if fc.ReminderInterval != "" {
		d, err := time.ParseDuration(fc.ReminderInterval)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid reminder_interval %q", fc.ReminderInterval)
		}
		c.ReminderInterval = d
	}
	if fc.PollTick != "" {
		d, err := time.ParseDuration(fc.PollTick)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid poll_tick %q", fc.PollTick)
		}
		c.PollTick = d
	}
	return nil
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
