package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	reminderout "ttrack/internal/modules/reminder/port/out"
)

type FileHandleStore struct {
	pidPath string
	logPath string
}

func NewFileHandleStore(pidPath, logPath string) reminderout.HandleStore {
	return &FileHandleStore{pidPath: pidPath, logPath: logPath}
}

func (s *FileHandleStore) Write(_ context.Context, pid int) error {
	if err := os.MkdirAll(filepath.Dir(s.pidPath), 0o755); err != nil {
		return fmt.Errorf("create daemon dir: %w", err)
	}
	return os.WriteFile(s.pidPath, []byte(strconv.Itoa(pid)), 0o644)
}

func (s *FileHandleStore) Read(_ context.Context) (int, error) {
	raw, err := os.ReadFile(s.pidPath)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("decode daemon pid: %w", err)
	}
	return pid, nil
}

func (s *FileHandleStore) Clear(_ context.Context) error {
	if err := os.Remove(s.pidPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove daemon pid: %w", err)
	}
	return nil
}

func (s *FileHandleStore) LogPath() string {
	return s.logPath
}
