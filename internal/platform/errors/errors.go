package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotRunning        = errors.New("time tracking is not running")
	ErrAlreadyRunning    = errors.New("time tracking is already running")
	ErrDaemonStartFailed = errors.New("reminder daemon failed to start")
)
