package dto

type StatusOutput struct {
	Running bool
	PID     int
}
