package dto

import "time"

type StartInput struct {
	Description string
	User        string
}

type StartOutput struct {
	User          string
	Description   string
	StartedAt     time.Time
	DaemonWarning string
}

type StopOutput struct {
	User        string
	Description string
	StartedAt   time.Time
	EndedAt     time.Time
	Duration    time.Duration
	Hours       float64
	LogPath     string
}

type StatusOutput struct {
	Running          bool
	User             string
	Description      string
	StartedAt        time.Time
	Elapsed          time.Duration
	LastNotification time.Time
}

type ReportEntry struct {
	StartTime     string
	EndTime       string
	DurationHours float64
	Description   string
}

type ReportOutput struct {
	Date       string
	Entries    []ReportEntry
	TotalHours float64
}

type SummaryRow struct {
	Date    string
	Hours   float64
	Entries int
}

type SummaryOutput struct {
	Month      string
	Rows       []SummaryRow
	TotalHours float64
}
