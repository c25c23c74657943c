package domain

import "time"

// Snapshot is the daemon's view of the active session. It is read from
// shared durable state; the daemon never holds the session in memory
// across ticks.
type Snapshot struct {
	User             string
	Description      string
	StartedAt        time.Time
	LastNotification time.Time
}
