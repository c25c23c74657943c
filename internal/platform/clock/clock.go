package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns naive local wall-clock time; all persisted
// timestamps are local by contract.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
