package in

import "context"

// Usecase delivers a notification. It never reports failure to the
// caller; an unavailable backend degrades to a textual emission.
type Usecase interface {
	Notify(ctx context.Context, title, body string)
}
