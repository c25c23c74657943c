package domain

// Notification is a best-effort user-facing message. Delivery is never
// load-bearing: callers fire and forget.
type Notification struct {
	Title string
	Body  string
}
