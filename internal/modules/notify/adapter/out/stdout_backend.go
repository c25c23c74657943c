package out

import (
	"context"
	"fmt"
	"io"

	"ttrack/internal/modules/notify/domain"
	notifyout "ttrack/internal/modules/notify/port/out"
)

// StdoutBackend is the textual fallback used when no desktop facility
// is reachable. It always accepts a send.
type StdoutBackend struct {
	w io.Writer
}

func NewStdoutBackend(w io.Writer) notifyout.Backend {
	return &StdoutBackend{w: w}
}

func (b *StdoutBackend) Name() string { return "stdout" }

func (b *StdoutBackend) Available() bool { return true }

func (b *StdoutBackend) Send(_ context.Context, n domain.Notification) error {
	_, err := fmt.Fprintf(b.w, "NOTIFICATION: %s - %s\n", n.Title, n.Body)
	return err
}
