package service_test

import (
	"context"
	"errors"
	"testing"

	"ttrack/internal/modules/notify/domain"
	"ttrack/internal/modules/notify/service"
)

type fakeBackend struct {
	name      string
	available bool
	sendErr   error
	sent      []domain.Notification
}

func (f *fakeBackend) Name() string    { return f.name }
func (f *fakeBackend) Available() bool { return f.available }

func (f *fakeBackend) Send(_ context.Context, n domain.Notification) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, n)
	return nil
}

func TestNotifyUsesFirstAvailableBackend(t *testing.T) {
	t.Parallel()
	unavailable := &fakeBackend{name: "desktop", available: false}
	available := &fakeBackend{name: "tray", available: true}
	fallback := &fakeBackend{name: "stdout", available: true}
	svc := service.NewNotifyService(fallback, unavailable, available)

	svc.Notify(context.Background(), domain.Notification{Title: "t", Body: "b"})

	if len(available.sent) != 1 {
		t.Fatalf("available backend sent = %d, want 1", len(available.sent))
	}
	if len(fallback.sent) != 0 || len(unavailable.sent) != 0 {
		t.Fatal("wrong backend received the notification")
	}
}

func TestNotifyFallsBackWhenNothingAvailable(t *testing.T) {
	t.Parallel()
	fallback := &fakeBackend{name: "stdout", available: true}
	svc := service.NewNotifyService(fallback, &fakeBackend{name: "desktop"})

	svc.Notify(context.Background(), domain.Notification{Title: "t", Body: "b"})

	if len(fallback.sent) != 1 {
		t.Fatalf("fallback sent = %d, want 1", len(fallback.sent))
	}
}

func TestNotifyFallsBackWhenSelectedSendFails(t *testing.T) {
	t.Parallel()
	failing := &fakeBackend{name: "desktop", available: true, sendErr: errors.New("dbus down")}
	fallback := &fakeBackend{name: "stdout", available: true}
	svc := service.NewNotifyService(fallback, failing)

	svc.Notify(context.Background(), domain.Notification{Title: "t", Body: "b"})

	if len(fallback.sent) != 1 {
		t.Fatalf("fallback sent = %d, want 1", len(fallback.sent))
	}
}

func TestNotifyProbesBackendsOnce(t *testing.T) {
	t.Parallel()
	first := &fakeBackend{name: "desktop", available: true}
	svc := service.NewNotifyService(&fakeBackend{name: "stdout", available: true}, first)

	svc.Notify(context.Background(), domain.Notification{Title: "a"})
	// Losing availability after selection must not change the choice.
	first.available = false
	svc.Notify(context.Background(), domain.Notification{Title: "b"})

	if len(first.sent) != 2 {
		t.Fatalf("selected backend sent = %d, want 2 (selection is cached)", len(first.sent))
	}
}
