package out

import (
	"context"
	"runtime"

	"github.com/gen2brain/beeep"

	"ttrack/internal/modules/notify/domain"
	notifyout "ttrack/internal/modules/notify/port/out"
)

// DesktopBackend delivers through the platform notification facility
// (notify-send over D-Bus on Linux, toast on Windows, notification
// center on macOS).
type DesktopBackend struct{}

func NewDesktopBackend() notifyout.Backend {
	return &DesktopBackend{}
}

func (b *DesktopBackend) Name() string { return "desktop" }

func (b *DesktopBackend) Available() bool {
	switch runtime.GOOS {
	case "linux", "darwin", "windows":
		return true
	default:
		return false
	}
}

func (b *DesktopBackend) Send(_ context.Context, n domain.Notification) error {
	return beeep.Notify(n.Title, n.Body, "")
}
