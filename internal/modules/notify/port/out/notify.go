package out

import (
	"context"

	"ttrack/internal/modules/notify/domain"
)

type Backend interface {
	Name() string
	Available() bool
	Send(ctx context.Context, n domain.Notification) error
}
