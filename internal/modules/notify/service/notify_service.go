package service

import (
	"context"
	"sync"

	"ttrack/internal/modules/notify/domain"
	notifyout "ttrack/internal/modules/notify/port/out"
)

// NotifyService probes the backend list once and caches the selection
// for the lifetime of the process. The fallback backend must always
// accept a send.
type NotifyService struct {
	backends []notifyout.Backend
	fallback notifyout.Backend

	once     sync.Once
	selected notifyout.Backend
}

func NewNotifyService(fallback notifyout.Backend, backends ...notifyout.Backend) *NotifyService {
	return &NotifyService{backends: backends, fallback: fallback}
}

func (s *NotifyService) Notify(ctx context.Context, n domain.Notification) {
	s.once.Do(func() {
		for _, backend := range s.backends {
			if backend.Available() {
				s.selected = backend
				return
			}
		}
		s.selected = s.fallback
	})
	if err := s.selected.Send(ctx, n); err != nil && s.selected != s.fallback {
		_ = s.fallback.Send(ctx, n)
	}
}
