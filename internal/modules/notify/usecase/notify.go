package usecase

import (
	"context"

	"ttrack/internal/modules/notify/domain"
	notifyin "ttrack/internal/modules/notify/port/in"
	"ttrack/internal/modules/notify/service"
)

type Interactor struct {
	svc *service.NotifyService
}

func NewInteractor(svc *service.NotifyService) notifyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Notify(ctx context.Context, title, body string) {
	i.svc.Notify(ctx, domain.Notification{Title: title, Body: body})
}
