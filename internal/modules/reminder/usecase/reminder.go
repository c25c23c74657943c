package usecase

import (
	"context"

	"ttrack/internal/modules/reminder/dto"
	reminderin "ttrack/internal/modules/reminder/port/in"
	"ttrack/internal/modules/reminder/service"
)

type Interactor struct {
	svc *service.ReminderService
}

func NewInteractor(svc *service.ReminderService) reminderin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Run(ctx context.Context) error {
	return i.svc.Run(ctx)
}

func (i *Interactor) Spawn(ctx context.Context) error {
	return i.svc.Spawn(ctx)
}

func (i *Interactor) Terminate(ctx context.Context) error {
	return i.svc.Terminate(ctx)
}

func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	pid, running, err := i.svc.Status(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return dto.StatusOutput{Running: running, PID: pid}, nil
}
