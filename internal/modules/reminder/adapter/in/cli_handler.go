package in

import (
	"context"

	reminderdto "ttrack/internal/modules/reminder/dto"
	reminderin "ttrack/internal/modules/reminder/port/in"
)

type CLIHandler struct {
	usecase reminderin.Usecase
}

func NewCLIHandler(usecase reminderin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context) error {
	return h.usecase.Run(ctx)
}

func (h CLIHandler) Stop(ctx context.Context) error {
	return h.usecase.Terminate(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (reminderdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}
