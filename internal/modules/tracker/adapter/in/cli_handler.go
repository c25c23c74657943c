package in

import (
	"context"

	trackerdto "ttrack/internal/modules/tracker/dto"
	trackerin "ttrack/internal/modules/tracker/port/in"
)

type CLIHandler struct {
	usecase trackerin.Usecase
}

func NewCLIHandler(usecase trackerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, description string) (trackerdto.StartOutput, error) {
	return h.usecase.Start(ctx, trackerdto.StartInput{Description: description})
}

func (h CLIHandler) Stop(ctx context.Context) (trackerdto.StopOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (trackerdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Report(ctx context.Context, date string) (trackerdto.ReportOutput, error) {
	return h.usecase.Report(ctx, date)
}

func (h CLIHandler) Summary(ctx context.Context, month string) (trackerdto.SummaryOutput, error) {
	return h.usecase.Summary(ctx, month)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
