package in

import (
	"context"

	"ttrack/internal/modules/tracker/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Stop(ctx context.Context) (dto.StopOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	Report(ctx context.Context, date string) (dto.ReportOutput, error)
	Summary(ctx context.Context, month string) (dto.SummaryOutput, error)
	Reindex(ctx context.Context) error
}
