package in

import (
	"context"

	"ttrack/internal/modules/reminder/dto"
)

type Usecase interface {
	// Run executes the polling loop in the calling process until the
	// session disappears or a termination signal arrives.
	Run(ctx context.Context) error
	// Spawn starts the daemon as a detached background process.
	Spawn(ctx context.Context) error
	// Terminate requests daemon shutdown and always leaves the handle
	// cleared; a daemon that already exited is success.
	Terminate(ctx context.Context) error
	Status(ctx context.Context) (dto.StatusOutput, error)
}
