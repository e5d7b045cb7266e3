package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AssignmentJob manages the scheduled dispatch runs.
// On each tick every pending order is matched against the active partners.
type AssignmentJob struct {
	handler  commands.RunAssignmentCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewAssignmentJob creates a new job for dispatch runs.
// The schedule is a six-field cron expression with seconds, e.g.
// "*/30 * * * * *" for a run every thirty seconds.
func NewAssignmentJob(
	handler commands.RunAssignmentCommandHandler,
	schedule string,
	logger *slog.Logger,
) *AssignmentJob {
	return &AssignmentJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "assignment_job"),
	}
}

// Start begins the scheduled dispatch runs.
func (j *AssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRunAssignmentCommand()

		result, runErr := j.handler.Handle(ctx, cmd)
		if runErr != nil {
			// An empty backlog or an empty partner pool is expected between runs
			if !errors.Is(runErr, commands.ErrNoPendingOrders) && !errors.Is(runErr, commands.ErrNoActivePartners) {
				j.logger.ErrorContext(ctx, "Dispatch run failed", "error", runErr)
			}
			return
		}

		j.logger.InfoContext(ctx, "Dispatch run completed",
			"processed", result.Processed,
			"succeeded", result.Succeeded,
			"failed", result.Failed,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduled dispatch runs.
func (j *AssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment job stopped")
}
