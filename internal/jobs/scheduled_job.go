package jobs

import (
	"context"
	"errors"
	"log/slog"

	"opsworker/internal/core/application/router"
)

// Dispatcher runs one job.
type Dispatcher interface {
	Dispatch(ctx context.Context, job router.Job) error
}

// Schedule pairs a cron spec with the job it triggers.
type Schedule struct {
	Spec string
	Job  router.Job
}

// ScheduledJob dispatches one job each time its schedule fires. Runs see
// ctx, so cancelling it aborts a run in flight.
type ScheduledJob struct {
	ctx        context.Context
	schedule   Schedule
	dispatcher Dispatcher
	logger     *slog.Logger
}

// NewScheduledJob creates a job triggered by schedule.
func NewScheduledJob(ctx context.Context, schedule Schedule, dispatcher Dispatcher, logger *slog.Logger) *ScheduledJob {
	return &ScheduledJob{
		ctx:        ctx,
		schedule:   schedule,
		dispatcher: dispatcher,
		logger:     logger.With("component", "scheduled_job", "job", schedule.Job.Name, "spec", schedule.Spec),
	}
}

// Run dispatches the job once. It implements cron.Job.
func (j *ScheduledJob) Run() {
	ctx := j.ctx
	if ctx.Err() != nil {
		return
	}

	if err := j.dispatcher.Dispatch(ctx, j.schedule.Job); err != nil {
		// Misconfigured jobs fail the same way on every tick
		if errors.Is(err, router.ErrUnknownJob) || errors.Is(err, router.ErrInvalidJob) {
			j.logger.WarnContext(ctx, "Scheduled job rejected", "error", err)
			return
		}
		j.logger.ErrorContext(ctx, "Scheduled job failed", "error", err)
	}
}
