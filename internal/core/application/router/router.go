package router

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"opsworker/internal/core/application/usecases/commands"

	"github.com/google/uuid"
)

// CommandHandler executes one kind of command.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// Handlers holds the handler of every job. A nil handler disables its job.
type Handlers struct {
	FetchEngineerTickets    CommandHandler[commands.FetchEngineerTicketsCommand]
	SyncEmployeePhones      CommandHandler[commands.SyncEmployeePhonesCommand]
	DeleteDeadGraphLinks    CommandHandler[commands.DeleteDeadGraphLinksCommand]
	OverSpeedMetrics        CommandHandler[commands.GenerateOverSpeedMetricsCommand]
	GamasMetrics            CommandHandler[commands.GenerateGamasMetricsCommand]
	NusacontactQueueMetrics CommandHandler[commands.GenerateNusacontactQueueMetricsCommand]
	SyncContact             CommandHandler[commands.SyncContactCommand]
	SilenceAlert            CommandHandler[commands.SilenceAlertCommand]
	NotifyNextWeekBirthdays CommandHandler[commands.NotifyNextWeekBirthdaysCommand]
}

// Router builds the command of a job and runs it on its handler.
//
// Every dispatch is logged with the job name and a fresh run id:
//
//	{"msg":"job started","job":"genGamasMetrics","run_id":"9f0c..."}
//	{"msg":"job finished","job":"genGamasMetrics","run_id":"9f0c...","duration":"312ms"}
type Router struct {
	handlers Handlers
	logger   *slog.Logger
}

func New(handlers Handlers, logger *slog.Logger) *Router {
	return &Router{
		handlers: handlers,
		logger:   logger.With("component", "router"),
	}
}

// Dispatch runs job. Errors wrapping ErrUnknownJob or ErrInvalidJob mean the
// job will never succeed and should not be retried.
func (r *Router) Dispatch(ctx context.Context, job Job) error {
	logger := r.logger.With("job", job.Name, "run_id", uuid.NewString())
	started := time.Now()
	logger.Info("job started")

	err := r.dispatch(ctx, job)

	duration := time.Since(started).Round(time.Millisecond)
	if err != nil {
		logger.Error("job failed", "duration", duration.String(), "error", err)
		return err
	}
	logger.Info("job finished", "duration", duration.String())
	return nil
}

func (r *Router) dispatch(ctx context.Context, job Job) error {
	h := r.handlers
	switch job.Name {
	case JobFetchEngineerTickets:
		return run(ctx, h.FetchEngineerTickets, job, func() (commands.FetchEngineerTicketsCommand, error) {
			return commands.NewFetchEngineerTicketsCommand(job.Notify)
		})
	case JobSyncEmployeePhones:
		return run(ctx, h.SyncEmployeePhones, job, func() (commands.SyncEmployeePhonesCommand, error) {
			return commands.NewSyncEmployeePhonesCommand(), nil
		})
	case JobDeleteDeadGraphLinks:
		return run(ctx, h.DeleteDeadGraphLinks, job, func() (commands.DeleteDeadGraphLinksCommand, error) {
			return commands.NewDeleteDeadGraphLinksCommand(), nil
		})
	case JobOverSpeedMetrics:
		return run(ctx, h.OverSpeedMetrics, job, func() (commands.GenerateOverSpeedMetricsCommand, error) {
			return commands.NewGenerateOverSpeedMetricsCommand(), nil
		})
	case JobGamasMetrics:
		return run(ctx, h.GamasMetrics, job, func() (commands.GenerateGamasMetricsCommand, error) {
			return commands.NewGenerateGamasMetricsCommand(), nil
		})
	case JobNusacontactQueueMetrics:
		return run(ctx, h.NusacontactQueueMetrics, job, func() (commands.GenerateNusacontactQueueMetricsCommand, error) {
			return commands.NewGenerateNusacontactQueueMetricsCommand(), nil
		})
	case JobSyncContact:
		return run(ctx, h.SyncContact, job, func() (commands.SyncContactCommand, error) {
			return commands.NewSyncContactCommand(job.Phone)
		})
	case JobSilenceAlert:
		return run(ctx, h.SilenceAlert, job, func() (commands.SilenceAlertCommand, error) {
			return commands.NewSilenceAlertCommand(job.Attributes, job.Contact, job.Notify)
		})
	case JobNotifyNextWeekBirthdays:
		return run(ctx, h.NotifyNextWeekBirthdays, job, func() (commands.NotifyNextWeekBirthdaysCommand, error) {
			return commands.NewNotifyNextWeekBirthdaysCommand(), nil
		})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownJob, job.Name)
	}
}

func run[C any](ctx context.Context, handler CommandHandler[C], job Job, build func() (C, error)) error {
	if handler == nil {
		return fmt.Errorf("%w: %q is not configured", ErrUnknownJob, job.Name)
	}
	cmd, err := build()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidJob, job.Name, err)
	}
	return handler.Handle(ctx, cmd)
}
