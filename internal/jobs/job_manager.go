package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop the scheduler.
type JobManager struct {
	cron   *cron.Cron
	jobs   []*ScheduledJob
	cancel context.CancelFunc
	logger *slog.Logger
}

// NewJobManager creates a job manager firing schedules in loc. A run that is
// still going when its schedule fires again makes the new run skip.
func NewJobManager(schedules []Schedule, dispatcher Dispatcher, loc *time.Location, logger *slog.Logger) *JobManager {
	logger = logger.With("component", "job_manager")
	ctx, cancel := context.WithCancel(context.Background())
	jm := &JobManager{
		cancel: cancel,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(cronLogger{logger}), cron.SkipIfStillRunning(cronLogger{logger})),
		),
		logger: logger,
	}
	for _, s := range schedules {
		if s.Spec == "" {
			continue
		}
		jm.jobs = append(jm.jobs, NewScheduledJob(ctx, s, dispatcher, logger))
	}
	return jm
}

// StartAll registers every schedule and starts the scheduler.
// Returns an error, with nothing started, if any spec does not parse.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if _, err := jm.cron.AddJob(job.schedule.Spec, job); err != nil {
			for _, entry := range jm.cron.Entries() {
				jm.cron.Remove(entry.ID)
			}
			return fmt.Errorf("failed to schedule %s: %w", job.schedule.Job.Name, err)
		}
	}

	jm.cron.Start()
	jm.logger.InfoContext(context.Background(), "Scheduled jobs started", "count", len(jm.jobs))
	return nil
}

// StopAll stops the scheduler, cancels the context of running jobs and
// waits for them to return.
func (jm *JobManager) StopAll() {
	stopped := jm.cron.Stop()
	jm.cancel()
	<-stopped.Done()
	jm.logger.InfoContext(context.Background(), "Scheduled jobs stopped")
}

// Len is the number of scheduled jobs.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
