// Package jobs triggers queue jobs on cron schedules.
//
// Most jobs arrive on the AMQP queue, published by external schedulers or
// chat commands. Jobs listed in a SCHEDULE_* setting are also fired from
// inside the worker using github.com/robfig/cron/v3. Each tick goes through
// the same router as a queue message.
//
// # Usage
//
//	jobManager := jobs.NewJobManager([]jobs.Schedule{
//		{Spec: "*/5 * * * *", Job: router.Job{Name: router.JobGamasMetrics}},
//	}, router, loc, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Specs use the standard five-field cron syntax and the configured
// TIMEZONE. Schedules with an empty spec are ignored. A tick is skipped
// while the previous run of the same job is still going.
//
// # Error Handling
//
// - Unknown or invalid jobs are logged at warn, since they fail on every tick
// - Other job failures are logged at error
// - A spec that does not parse fails StartAll before anything runs
package jobs
