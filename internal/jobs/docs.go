// Package jobs provides scheduled background tasks for the delivery rate service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RateRecalculationJob - Recomputes the rate of every recorded delivery
// under the configured validation policy and logs a summary of the run
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getRatesHandler, ratesQuery, "0 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field,
// e.g. "*/30 * * * * *" for every thirty seconds. An empty schedule disables
// the job.
//
// # Logging
//
// Every run logs its run_id, policy and event count. Successful runs add the
// number of rated deliveries. Batches rejected by the strict policy are logged
// at warn level, other failures at error level.
package jobs
