// Package jobs provides scheduled background tasks for the admin backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping operations.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Runs hourly to cancel Pending orders that
// were never confirmed within the configured age limit
// 2. ActivityRetentionJob - Runs nightly to prune activity log entries older
// than the configured retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderUoWFactory, uowFactory,
//		cancelHandler, systemActorID, maxPendingAge, retentionDays, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Stale order job logs and skips orders that fail to cancel, so one bad
// order does not block the rest of the batch
// - Retention job logs prune failures and retries on the next run
// - Failed job starts will stop any already running jobs
package jobs
