// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the payment lifecycle.
//
// # Available Jobs
//
// 1. PaymentReleaseJob - Periodically releases escrowed payments whose deliveries completed
// 2. DisputeReviewJob - Periodically moves open disputes into the admin review queue
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseHandler, escalateHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs run every ten seconds. Each run settles at most one aggregate, so
// the schedule bounds the settlement throughput rather than batch sizes.
//
// # Error Handling
//
// - Both jobs ignore their expected empty-queue errors (nothing to release,
//   no open disputes)
// - All other errors are logged as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
