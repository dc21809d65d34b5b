package jobs

import (
	"fmt"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentReleaseJob *PaymentReleaseJob
	disputeReviewJob  *DisputeReviewJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	releaseHandler commands.ReleaseNextPaymentCommandHandler,
	escalateHandler commands.EscalateDisputeCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentReleaseJob: NewPaymentReleaseJob(releaseHandler, logger),
		disputeReviewJob:  NewDisputeReviewJob(escalateHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentReleaseJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment release job: %w", err)
	}

	if err := jm.disputeReviewJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.paymentReleaseJob.Stop()
		return fmt.Errorf("failed to start dispute review job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentReleaseJob.Stop()
	jm.disputeReviewJob.Stop()
}
