package jobs

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DisputeReviewJob manages the scheduled escalation of open disputes.
// Runs every ten seconds to feed the admin review queue.
type DisputeReviewJob struct {
	handler commands.EscalateDisputeCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDisputeReviewJob creates a new job for escalating open disputes.
// Uses EscalateDisputeCommandHandler to process one dispute per run.
func NewDisputeReviewJob(handler commands.EscalateDisputeCommandHandler, logger *slog.Logger) *DisputeReviewJob {
	return &DisputeReviewJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispute_review_job"),
	}
}

// Start begins the dispute review job.
func (j *DisputeReviewJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewEscalateDisputeCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Dispute escalation command creation failed", "error", cmdErr)
			return
		}

		if _, handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(handleErr, commands.ErrNoOpenDisputes) {
				j.logger.ErrorContext(ctx, "Dispute review job failed", "error", handleErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispute review job started (running every ten seconds)")
	return nil
}

// Stop stops the dispute review job.
func (j *DisputeReviewJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispute review job stopped")
}
