package jobs

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentReleaseJob manages the scheduled release of escrowed payments.
// Runs every ten seconds to pay out completed deliveries.
type PaymentReleaseJob struct {
	handler commands.ReleaseNextPaymentCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentReleaseJob creates a new job for releasing escrowed payments.
// Uses ReleaseNextPaymentCommandHandler to process one payment per run.
func NewPaymentReleaseJob(handler commands.ReleaseNextPaymentCommandHandler, logger *slog.Logger) *PaymentReleaseJob {
	return &PaymentReleaseJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_release_job"),
	}
}

// Start begins the payment release job.
func (j *PaymentReleaseJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewReleaseNextPaymentCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Payment release command creation failed", "error", cmdErr)
			return
		}

		if _, handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(handleErr, commands.ErrNoReleasablePayments) {
				j.logger.ErrorContext(ctx, "Payment release job failed", "error", handleErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment release job started (running every ten seconds)")
	return nil
}

// Stop stops the payment release job.
func (j *PaymentReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment release job stopped")
}
