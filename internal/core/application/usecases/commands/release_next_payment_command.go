package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrReleaseNextPaymentCommandIsNotConstructed = errors.New(
		"ReleaseNextPaymentCommand must be created via NewReleaseNextPaymentCommand constructor",
	)

	// ErrNoReleasablePayments signals that the release sweep found no
	// escrowed payment ready to pay out. Callers treat it as a quiet no-op.
	ErrNoReleasablePayments = errors.New("no releasable payments")
)

// ReleaseNextPaymentCommand releases the oldest escrowed payment whose
// delivery has completed and which no dispute holds. It carries no
// parameters and runs on a schedule.
type ReleaseNextPaymentCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseNextPaymentCommand creates a release sweep command.
func NewReleaseNextPaymentCommand() (ReleaseNextPaymentCommand, error) {
	return ReleaseNextPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseNextPaymentCommand) Validate() error {
	return c.guard.Validate(ErrReleaseNextPaymentCommandIsNotConstructed)
}
