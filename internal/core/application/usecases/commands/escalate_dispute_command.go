package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrEscalateDisputeCommandIsNotConstructed = errors.New(
		"EscalateDisputeCommand must be created via NewEscalateDisputeCommand constructor",
	)

	// ErrNoOpenDisputes signals that the escalation sweep found nothing to
	// move into review. Callers treat it as a quiet no-op.
	ErrNoOpenDisputes = errors.New("no open disputes")
)

// EscalateDisputeCommand moves the oldest open dispute into review.
// It carries no parameters and runs on a schedule.
type EscalateDisputeCommand struct {
	guard guard.ConstructorGuard
}

// NewEscalateDisputeCommand creates an escalation sweep command.
func NewEscalateDisputeCommand() (EscalateDisputeCommand, error) {
	return EscalateDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateDisputeCommand) Validate() error {
	return c.guard.Validate(ErrEscalateDisputeCommandIsNotConstructed)
}
