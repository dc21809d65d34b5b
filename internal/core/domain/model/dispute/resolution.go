package dispute

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrResolutionIsNotConstructed is returned when validating a zero-value
// Resolution that bypassed the NewResolution constructor.
var ErrResolutionIsNotConstructed = errors.New("Resolution must be created via NewResolution constructor")

// Resolution is the singular outcome of a resolved dispute. The amount is
// meaningful for partial refunds; for full refunds the payment's total is
// authoritative and the amount recorded here mirrors it.
type Resolution struct {
	action Action
	amount kernel.Money
	notes  string

	guard guard.ConstructorGuard
}

// NewResolution creates a validated resolution outcome.
// A partial refund requires a positive amount; other actions may carry zero.
func NewResolution(action Action, amount kernel.Money, notes string) (Resolution, error) {
	if err := action.Validate(); err != nil {
		return Resolution{}, err
	}
	if err := amount.Validate(); err != nil {
		return Resolution{}, err
	}
	if action == ActionPartialRefund && amount.IsZero() {
		return Resolution{}, errs.NewValueIsRequiredError("partial refund amount")
	}

	return Resolution{
		action: action,
		amount: amount,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Action returns the resolution action.
func (r Resolution) Action() Action {
	return r.action
}

// Amount returns the monetary amount attached to the resolution.
func (r Resolution) Amount() kernel.Money {
	return r.amount
}

// Notes returns the admin's free-form resolution notes.
func (r Resolution) Notes() string {
	return r.notes
}

// Validate checks that the Resolution was created via NewResolution.
func (r Resolution) Validate() error {
	return r.guard.Validate(ErrResolutionIsNotConstructed)
}
