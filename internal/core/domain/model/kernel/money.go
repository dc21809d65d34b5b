package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money
// that bypassed the NewMoney constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object representing a non-negative monetary amount in the
// platform currency's minor units (e.g. cents). All product prices, markups,
// escrow totals and payout amounts in the core are expressed as Money.
//
// Money is immutable: arithmetic methods return new values. Amounts are kept
// as integers so that escrow splits and refunds never accumulate floating
// point drift.
//
// Example:
//
//	price, _ := kernel.NewMoney(500)
//	markup, _ := kernel.NewMoney(100)
//	total, _ := price.Add(markup) // 600
type Money struct {
	amount int64

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor units.
// Returns an error for negative amounts.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) (Money, error) {
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount + other.amount)
}

// Subtract returns the difference of two Money values.
// Returns an error when the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount - other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String renders the amount in minor units, for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}

// Validate checks that the Money value was created via NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
