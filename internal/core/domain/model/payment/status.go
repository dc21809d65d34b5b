package payment

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInEscrow is returned when release or refund is attempted on a
	// payment that is not holding funds in escrow.
	ErrNotInEscrow = errors.New("payment is not in escrow")

	// ErrAlreadyReleased is returned on a second release attempt, including
	// the loser of a release race. Funds move out of escrow exactly once.
	ErrAlreadyReleased = errors.New("payment is already released")

	// ErrAlreadyRefunded is returned when a refunded payment is touched again.
	ErrAlreadyRefunded = errors.New("payment is already refunded")

	// ErrNotPending is returned when escrow capture is attempted on a payment
	// that already left the pending state.
	ErrNotPending = errors.New("payment is not pending")
)

// Status represents the escrow lifecycle state of a payment.
//
// State transitions:
//
//	Pending ──> Escrow ──┬──> Released   (escrow engine, one-way)
//	                     └──> Refunded   (dispute resolution only)
//
// Released and Refunded are terminal. Refunded is reachable only through
// dispute resolution; the normal escrow path never produces it.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the payment record exists but
	// checkout capture has not been confirmed yet.
	StatusPending

	// StatusEscrow indicates the platform holds the funds, payable to no one
	// until a release trigger.
	StatusEscrow

	// StatusReleased indicates funds have moved out of escrow toward the
	// traveler. Terminal and immutable.
	StatusReleased

	// StatusRefunded indicates a dispute diverted the funds back toward the
	// client. Terminal and immutable.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusEscrow:   "escrow",
		StatusReleased: "released",
		StatusRefunded: "refunded",
	}
}

// StatusFromString parses a payment status arriving from the boundary.
// Unknown values are rejected rather than coerced.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%q is not a valid payment status", s)
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return fmt.Errorf("%d is not a valid payment status", s)
	}
	return nil
}

// String returns the wire-level name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transition.
func (s Status) IsTerminal() bool {
	return s == StatusReleased || s == StatusRefunded
}

// ToEscrow transitions the status to Escrow on checkout capture.
//
// Valid transitions:
//   - Pending -> Escrow
func (s Status) ToEscrow() (Status, error) {
	if s != StatusPending {
		return 0, fmt.Errorf("%w: status is %s", ErrNotPending, s)
	}
	return StatusEscrow, nil
}

// Release transitions the status to Released.
//
// Valid transitions:
//   - Escrow -> Released
//
// A released payment yields ErrAlreadyReleased; anything else ErrNotInEscrow.
func (s Status) Release() (Status, error) {
	switch s {
	case StatusEscrow:
		return StatusReleased, nil
	case StatusReleased:
		return 0, ErrAlreadyReleased
	default:
		return 0, fmt.Errorf("%w: status is %s", ErrNotInEscrow, s)
	}
}

// Refund transitions the status to Refunded via dispute resolution.
//
// Valid transitions:
//   - Escrow -> Refunded
func (s Status) Refund() (Status, error) {
	switch s {
	case StatusEscrow:
		return StatusRefunded, nil
	case StatusRefunded:
		return 0, ErrAlreadyRefunded
	case StatusReleased:
		return 0, ErrAlreadyReleased
	default:
		return 0, fmt.Errorf("%w: status is %s", ErrNotInEscrow, s)
	}
}
