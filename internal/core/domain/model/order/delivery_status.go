package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned by every rejected delivery status
// transition. Rejections are synchronous and leave no partial state behind.
var ErrInvalidTransition = errors.New("invalid delivery status transition")

// DeliveryStatus represents the lifecycle state of an order item's delivery.
// It implements a state machine with defined transitions so items follow the
// correct fulfillment workflow.
//
// State transitions, with the acting party in parentheses:
//
//	Created ──> Assigned ──> Shipped ──> TravelerConfirmed ──> ClientConfirmed ──> Completed
//	(traveler     (traveler    (traveler      (client               (traveler uploads
//	 claims)       ships)       confirms)      confirms)             delivery proof)
//
// The two confirmations are strictly sequential: the traveler confirms first,
// then the client. A dispute resolved with redelivery resets a post-claim item
// back to Assigned without clearing the claim.
//
// DeliveryStatus is a value object that validates state transitions and
// provides string representations for persistence and display.
type DeliveryStatus int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized DeliveryStatus values.
	StatusUnknown DeliveryStatus = iota

	// StatusCreated is the initial status when the item is purchased.
	// Items in this status are listed for travelers to claim.
	StatusCreated

	// StatusAssigned indicates a traveler holds the exclusive claim on the item.
	StatusAssigned

	// StatusShipped indicates the claiming traveler has dispatched the item.
	StatusShipped

	// StatusTravelerConfirmed indicates the traveler has acknowledged handover.
	StatusTravelerConfirmed

	// StatusClientConfirmed indicates the client has acknowledged receipt.
	// Delivery proof may only be uploaded in this status.
	StatusClientConfirmed

	// StatusCompleted indicates delivery proof exists and the delivery is done.
	// This is a terminal state; it makes the item's payment releasable.
	StatusCompleted
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		StatusUnknown:           "Unknown",
		StatusCreated:           "Created",
		StatusAssigned:          "Assigned",
		StatusShipped:           "Shipped",
		StatusTravelerConfirmed: "TravelerConfirmed",
		StatusClientConfirmed:   "ClientConfirmed",
		StatusCompleted:         "Completed",
	}
}

// DeliveryStatusFromString parses a status arriving from the boundary.
// Unknown values are rejected rather than coerced.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, str := range getDeliveryStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%w: %q is not a valid delivery status", ErrInvalidTransition, s)
}

// Validate checks if the DeliveryStatus value is one of the defined states.
// StatusUnknown (0) and any other values are invalid.
func (s DeliveryStatus) Validate() error {
	if _, ok := getDeliveryStatusStrings()[s]; !ok || s == StatusUnknown {
		return fmt.Errorf("%w: %d is not a valid delivery status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further forward transition.
func (s DeliveryStatus) IsTerminal() bool {
	return s == StatusCompleted
}

// Assign transitions the status to Assigned when a traveler claims the item.
//
// Valid transitions:
//   - Created -> Assigned
//
// Claimed items cannot be claimed again; any other source state is rejected.
func (s DeliveryStatus) Assign() (DeliveryStatus, error) {
	if s != StatusCreated {
		return 0, fmt.Errorf("%w: cannot assign an item in status %s", ErrInvalidTransition, s)
	}
	return StatusAssigned, nil
}

// Ship transitions the status to Shipped when the traveler dispatches the item.
//
// Valid transitions:
//   - Assigned -> Shipped
func (s DeliveryStatus) Ship() (DeliveryStatus, error) {
	if s != StatusAssigned {
		return 0, fmt.Errorf("%w: cannot ship an item in status %s", ErrInvalidTransition, s)
	}
	return StatusShipped, nil
}

// ConfirmByTraveler transitions the status to TravelerConfirmed.
// The traveler confirmation always precedes the client confirmation.
//
// Valid transitions:
//   - Shipped -> TravelerConfirmed
func (s DeliveryStatus) ConfirmByTraveler() (DeliveryStatus, error) {
	if s != StatusShipped {
		return 0, fmt.Errorf("%w: traveler cannot confirm an item in status %s", ErrInvalidTransition, s)
	}
	return StatusTravelerConfirmed, nil
}

// ConfirmByClient transitions the status to ClientConfirmed.
//
// Valid transitions:
//   - TravelerConfirmed -> ClientConfirmed
func (s DeliveryStatus) ConfirmByClient() (DeliveryStatus, error) {
	if s != StatusTravelerConfirmed {
		return 0, fmt.Errorf("%w: client cannot confirm an item in status %s", ErrInvalidTransition, s)
	}
	return StatusClientConfirmed, nil
}

// Complete transitions the status to Completed.
// Only reached through delivery proof upload, which requires ClientConfirmed.
//
// Valid transitions:
//   - ClientConfirmed -> Completed
func (s DeliveryStatus) Complete() (DeliveryStatus, error) {
	if s != StatusClientConfirmed {
		return 0, fmt.Errorf("%w: cannot complete an item in status %s", ErrInvalidTransition, s)
	}
	return StatusCompleted, nil
}

// Redeliver resets the status to Assigned after a dispute resolved with the
// redelivery action. Valid from any post-claim status; the claim itself is
// retained by the same traveler.
func (s DeliveryStatus) Redeliver() (DeliveryStatus, error) {
	switch s {
	case StatusAssigned, StatusShipped, StatusTravelerConfirmed, StatusClientConfirmed, StatusCompleted:
		return StatusAssigned, nil
	default:
		return 0, fmt.Errorf("%w: cannot redeliver an item in status %s", ErrInvalidTransition, s)
	}
}
