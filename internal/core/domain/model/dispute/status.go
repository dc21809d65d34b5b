package dispute

import (
	"errors"
	"fmt"
)

var (
	// ErrDisputeAlreadyResolved is returned when a terminal dispute is
	// resolved or rejected again. Resolution is single-shot.
	ErrDisputeAlreadyResolved = errors.New("dispute is already resolved")

	// ErrInvalidAction is returned for resolution actions outside the closed set.
	ErrInvalidAction = errors.New("invalid dispute resolution action")
)

// Status represents the arbitration state of a dispute.
//
// State transitions:
//
//	Open ──> UnderReview ──┬──> Resolved
//	  │                    └──> Rejected
//	  ├────────────────────────> Resolved
//	  └────────────────────────> Rejected
//
// Resolved and Rejected are terminal. While a dispute is Open or UnderReview
// it blocks release of the referenced payment.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusOpen is the initial status after either party raises the dispute.
	StatusOpen

	// StatusUnderReview indicates an admin has picked the dispute up.
	StatusUnderReview

	// StatusResolved indicates an admin applied one of the resolution actions.
	StatusResolved

	// StatusRejected indicates the dispute was dismissed without touching the
	// payment or the item.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		StatusOpen:        "open",
		StatusUnderReview: "under_review",
		StatusResolved:    "resolved",
		StatusRejected:    "rejected",
	}
}

// StatusFromString parses a dispute status arriving from the boundary.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%q is not a valid dispute status", s)
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return fmt.Errorf("%d is not a valid dispute status", s)
	}
	return nil
}

// String returns the wire-level name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsBlocking reports whether the dispute currently freezes release of the
// referenced payment.
func (s Status) IsBlocking() bool {
	return s == StatusOpen || s == StatusUnderReview
}

// IsTerminal reports whether the status admits no further transition.
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// StartReview transitions the status to UnderReview.
//
// Valid transitions:
//   - Open -> UnderReview
func (s Status) StartReview() (Status, error) {
	if s.IsTerminal() {
		return 0, ErrDisputeAlreadyResolved
	}
	if s != StatusOpen {
		return 0, fmt.Errorf("cannot start review of a dispute in status %s", s)
	}
	return StatusUnderReview, nil
}

// Resolve transitions the status to Resolved.
//
// Valid transitions:
//   - Open -> Resolved
//   - UnderReview -> Resolved
func (s Status) Resolve() (Status, error) {
	if s.IsTerminal() {
		return 0, ErrDisputeAlreadyResolved
	}
	if !s.IsBlocking() {
		return 0, fmt.Errorf("cannot resolve a dispute in status %s", s)
	}
	return StatusResolved, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Open -> Rejected
//   - UnderReview -> Rejected
func (s Status) Reject() (Status, error) {
	if s.IsTerminal() {
		return 0, ErrDisputeAlreadyResolved
	}
	if !s.IsBlocking() {
		return 0, fmt.Errorf("cannot reject a dispute in status %s", s)
	}
	return StatusRejected, nil
}

// Reason is the closed set of grounds on which a dispute may be raised.
type Reason int

const (
	// ReasonUnknown represents an invalid or undefined reason.
	ReasonUnknown Reason = iota

	// ReasonItemDamaged - the item arrived damaged.
	ReasonItemDamaged

	// ReasonNotDelivered - the item never arrived.
	ReasonNotDelivered

	// ReasonWrongItem - the wrong item was delivered.
	ReasonWrongItem

	// ReasonLateDelivery - the item arrived after the promised date.
	ReasonLateDelivery
)

func getReasonStrings() map[Reason]string {
	return map[Reason]string{
		ReasonUnknown:      "unknown",
		ReasonItemDamaged:  "item_damaged",
		ReasonNotDelivered: "not_delivered",
		ReasonWrongItem:    "wrong_item",
		ReasonLateDelivery: "late_delivery",
	}
}

// ReasonFromString parses a dispute reason arriving from the boundary.
func ReasonFromString(s string) (Reason, error) {
	for reason, str := range getReasonStrings() {
		if str == s && reason != ReasonUnknown {
			return reason, nil
		}
	}
	return ReasonUnknown, fmt.Errorf("%q is not a valid dispute reason", s)
}

// Validate checks if the Reason value is one of the defined values.
func (r Reason) Validate() error {
	if _, ok := getReasonStrings()[r]; !ok || r == ReasonUnknown {
		return fmt.Errorf("%d is not a valid dispute reason", r)
	}
	return nil
}

// String returns the wire-level name of the reason.
func (r Reason) String() string {
	if str, ok := getReasonStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Action is the closed set of terminal dispute resolution actions.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionFullRefund refunds the payment's full total toward the client.
	ActionFullRefund

	// ActionPartialRefund refunds a stated amount toward the client.
	ActionPartialRefund

	// ActionRedelivery keeps the payment in escrow and restarts the item's
	// delivery state machine.
	ActionRedelivery

	// ActionReleaseFunds releases the payment as if no dispute existed.
	ActionReleaseFunds
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown:       "unknown",
		ActionFullRefund:    "full_refund",
		ActionPartialRefund: "partial_refund",
		ActionRedelivery:    "redelivery",
		ActionReleaseFunds:  "release_funds",
	}
}

// ActionFromString parses a resolution action arriving from the boundary.
// Unknown values yield ErrInvalidAction.
func ActionFromString(s string) (Action, error) {
	for action, str := range getActionStrings() {
		if str == s && action != ActionUnknown {
			return action, nil
		}
	}
	return ActionUnknown, fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

// Validate checks if the Action value is one of the defined values.
func (a Action) Validate() error {
	if _, ok := getActionStrings()[a]; !ok || a == ActionUnknown {
		return fmt.Errorf("%w: %d", ErrInvalidAction, a)
	}
	return nil
}

// String returns the wire-level name of the action.
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}
