// Package payment provides the escrow ledger record for one fulfilled order
// item and the state machine guarding fund movement.
//
// The package includes:
//   - Payment: The escrow record, single writer of payment amounts
//   - Status: A state machine for pending -> escrow -> released, with the
//     dispute-only terminal refunded state
//
// Key business rules:
//   - totalAmount always equals productAmount + markupAmount
//   - status never moves backward; released and refunded payments are immutable
//   - release is one-way and idempotence-guarded: a second release fails with
//     ErrAlreadyReleased rather than silently succeeding or double-paying
package payment
