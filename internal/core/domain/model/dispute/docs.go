// Package dispute provides the freeze-and-arbitrate record attached to a
// payment, with its closed reason, status and resolution action enumerations.
//
// Key business rules:
//   - a payment carries at most one dispute in open or under_review at a time
//   - while such a dispute exists, the payment cannot be released through the
//     normal escrow path
//   - resolution is terminal and singular: a dispute resolves exactly once
//   - rejection is a no-op resolution that simply unblocks release
package dispute
