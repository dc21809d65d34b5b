// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the marketplace. It implements
// business logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - EscrowSplitter: The platform's markup split policy between traveler
//     reward and company fee
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
