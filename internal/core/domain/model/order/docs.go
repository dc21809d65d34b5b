// Package order provides domain entities and business logic for order management
// in the marketplace. It implements the Order aggregate root owning its items,
// together with the per-item delivery state machine.
//
// The package includes:
//   - Order: The aggregate root created at checkout, owning one Item per purchased product
//   - Item: The unit of fulfillment, claimed by exactly one traveler
//   - DeliveryStatus: A state machine that enforces valid delivery transitions
//
// Key business rules:
//   - An order's total amount equals the sum of item charges at creation and never changes
//   - An item is claimed at most once; claims are exclusive
//   - Delivery status follows a defined workflow:
//     Created -> Assigned -> Shipped -> TravelerConfirmed -> ClientConfirmed -> Completed
//   - Each transition is performed by exactly one authorized actor
//   - Uploading delivery proof is what performs the final Completed transition
//   - Items are never deleted; they are retained as permanent history
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
