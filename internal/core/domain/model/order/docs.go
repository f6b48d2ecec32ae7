// Package order provides domain entities and business logic for order
// management in the delivery marketplace. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, dealer assignment,
//     delivery dates, route and urgency
//   - Status: A state machine that enforces valid order status transitions
//   - Actor: The resolved identity requesting a mutation
//
// Key business rules:
//   - Order status follows a defined workflow: Pending -> InProgress -> Delivered/Failed,
//     with Pending -> Failed permitted for orders that were never dispatched
//   - The only path from Pending to InProgress is dispatch assignment, which
//     sets the dealer atomically with the status
//   - Delivery dates exist exactly while the order is Delivered
//   - The urgent flag is a priority marker on top of the base lifecycle and
//     is only raised while Pending or InProgress
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
