// Package order contains the order aggregate and its supporting value objects.
// An order is an immutable snapshot of a customer's cart at checkout time,
// tracked through a delivery lifecycle by a status state machine.
//
// The package enforces the business rules that matter in this system:
//   - status only moves along the defined transition graph, or sideways into
//     cancelled from any non-terminal state;
//   - a delivery verification code is issued exactly once, when the order
//     goes out for delivery, and never changes afterwards;
//   - the delivered transition is gated on exact string equality between the
//     code the delivery agent relays and the stored one;
//   - line items and the order total are immutable after creation, so later
//     product price changes never affect order history.
package order
