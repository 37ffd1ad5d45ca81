// Package order provides the Order aggregate of the order book.
//
// The package includes:
//   - Order: the aggregate root holding what was ordered, for whom and when to deliver it
//   - Line: one dish name with its positive quantity
//   - Status: the Pending -> Assigned latch
//   - CreatedEvent and AssignedEvent: domain events raised by the aggregate
//
// Key business rules:
//   - Order ids are positive and assigned by the order book in creation order
//   - Only the status changes after creation
//   - Assignment is one way; an assigned order is never pending again
//   - Dish and restaurant names are not checked against the catalog
package order
