// Package event provides the DeliveryEvent value, the raw fact the rate
// engine works on, and the Status enumeration a delivery moves through.
//
// The package includes:
//   - DeliveryEvent: an immutable status change of one delivery at one instant
//   - Status: Pending, Delivered or Cancelled
//
// Key business rules:
//   - An event kind label must not be blank or whitespace only
//   - An event status must be one of Pending, Delivered, Cancelled
//   - Delivered and Cancelled are terminal statuses
//   - Events are never modified once built; a correction replaces the event
package event
