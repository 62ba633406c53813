// Package kernel provides the shared domain primitives of the delivery rate model.
//
// The package includes:
//   - DeliveryKey: the (orderID, deliveryID) pair that identifies one delivery
//   - RunID: the identifier of one rate calculation run
//
// A delivery is not stored as an entity of its own. It is the group of all
// delivery events that share one DeliveryKey, so the key is the single place
// where grouping equality is defined.
package kernel
