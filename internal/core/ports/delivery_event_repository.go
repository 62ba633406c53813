// Package ports defines the storage contracts the delivery rate use cases depend on.
// Adapters in internal/adapters/out implement them; the core never imports an adapter.
package ports

import (
	"context"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
)

// DeliveryEventReader provides read access to stored delivery events.
//
// Every call returns a snapshot: a slice owned by the caller that later
// writes to the store do not change. The rate engine relies on this to see
// one consistent list for the duration of a calculation.
type DeliveryEventReader interface {
	// List returns all events in insertion order.
	List(ctx context.Context) ([]*event.DeliveryEvent, error)

	// ListBy returns the events of one delivery in insertion order,
	// an empty slice when the delivery is unknown.
	ListBy(ctx context.Context, key kernel.DeliveryKey) ([]*event.DeliveryEvent, error)
}

// DeliveryEventRepository defines the persistence contract for delivery events.
type DeliveryEventRepository interface {
	DeliveryEventReader

	// Save appends a new event.
	Save(ctx context.Context, ev *event.DeliveryEvent) error

	// Update replaces, in place, the first stored event of the delivery key
	// with replacement. The replacement may belong to another delivery.
	// Returns an ObjectNotFoundError when the delivery has no events.
	Update(ctx context.Context, key kernel.DeliveryKey, replacement *event.DeliveryEvent) error
}
