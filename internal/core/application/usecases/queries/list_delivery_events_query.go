// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models built from a single store snapshot.
package queries

import (
	"errors"
	"time"

	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/pkg/guard"
)

var (
	ErrListDeliveryEventsQueryIsNotConstructed = errors.New(
		"ListDeliveryEventsQuery must be created via NewListDeliveryEventsQuery constructor",
	)
)

// ListDeliveryEventsQuery retrieves recorded delivery events, either all of
// them or those of a single delivery.
//
// Example:
//
//	query := NewListDeliveryEventsByDeliveryQuery(1, 1)
//	handler := NewListDeliveryEventsQueryHandler(store)
//
//	events, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list events: %w", err)
//	}
type ListDeliveryEventsQuery struct {
	key      kernel.DeliveryKey
	filtered bool

	guard guard.ConstructorGuard
}

// NewListDeliveryEventsQuery creates a query for every recorded event.
func NewListDeliveryEventsQuery() ListDeliveryEventsQuery {
	return ListDeliveryEventsQuery{guard: guard.NewConstructorGuard()}
}

// NewListDeliveryEventsByDeliveryQuery creates a query for the events of one delivery.
func NewListDeliveryEventsByDeliveryQuery(orderID, deliveryID int64) ListDeliveryEventsQuery {
	return ListDeliveryEventsQuery{
		key:      kernel.NewDeliveryKey(orderID, deliveryID),
		filtered: true,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through a constructor.
func (q ListDeliveryEventsQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveryEventsQueryIsNotConstructed)
}

// Key returns the delivery filter and whether one is set.
func (q ListDeliveryEventsQuery) Key() (kernel.DeliveryKey, bool) {
	return q.key, q.filtered
}

// ListDeliveryEventsQueryResponse is the read model of one delivery event.
type ListDeliveryEventsQueryResponse struct {
	OrderID    int64
	DeliveryID int64
	Kind       string
	Status     string
	Timestamp  time.Time
}
