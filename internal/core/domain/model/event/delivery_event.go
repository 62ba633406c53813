package event

import (
	"errors"
	"strings"
	"time"

	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/pkg/errs"
)

var (
	// ErrDeliveryEventIsNotConstructed is returned by Validate for a DeliveryEvent
	// that was not built through NewDeliveryEvent.
	ErrDeliveryEventIsNotConstructed = errors.New("DeliveryEvent must be created via NewDeliveryEvent constructor")
)

// DeliveryEvent records that a delivery of an order reached a status at a
// given instant. Events are immutable facts: all fields are private and set
// once by NewDeliveryEvent.
//
// DeliveryEvent follows these invariants:
//   - kind is not blank
//   - status is Pending, Delivered or Cancelled
//   - can only be created through NewDeliveryEvent
type DeliveryEvent struct {
	// key is the (order, delivery) pair the event belongs to
	key kernel.DeliveryKey

	// kind is a free descriptive label, e.g. "Entrega"
	kind string

	// status is the lifecycle state reported by this event
	status Status

	// timestamp is the instant the status was reached
	timestamp time.Time

	// isConstructed ensures the event was created via NewDeliveryEvent
	isConstructed bool
}

// NewDeliveryEvent creates a validated delivery event.
//
// Parameters:
//   - orderID, deliveryID: the delivery the event belongs to
//   - kind: descriptive label, must not be blank or whitespace only
//   - status: Pending, Delivered or Cancelled
//   - timestamp: the instant of the status change; its location is kept
//
// Returns a ValueIsRequiredError for a blank kind and a ValueIsInvalidError
// for an invalid status, joined when both fail.
//
// Example:
//
//	ev, err := event.NewDeliveryEvent(1, 1, "Entrega", event.Pending,
//	    time.Date(2025, 9, 6, 15, 16, 0, 0, time.UTC))
//	if err != nil {
//	    return err
//	}
func NewDeliveryEvent(
	orderID, deliveryID int64,
	kind string,
	status Status,
	timestamp time.Time,
) (*DeliveryEvent, error) {
	ev := &DeliveryEvent{
		key:           kernel.NewDeliveryKey(orderID, deliveryID),
		timestamp:     timestamp,
		isConstructed: true,
	}

	if err := errors.Join(
		ev.setKind(kind),
		ev.setStatus(status),
	); err != nil {
		return nil, err
	}

	return ev, nil
}

// Validate ensures the event was created through NewDeliveryEvent.
func (e *DeliveryEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrDeliveryEventIsNotConstructed
	}
	return nil
}

// Key returns the (order, delivery) pair of the event.
func (e *DeliveryEvent) Key() kernel.DeliveryKey {
	return e.key
}

// OrderID returns the order identifier.
func (e *DeliveryEvent) OrderID() int64 {
	return e.key.OrderID()
}

// DeliveryID returns the delivery identifier within the order.
func (e *DeliveryEvent) DeliveryID() int64 {
	return e.key.DeliveryID()
}

// Kind returns the descriptive label.
func (e *DeliveryEvent) Kind() string {
	return e.kind
}

// Status returns the reported status.
func (e *DeliveryEvent) Status() Status {
	return e.status
}

// Timestamp returns the instant of the status change.
func (e *DeliveryEvent) Timestamp() time.Time {
	return e.timestamp
}

func (e *DeliveryEvent) setKind(kind string) error {
	if strings.TrimSpace(kind) == "" {
		return errs.NewValueIsRequiredError("kind")
	}
	e.kind = kind
	return nil
}

func (e *DeliveryEvent) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
