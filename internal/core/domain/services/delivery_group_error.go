package services

import (
	"errors"
	"fmt"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
)

// ErrDeliveryGroupIsInvalid is the sentinel wrapped by every DeliveryGroupError.
var ErrDeliveryGroupIsInvalid = errors.New("delivery group is invalid")

// DeliveryGroupError reports a delivery whose events do not have the shape
// required by the strict policy. It identifies the group and either the
// unexpected event count or the event with the unexpected status.
//
// Example:
//
//	rates, err := calculator.Calculate(events)
//	var groupErr *services.DeliveryGroupError
//	if errors.As(err, &groupErr) {
//	    log.Printf("%s has %d events", groupErr.Key, groupErr.Count)
//	}
type DeliveryGroupError struct {
	// Key identifies the offending delivery.
	Key kernel.DeliveryKey

	// Count is the number of events found in the group.
	Count int

	// Position is the chronological index of the offending event,
	// -1 when the group was rejected for its size.
	Position int

	// Status is the offending event status, Unknown when Position is -1.
	Status event.Status

	reason string
}

func newGroupSizeError(key kernel.DeliveryKey, count int) *DeliveryGroupError {
	return &DeliveryGroupError{
		Key:      key,
		Count:    count,
		Position: -1,
		Status:   event.Unknown,
		reason:   fmt.Sprintf("expected exactly %d events, found %d", strictGroupSize, count),
	}
}

func newGroupStatusError(key kernel.DeliveryKey, count, position int, status event.Status, want string) *DeliveryGroupError {
	return &DeliveryGroupError{
		Key:      key,
		Count:    count,
		Position: position,
		Status:   status,
		reason:   fmt.Sprintf("event %d should be %s, found %s", position+1, want, status),
	}
}

func (e *DeliveryGroupError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrDeliveryGroupIsInvalid, e.Key, e.reason)
}

func (e *DeliveryGroupError) Unwrap() error {
	return ErrDeliveryGroupIsInvalid
}
