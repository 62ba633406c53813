package commands

import (
	"errors"
	"strings"
	"time"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/pkg/guard"
)

var (
	ErrCreateDeliveryEventCommandIsNotConstructed = errors.New(
		"CreateDeliveryEventCommand must be created via NewCreateDeliveryEventCommand constructor",
	)
	ErrKindIsRequired      = errors.New("kind is required")
	ErrTimestampIsRequired = errors.New("timestamp is required")
)

// CreateDeliveryEventCommand represents a request to record a status change of a delivery.
//
// Example:
//
//	cmd, err := NewCreateDeliveryEventCommand(1, 1, "Entrega", event.Delivered, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid delivery event: %w", err)
//	}
//
//	handler := NewCreateDeliveryEventCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record delivery event: %w", err)
//	}
type CreateDeliveryEventCommand struct { //nolint:recvcheck //using for validation
	key       kernel.DeliveryKey
	kind      string
	status    event.Status
	timestamp time.Time

	guard guard.ConstructorGuard
}

// NewCreateDeliveryEventCommand creates a command to record one delivery event.
// Validates that kind is not blank, status is valid and timestamp is set.
func NewCreateDeliveryEventCommand(
	orderID, deliveryID int64,
	kind string,
	status event.Status,
	timestamp time.Time,
) (CreateDeliveryEventCommand, error) {
	cmd := CreateDeliveryEventCommand{
		key:   kernel.NewDeliveryKey(orderID, deliveryID),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setStatus(status),
		cmd.setTimestamp(timestamp),
	); err != nil {
		return CreateDeliveryEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryEventCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryEventCommandIsNotConstructed)
}

// Key returns the delivery the event belongs to.
func (c CreateDeliveryEventCommand) Key() kernel.DeliveryKey {
	return c.key
}

// Kind returns the descriptive label of the event.
func (c CreateDeliveryEventCommand) Kind() string {
	return c.kind
}

// Status returns the reported status.
func (c CreateDeliveryEventCommand) Status() event.Status {
	return c.status
}

// Timestamp returns the instant of the status change.
func (c CreateDeliveryEventCommand) Timestamp() time.Time {
	return c.timestamp
}

func (c CreateDeliveryEventCommand) toEvent() (*event.DeliveryEvent, error) {
	return event.NewDeliveryEvent(c.key.OrderID(), c.key.DeliveryID(), c.kind, c.status, c.timestamp)
}

func (c *CreateDeliveryEventCommand) setKind(kind string) error {
	if strings.TrimSpace(kind) == "" {
		return ErrKindIsRequired
	}

	c.kind = kind
	return nil
}

func (c *CreateDeliveryEventCommand) setStatus(status event.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *CreateDeliveryEventCommand) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return ErrTimestampIsRequired
	}

	c.timestamp = timestamp
	return nil
}
