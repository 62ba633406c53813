package commands

import (
	"errors"
	"time"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/pkg/guard"
)

var (
	ErrUpdateFirstDeliveryEventCommandIsNotConstructed = errors.New(
		"UpdateFirstDeliveryEventCommand must be created via NewUpdateFirstDeliveryEventCommand constructor",
	)
)

// UpdateFirstDeliveryEventCommand replaces the first recorded event of a
// delivery, e.g. to correct a mistyped timestamp. The replacement normally
// carries the same key but may move the event to another delivery.
type UpdateFirstDeliveryEventCommand struct { //nolint:recvcheck //using for validation
	key         kernel.DeliveryKey
	replacement CreateDeliveryEventCommand

	guard guard.ConstructorGuard
}

// NewUpdateFirstDeliveryEventCommand creates a command replacing the first
// event of the delivery (orderID, deliveryID) with the given event data.
// The replacement fields are validated like NewCreateDeliveryEventCommand.
func NewUpdateFirstDeliveryEventCommand(
	orderID, deliveryID int64,
	replacementOrderID, replacementDeliveryID int64,
	kind string,
	status event.Status,
	timestamp time.Time,
) (UpdateFirstDeliveryEventCommand, error) {
	replacement, err := NewCreateDeliveryEventCommand(replacementOrderID, replacementDeliveryID, kind, status, timestamp)
	if err != nil {
		return UpdateFirstDeliveryEventCommand{}, err
	}

	return UpdateFirstDeliveryEventCommand{
		key:         kernel.NewDeliveryKey(orderID, deliveryID),
		replacement: replacement,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFirstDeliveryEventCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFirstDeliveryEventCommandIsNotConstructed)
}

// Key returns the delivery whose first event is replaced.
func (c UpdateFirstDeliveryEventCommand) Key() kernel.DeliveryKey {
	return c.key
}

// Replacement returns the data of the new event.
func (c UpdateFirstDeliveryEventCommand) Replacement() CreateDeliveryEventCommand {
	return c.replacement
}
