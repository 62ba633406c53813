package commands

import (
	"context"
)

// UpdateFirstDeliveryEventCommandHandler replaces the first event of a delivery.
// Fails with an ObjectNotFoundError when the delivery has no events.
type UpdateFirstDeliveryEventCommandHandler struct {
	uowFactory DeliveryEventUoWFactory
}

// NewUpdateFirstDeliveryEventCommandHandler creates a handler for event replacement.
func NewUpdateFirstDeliveryEventCommandHandler(uowFactory DeliveryEventUoWFactory) UpdateFirstDeliveryEventCommandHandler {
	return UpdateFirstDeliveryEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the replacement event and swaps it in inside one unit of work.
func (h *UpdateFirstDeliveryEventCommandHandler) Handle(ctx context.Context, cmd UpdateFirstDeliveryEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	replacement, err := cmd.Replacement().toEvent()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryEventRepository().Update(ctx, cmd.Key(), replacement); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
