package commands

import (
	"context"
)

// CreateDeliveryEventCommandHandler appends a new delivery event to the store.
//
// Example:
//
//	handler := NewCreateDeliveryEventCommandHandler(uowFactory)
//	cmd, _ := NewCreateDeliveryEventCommand(1, 2, "Entrega", event.Pending, time.Now())
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("recording event failed: %w", err)
//	}
type CreateDeliveryEventCommandHandler struct {
	uowFactory DeliveryEventUoWFactory
}

// NewCreateDeliveryEventCommandHandler creates a handler for event creation.
func NewCreateDeliveryEventCommandHandler(uowFactory DeliveryEventUoWFactory) CreateDeliveryEventCommandHandler {
	return CreateDeliveryEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the event and saves it inside one unit of work.
func (h *CreateDeliveryEventCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ev, err := cmd.toEvent()
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

	if err = uow.DeliveryEventRepository().Save(ctx, ev); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
