package queries

import (
	"context"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/ports"
)

// ListDeliveryEventsQueryHandler reads delivery events in store order.
type ListDeliveryEventsQueryHandler struct {
	reader ports.DeliveryEventReader
}

// NewListDeliveryEventsQueryHandler creates a handler reading from reader.
func NewListDeliveryEventsQueryHandler(reader ports.DeliveryEventReader) ListDeliveryEventsQueryHandler {
	return ListDeliveryEventsQueryHandler{reader: reader}
}

// Handle returns the events matched by query, in insertion order.
func (h ListDeliveryEventsQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveryEventsQuery,
) ([]ListDeliveryEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		events []*event.DeliveryEvent
		err    error
	)
	if key, ok := query.Key(); ok {
		events, err = h.reader.ListBy(ctx, key)
	} else {
		events, err = h.reader.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	response := make([]ListDeliveryEventsQueryResponse, 0, len(events))
	for _, ev := range events {
		response = append(response, ListDeliveryEventsQueryResponse{
			OrderID:    ev.OrderID(),
			DeliveryID: ev.DeliveryID(),
			Kind:       ev.Kind(),
			Status:     ev.Status().String(),
			Timestamp:  ev.Timestamp(),
		})
	}

	return response, nil
}
