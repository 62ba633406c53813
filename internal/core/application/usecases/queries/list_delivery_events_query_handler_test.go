package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"deliveryrates/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListDeliveryEventsQueryHandler_Handle_All(t *testing.T) {
	h := queries.NewListDeliveryEventsQueryHandler(seededStore(t))

	events, err := h.Handle(t.Context(), queries.NewListDeliveryEventsQuery())

	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, int64(1), events[0].DeliveryID)
	assert.Equal(t, "PENDING", events[0].Status)
	assert.Equal(t, int64(2), events[1].DeliveryID)
	assert.Equal(t, "DELIVERED", events[2].Status)
	assert.Equal(t, "CANCELLED", events[3].Status)
	assert.True(t, events[3].Timestamp.Equal(base.Add(5*time.Minute)))
}

func TestListDeliveryEventsQueryHandler_Handle_ByDelivery(t *testing.T) {
	h := queries.NewListDeliveryEventsQueryHandler(seededStore(t))

	events, err := h.Handle(t.Context(), queries.NewListDeliveryEventsByDeliveryQuery(1, 2))

	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, ev := range events {
		assert.Equal(t, int64(2), ev.DeliveryID)
	}
}

func TestListDeliveryEventsQueryHandler_Handle_UnknownDelivery(t *testing.T) {
	h := queries.NewListDeliveryEventsQueryHandler(seededStore(t))

	events, err := h.Handle(t.Context(), queries.NewListDeliveryEventsByDeliveryQuery(9, 9))

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestListDeliveryEventsQueryHandler_Handle_ReaderError(t *testing.T) {
	reader := new(MockDeliveryEventReader)
	reader.On("List", mock.Anything).Return(nil, errors.New("read error")).Once()

	h := queries.NewListDeliveryEventsQueryHandler(reader)
	_, err := h.Handle(t.Context(), queries.NewListDeliveryEventsQuery())

	require.EqualError(t, err, "read error")
	reader.AssertExpectations(t)
}

func TestListDeliveryEventsQueryHandler_Handle_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	h := queries.NewListDeliveryEventsQueryHandler(seededStore(t))
	_, err := h.Handle(ctx, queries.NewListDeliveryEventsQuery())

	require.ErrorIs(t, err, context.Canceled)
}

func TestListDeliveryEventsQueryHandler_Handle_ValidationError(t *testing.T) {
	reader := new(MockDeliveryEventReader)
	h := queries.NewListDeliveryEventsQueryHandler(reader)

	_, err := h.Handle(t.Context(), queries.ListDeliveryEventsQuery{})

	require.ErrorIs(t, err, queries.ErrListDeliveryEventsQueryIsNotConstructed)
	reader.AssertNotCalled(t, "List", mock.Anything)
}
