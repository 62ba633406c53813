package queries_test

import (
	"testing"
	"time"

	"deliveryrates/internal/adapters/out/memory"
	"deliveryrates/internal/core/domain/model/event"

	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 9, 6, 15, 16, 0, 0, time.UTC)

func newEvent(t *testing.T, orderID, deliveryID int64, status event.Status, offset time.Duration) *event.DeliveryEvent {
	t.Helper()

	ev, err := event.NewDeliveryEvent(orderID, deliveryID, "Entrega", status, base.Add(offset))
	require.NoError(t, err)
	return ev
}

// seededStore holds two valid deliveries: (1,1) delivered after 12 minutes and
// (1,2) cancelled after 4 minutes.
func seededStore(t *testing.T) *memory.Store {
	t.Helper()

	store := memory.NewStore()
	for _, ev := range []*event.DeliveryEvent{
		newEvent(t, 1, 1, event.Pending, 0),
		newEvent(t, 1, 2, event.Pending, time.Minute),
		newEvent(t, 1, 1, event.Delivered, 12*time.Minute),
		newEvent(t, 1, 2, event.Cancelled, 5*time.Minute),
	} {
		require.NoError(t, store.Save(t.Context(), ev))
	}
	return store
}
