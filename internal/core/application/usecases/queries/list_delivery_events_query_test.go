package queries_test

import (
	"testing"

	"deliveryrates/internal/core/application/usecases/queries"
	"deliveryrates/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListDeliveryEventsQuery(t *testing.T) {
	query := queries.NewListDeliveryEventsQuery()

	require.NoError(t, query.Validate())
	_, filtered := query.Key()
	assert.False(t, filtered)
}

func TestNewListDeliveryEventsByDeliveryQuery(t *testing.T) {
	query := queries.NewListDeliveryEventsByDeliveryQuery(3, 4)

	require.NoError(t, query.Validate())
	key, filtered := query.Key()
	assert.True(t, filtered)
	assert.Equal(t, kernel.NewDeliveryKey(3, 4), key)
}

func TestListDeliveryEventsQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.ListDeliveryEventsQuery{}.Validate()

	require.ErrorIs(t, err, queries.ErrListDeliveryEventsQueryIsNotConstructed)
}
