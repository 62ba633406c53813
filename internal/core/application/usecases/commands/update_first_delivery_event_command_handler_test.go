package commands_test

import (
	"testing"
	"time"

	"deliveryrates/internal/adapters/out/memory"
	"deliveryrates/internal/core/application/usecases/commands"
	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memoryUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f memoryUoWFactory) Create() commands.DeliveryEventUoW {
	return f.factory.Create()
}

func TestUpdateFirstDeliveryEventCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateFirstDeliveryEventCommand(1, 1, 1, 1, "Entrega", event.Pending, seenAt)

	repo := new(MockDeliveryEventRepository)
	uow := new(MockDeliveryEventUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryEventRepository").Return(repo).Once(),
		repo.On("Update", ctx, kernel.NewDeliveryKey(1, 1), mock.AnythingOfType("*event.DeliveryEvent")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryEventUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateFirstDeliveryEventCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateFirstDeliveryEventCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockDeliveryEventUoWFactory)
	h := commands.NewUpdateFirstDeliveryEventCommandHandler(factory)

	err := h.Handle(t.Context(), commands.UpdateFirstDeliveryEventCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateFirstDeliveryEventCommandIsNotConstructed)
}

func TestUpdateFirstDeliveryEventCommandHandler_WithMemoryStore(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	factory := memoryUoWFactory{factory: memory.NewUnitOfWorkFactory(store)}
	create := commands.NewCreateDeliveryEventCommandHandler(factory)
	update := commands.NewUpdateFirstDeliveryEventCommandHandler(factory)

	for _, status := range []event.Status{event.Pending, event.Delivered} {
		cmd, err := commands.NewCreateDeliveryEventCommand(1, 1, "Entrega", status, seenAt)
		require.NoError(t, err)
		require.NoError(t, create.Handle(ctx, cmd))
	}

	corrected := seenAt.Add(-3 * time.Minute)
	cmd, err := commands.NewUpdateFirstDeliveryEventCommand(1, 1, 1, 1, "Entrega corrigida", event.Pending, corrected)
	require.NoError(t, err)
	require.NoError(t, update.Handle(ctx, cmd))

	events, err := store.ListBy(ctx, kernel.NewDeliveryKey(1, 1))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Entrega corrigida", events[0].Kind())
	assert.True(t, events[0].Timestamp().Equal(corrected))
	assert.Equal(t, event.Delivered, events[1].Status())

	missing, _ := commands.NewUpdateFirstDeliveryEventCommand(5, 5, 5, 5, "Entrega", event.Pending, seenAt)
	require.ErrorIs(t, update.Handle(ctx, missing), errs.ErrObjectNotFound)
	assert.Equal(t, uint64(3), store.Version())
}
