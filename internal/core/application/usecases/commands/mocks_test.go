package commands_test

import (
	"context"

	"deliveryrates/internal/core/application/usecases/commands"
	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryEventRepository struct{ mock.Mock }

func (m *MockDeliveryEventRepository) Save(ctx context.Context, ev *event.DeliveryEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockDeliveryEventRepository) Update(
	ctx context.Context,
	key kernel.DeliveryKey,
	replacement *event.DeliveryEvent,
) error {
	args := m.Called(ctx, key, replacement)
	return args.Error(0)
}

func (m *MockDeliveryEventRepository) List(ctx context.Context) ([]*event.DeliveryEvent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*event.DeliveryEvent), args.Error(1)
}

func (m *MockDeliveryEventRepository) ListBy(ctx context.Context, key kernel.DeliveryKey) ([]*event.DeliveryEvent, error) {
	args := m.Called(ctx, key)
	return args.Get(0).([]*event.DeliveryEvent), args.Error(1)
}

type MockDeliveryEventUoW struct{ mock.Mock }

func (m *MockDeliveryEventUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryEventUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryEventUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryEventUoW) DeliveryEventRepository() ports.DeliveryEventRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryEventRepository)
}

type MockDeliveryEventUoWFactory struct{ mock.Mock }

func (m *MockDeliveryEventUoWFactory) Create() commands.DeliveryEventUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryEventUoW)
}
