package queries_test

import (
	"context"
	"time"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/core/domain/model/rate"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryEventReader struct{ mock.Mock }

func (m *MockDeliveryEventReader) List(ctx context.Context) ([]*event.DeliveryEvent, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]*event.DeliveryEvent)
	return events, args.Error(1)
}

func (m *MockDeliveryEventReader) ListBy(ctx context.Context, key kernel.DeliveryKey) ([]*event.DeliveryEvent, error) {
	args := m.Called(ctx, key)
	events, _ := args.Get(0).([]*event.DeliveryEvent)
	return events, args.Error(1)
}

type MockRateRecorder struct{ mock.Mock }

func (m *MockRateRecorder) ObserveCalculation(policy string, elapsed time.Duration, rates []*rate.DeliveryRate, err error) {
	m.Called(policy, elapsed, rates, err)
}
