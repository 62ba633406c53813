package metrics

import (
	"errors"
	"testing"
	"time"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/core/domain/model/rate"
	"deliveryrates/internal/core/domain/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRate(t *testing.T, deliveryID int64, status event.Status, minutes float64) *rate.DeliveryRate {
	t.Helper()

	r, err := rate.NewDeliveryRate(kernel.NewDeliveryKey(1, deliveryID), status, minutes)
	require.NoError(t, err)
	return r
}

func TestRateMetrics_ObserveCalculation_Success(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewRateMetrics(registry)

	m.ObserveCalculation("lenient", 2*time.Millisecond, []*rate.DeliveryRate{
		newRate(t, 1, event.Delivered, 12),
		newRate(t, 2, event.Cancelled, 4),
		newRate(t, 3, event.Delivered, 0),
	}, nil)

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues("lenient", OutcomeSuccess)), 1e-9)
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.rates.WithLabelValues("lenient", "DELIVERED")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.rates.WithLabelValues("lenient", "CANCELLED")), 1e-9)
	assert.InDelta(t, 3.0, testutil.ToFloat64(m.lastGroups.WithLabelValues("lenient")), 1e-9)
	assert.Equal(t, 2, gatherCount(t, registry, "delivery_rates_total"))
	assert.Equal(t, 1, gatherCount(t, registry, "delivery_rate_minutes"))
}

func TestRateMetrics_ObserveCalculation_Failures(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewRateMetrics(registry)

	invalid := &services.DeliveryGroupError{Key: kernel.NewDeliveryKey(1, 1), Count: 1, Position: -1}
	m.ObserveCalculation("strict", time.Millisecond, nil, invalid)
	m.ObserveCalculation("strict", time.Millisecond, nil, errors.New("boom"))

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues("strict", OutcomeInvalid)), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues("strict", OutcomeError)), 1e-9)
	assert.Equal(t, 0, gatherCount(t, registry, "delivery_rates_total"))
	assert.Equal(t, 0, gatherCount(t, registry, "delivery_rate_last_groups"))
}

func TestNewRateMetrics_ReusesRegisteredCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := NewRateMetrics(registry)
	second := NewRateMetrics(registry)

	first.ObserveCalculation("lenient", time.Millisecond, nil, nil)
	second.ObserveCalculation("lenient", time.Millisecond, nil, nil)

	assert.InDelta(t, 2.0, testutil.ToFloat64(second.calculations.WithLabelValues("lenient", OutcomeSuccess)), 1e-9)
}

func gatherCount(t *testing.T, registry *prometheus.Registry, name string) int {
	t.Helper()

	count, err := testutil.GatherAndCount(registry, name)
	require.NoError(t, err)
	return count
}
