// Package metrics collects Prometheus metrics about rate runs.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"deliveryrates/internal/core/domain/model/rate"
	"deliveryrates/internal/core/domain/services"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of delivery_rate_calculations_total.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// RateMetrics records the outcome of every rate run.
type RateMetrics struct {
	calculations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	rates        *prometheus.CounterVec
	minutes      *prometheus.HistogramVec
	lastGroups   *prometheus.GaugeVec
}

// NewRateMetrics registers the rate collectors on registerer, or on the
// default registerer when nil. Collectors already registered under the same
// name are reused.
func NewRateMetrics(registerer prometheus.Registerer) *RateMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &RateMetrics{
		calculations: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "delivery_rate_calculations_total",
			Help: "Total number of rate runs by policy and outcome",
		}, []string{"policy", "outcome"})),
		duration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "delivery_rate_calculation_duration_seconds",
			Help:    "Duration of rate runs in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"policy"})),
		rates: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "delivery_rates_total",
			Help: "Total number of delivery rates computed by policy and final status",
		}, []string{"policy", "final_status"})),
		minutes: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "delivery_rate_minutes",
			Help:    "Billable minutes per delivery",
			Buckets: []float64{0, 5, 10, 15, 30, 45, 60, 90, 120, 240},
		}, []string{"policy"})),
		lastGroups: register(registerer, prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "delivery_rate_last_groups",
			Help: "Number of deliveries rated by the last successful run",
		}, []string{"policy"})),
	}
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) C {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector %T already registered with unexpected type", collector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector %T: %v", collector, err))
	}
	return collector
}

// ObserveCalculation records one rate run. Rates are only counted for
// successful runs.
func (m *RateMetrics) ObserveCalculation(
	policy string,
	elapsed time.Duration,
	rates []*rate.DeliveryRate,
	err error,
) {
	m.duration.WithLabelValues(policy).Observe(elapsed.Seconds())
	m.calculations.WithLabelValues(policy, outcome(err)).Inc()
	if err != nil {
		return
	}

	for _, r := range rates {
		m.rates.WithLabelValues(policy, r.FinalStatus().String()).Inc()
		m.minutes.WithLabelValues(policy).Observe(r.Minutes())
	}
	m.lastGroups.WithLabelValues(policy).Set(float64(len(rates)))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, services.ErrDeliveryGroupIsInvalid):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
