package queries

import (
	"context"
	"time"

	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/core/domain/model/rate"
	"deliveryrates/internal/core/ports"
)

// RateRecorder observes finished rate runs.
type RateRecorder interface {
	ObserveCalculation(policy string, elapsed time.Duration, rates []*rate.DeliveryRate, err error)
}

type nopRateRecorder struct{}

func (nopRateRecorder) ObserveCalculation(string, time.Duration, []*rate.DeliveryRate, error) {}

// GetDeliveryRatesQueryHandler runs the rate engine over one snapshot of the store.
type GetDeliveryRatesQueryHandler struct {
	reader   ports.DeliveryEventReader
	recorder RateRecorder
}

// NewGetDeliveryRatesQueryHandler creates a handler reading from reader.
// A nil recorder disables observation.
func NewGetDeliveryRatesQueryHandler(
	reader ports.DeliveryEventReader,
	recorder RateRecorder,
) GetDeliveryRatesQueryHandler {
	if recorder == nil {
		recorder = nopRateRecorder{}
	}
	return GetDeliveryRatesQueryHandler{reader: reader, recorder: recorder}
}

// Handle lists all events once and computes their rates. The RunID is set
// even when an error is returned so callers can correlate the failure.
func (h GetDeliveryRatesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryRatesQuery,
) (GetDeliveryRatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryRatesQueryResponse{}, err
	}

	response := GetDeliveryRatesQueryResponse{
		RunID:  kernel.NewRunID(),
		Policy: query.Policy(),
	}

	events, err := h.reader.List(ctx)
	if err != nil {
		return response, err
	}
	response.EventCount = len(events)

	started := time.Now()
	rates, err := query.calculator.Calculate(events)
	h.recorder.ObserveCalculation(response.Policy, time.Since(started), rates, err)
	if err != nil {
		return response, err
	}

	response.Rates = rates
	return response, nil
}
