package services

import (
	"slices"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/core/domain/model/rate"
	"deliveryrates/internal/pkg/errs"
)

// RateCalculator is the rate engine. It partitions delivery events by
// (order, delivery), orders each partition by timestamp and delegates the
// per-delivery rules to its ValidationPolicy.
//
// Example usage:
//
//	calculator, _ := services.NewRateCalculator(services.Strict)
//	rates, err := calculator.Calculate(events)
//	if errors.Is(err, services.ErrDeliveryGroupIsInvalid) {
//	    // at least one delivery is malformed, nothing was computed
//	}
type RateCalculator struct {
	policy ValidationPolicy
}

// NewRateCalculator creates a calculator applying policy to every delivery.
func NewRateCalculator(policy ValidationPolicy) (RateCalculator, error) {
	if policy == nil {
		return RateCalculator{}, errs.NewValueIsRequiredError("policy")
	}
	return RateCalculator{policy: policy}, nil
}

// Policy returns the policy the calculator applies.
func (c RateCalculator) Policy() ValidationPolicy {
	return c.policy
}

// Calculate returns one rate per distinct delivery found in events.
//
// Rates come out in the order each delivery first appears in events. Events
// within a delivery are stable-sorted by timestamp, so events with equal
// timestamps keep their input order. The input slice is not modified.
//
// Returns:
//   - the rates, an empty slice for no events
//   - an error if an event was not properly constructed, or the first
//     policy error; no partial result is returned with an error
func (c RateCalculator) Calculate(events []*event.DeliveryEvent) ([]*rate.DeliveryRate, error) {
	if c.policy == nil {
		return nil, errs.NewValueIsRequiredError("policy")
	}

	keys, groups, err := c.group(events)
	if err != nil {
		return nil, err
	}

	rates := make([]*rate.DeliveryRate, 0, len(keys))
	for _, key := range keys {
		chronological := groups[key]
		slices.SortStableFunc(chronological, func(a, b *event.DeliveryEvent) int {
			return a.Timestamp().Compare(b.Timestamp())
		})

		r, rateErr := c.policy.Rate(key, chronological)
		if rateErr != nil {
			return nil, rateErr
		}
		rates = append(rates, r)
	}

	return rates, nil
}

// group partitions the accepted events into fresh slices keyed by delivery
// and returns the keys in first-seen order.
func (c RateCalculator) group(
	events []*event.DeliveryEvent,
) ([]kernel.DeliveryKey, map[kernel.DeliveryKey][]*event.DeliveryEvent, error) {
	keys := make([]kernel.DeliveryKey, 0)
	groups := make(map[kernel.DeliveryKey][]*event.DeliveryEvent)

	for _, ev := range events {
		if err := ev.Validate(); err != nil {
			return nil, nil, err
		}
		if !c.policy.Accepts(ev) {
			continue
		}

		key := ev.Key()
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], ev)
	}

	return keys, groups, nil
}
