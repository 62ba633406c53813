package queries

import (
	"errors"

	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/core/domain/model/rate"
	"deliveryrates/internal/core/domain/services"
	"deliveryrates/internal/pkg/guard"
)

var (
	ErrGetDeliveryRatesQueryIsNotConstructed = errors.New(
		"GetDeliveryRatesQuery must be created via NewGetDeliveryRatesQuery constructor",
	)
)

// GetDeliveryRatesQuery computes the rate of every recorded delivery under
// one validation policy.
//
// Example:
//
//	query, _ := NewGetDeliveryRatesQuery(services.Strict)
//	result, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrDeliveryGroupIsInvalid) {
//	    // a delivery does not have exactly PENDING then a terminal status
//	}
type GetDeliveryRatesQuery struct {
	calculator services.RateCalculator

	guard guard.ConstructorGuard
}

// NewGetDeliveryRatesQuery creates a rate query for policy.
func NewGetDeliveryRatesQuery(policy services.ValidationPolicy) (GetDeliveryRatesQuery, error) {
	calculator, err := services.NewRateCalculator(policy)
	if err != nil {
		return GetDeliveryRatesQuery{}, err
	}

	return GetDeliveryRatesQuery{
		calculator: calculator,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewGetDeliveryRatesQueryByName creates a rate query for the policy called
// name ("lenient" or "strict").
func NewGetDeliveryRatesQueryByName(name string) (GetDeliveryRatesQuery, error) {
	policy, err := services.PolicyByName(name)
	if err != nil {
		return GetDeliveryRatesQuery{}, err
	}
	return NewGetDeliveryRatesQuery(policy)
}

// Validate ensures the query was created through a constructor.
func (q GetDeliveryRatesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryRatesQueryIsNotConstructed)
}

// Policy returns the name of the policy the query applies, empty for a
// query not built by a constructor.
func (q GetDeliveryRatesQuery) Policy() string {
	if q.calculator.Policy() == nil {
		return ""
	}
	return q.calculator.Policy().Name()
}

// GetDeliveryRatesQueryResponse is the outcome of one rate run.
// Rates are ordered by first appearance of each delivery in the store.
type GetDeliveryRatesQueryResponse struct {
	RunID      kernel.RunID
	Policy     string
	EventCount int
	Rates      []*rate.DeliveryRate
}
