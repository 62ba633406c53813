package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"deliveryrates/internal/adapters/in/cli"
	"deliveryrates/internal/adapters/out/memory"
	"deliveryrates/internal/adapters/out/metrics"
	"deliveryrates/internal/core/application/usecases/commands"
	"deliveryrates/internal/core/application/usecases/queries"
	"deliveryrates/internal/core/ports"
	"deliveryrates/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
)

type CompositionRoot struct {
	config      Config
	logger      *slog.Logger
	store       *memory.Store
	uowFactory  ports.UnitOfWorkFactory
	rateMetrics *metrics.RateMetrics
}

func NewCompositionRoot(config Config, logger *slog.Logger, registerer prometheus.Registerer) CompositionRoot {
	store := memory.NewStore()
	return CompositionRoot{
		config:      config,
		logger:      logger,
		store:       store,
		uowFactory:  memory.NewUnitOfWorkFactory(store),
		rateMetrics: metrics.NewRateMetrics(registerer),
	}
}

func (c *CompositionRoot) CreateCreateDeliveryEventCommandHandler() commands.CreateDeliveryEventCommandHandler {
	var f commands.DeliveryEventUoWFactory = FuncDeliveryEventUoWFactory(func() commands.DeliveryEventUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryEventCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateFirstDeliveryEventCommandHandler() commands.UpdateFirstDeliveryEventCommandHandler {
	var f commands.DeliveryEventUoWFactory = FuncDeliveryEventUoWFactory(func() commands.DeliveryEventUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateFirstDeliveryEventCommandHandler(f)
}

func (c *CompositionRoot) CreateListDeliveryEventsQueryHandler() queries.ListDeliveryEventsQueryHandler {
	return queries.NewListDeliveryEventsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetDeliveryRatesQueryHandler() queries.GetDeliveryRatesQueryHandler {
	return queries.NewGetDeliveryRatesQueryHandler(c.store, c.rateMetrics)
}

// CreateGetDeliveryRatesQuery builds the rate query for the configured policy.
func (c *CompositionRoot) CreateGetDeliveryRatesQuery() (queries.GetDeliveryRatesQuery, error) {
	return queries.NewGetDeliveryRatesQueryByName(c.config.RatePolicy)
}

func (c *CompositionRoot) CreateReporter() *cli.Reporter {
	return cli.NewReporter(c.CreateListDeliveryEventsQueryHandler(), c.CreateGetDeliveryRatesQueryHandler())
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	query, err := c.CreateGetDeliveryRatesQuery()
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(c.CreateGetDeliveryRatesQueryHandler(), query, c.config.RecalcSchedule, c.logger), nil
}

// Seed records events through the create command, one unit of work each.
func (c *CompositionRoot) Seed(ctx context.Context, events []SeedEvent) error {
	handler := c.CreateCreateDeliveryEventCommandHandler()
	for i, ev := range events {
		cmd, err := ev.Command()
		if err != nil {
			return fmt.Errorf("seed event %d: %w", i, err)
		}
		if err = handler.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed event %d: %w", i, err)
		}
	}

	c.logger.InfoContext(ctx, "Store seeded", "events", len(events), "version", c.store.Version())
	return nil
}

type FuncDeliveryEventUoWFactory func() commands.DeliveryEventUoW

func (f FuncDeliveryEventUoWFactory) Create() commands.DeliveryEventUoW {
	return f()
}
