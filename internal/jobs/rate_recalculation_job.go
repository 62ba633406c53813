package jobs

import (
	"context"
	"errors"
	"log/slog"

	"deliveryrates/internal/core/application/usecases/queries"
	"deliveryrates/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// RateRecalculationHandler computes the rates of one run.
type RateRecalculationHandler interface {
	Handle(ctx context.Context, query queries.GetDeliveryRatesQuery) (queries.GetDeliveryRatesQueryResponse, error)
}

// RateRecalculationJob recomputes the delivery rates on a cron schedule and
// logs a summary of every run.
type RateRecalculationJob struct {
	handler  RateRecalculationHandler
	query    queries.GetDeliveryRatesQuery
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRateRecalculationJob creates a job running query with handler.
// The schedule is a six-field cron expression, seconds first.
func NewRateRecalculationJob(
	handler RateRecalculationHandler,
	query queries.GetDeliveryRatesQuery,
	schedule string,
	logger *slog.Logger,
) *RateRecalculationJob {
	return &RateRecalculationJob{
		handler:  handler,
		query:    query,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "rate_recalculation_job", "policy", query.Policy()),
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *RateRecalculationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rate recalculation job started", "schedule", j.schedule)
	return nil
}

// Run executes one recalculation. Invalid deliveries rejected by the strict
// policy are logged as warnings, any other failure as an error.
func (j *RateRecalculationJob) Run(ctx context.Context) {
	result, err := j.handler.Handle(ctx, j.query)
	logger := j.logger.With("run_id", result.RunID.String(), "events", result.EventCount)

	switch {
	case errors.Is(err, services.ErrDeliveryGroupIsInvalid):
		logger.WarnContext(ctx, "Rate recalculation rejected the batch", "error", err)
	case err != nil:
		logger.ErrorContext(ctx, "Rate recalculation job failed", "error", err)
	default:
		logger.InfoContext(ctx, "Rates recalculated", "deliveries", len(result.Rates))
	}
}

// Stop stops the scheduler and waits for a running recalculation to finish.
func (j *RateRecalculationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rate recalculation job stopped")
}
