package jobs

import (
	"fmt"
	"log/slog"
	"strings"

	"deliveryrates/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	rateRecalculationJob *RateRecalculationJob
}

// NewJobManager creates a new job manager with all configured jobs.
// An empty recalculation schedule leaves the recalculation job out.
func NewJobManager(
	getRatesHandler RateRecalculationHandler,
	ratesQuery queries.GetDeliveryRatesQuery,
	recalcSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if strings.TrimSpace(recalcSchedule) != "" {
		jm.rateRecalculationJob = NewRateRecalculationJob(getRatesHandler, ratesQuery, recalcSchedule, logger)
	}
	return jm
}

// Enabled reports whether any job is configured.
func (jm *JobManager) Enabled() bool {
	return jm.rateRecalculationJob != nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.rateRecalculationJob == nil {
		return nil
	}

	if err := jm.rateRecalculationJob.Start(); err != nil {
		return fmt.Errorf("failed to start rate recalculation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.rateRecalculationJob != nil {
		jm.rateRecalculationJob.Stop()
	}
}
