package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderStatusMetricsJob *OrderStatusMetricsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statusCounts statusCountsHandler,
	recorder statusCountRecorder,
	orderMetricsSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderStatusMetricsJob: NewOrderStatusMetricsJob(statusCounts, recorder, orderMetricsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatusMetricsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order status metrics job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatusMetricsJob.Stop()
}
