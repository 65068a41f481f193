package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOrderMetricsSchedule refreshes the gauge every 30 seconds.
const DefaultOrderMetricsSchedule = "*/30 * * * * *"

type statusCountsHandler interface {
	Handle(
		ctx context.Context,
		query queries.GetOrderStatusCountsQuery,
	) ([]queries.GetOrderStatusCountsQueryResponse, error)
}

type statusCountRecorder interface {
	SetStatusCount(status string, count int64)
}

// OrderStatusMetricsJob keeps the orders-by-status gauge in line with the database.
type OrderStatusMetricsJob struct {
	handler  statusCountsHandler
	recorder statusCountRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatusMetricsJob creates the job. An empty schedule means DefaultOrderMetricsSchedule.
func NewOrderStatusMetricsJob(
	handler statusCountsHandler,
	recorder statusCountRecorder,
	schedule string,
	logger *slog.Logger,
) *OrderStatusMetricsJob {
	if schedule == "" {
		schedule = DefaultOrderMetricsSchedule
	}
	return &OrderStatusMetricsJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_status_metrics_job"),
	}
}

// Refresh runs the status count query once and records the result.
func (j *OrderStatusMetricsJob) Refresh(ctx context.Context) error {
	counts, err := j.handler.Handle(ctx, queries.NewGetOrderStatusCountsQuery())
	if err != nil {
		return err
	}

	for _, c := range counts {
		j.recorder.SetStatusCount(c.Status.String(), c.Count)
	}
	return nil
}

// Start schedules Refresh on the configured schedule.
func (j *OrderStatusMetricsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order status metrics job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status metrics job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job and waits for a running refresh to finish.
func (j *OrderStatusMetricsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order status metrics job stopped")
}
