// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderStatusMetricsJob - Periodically counts stored orders per status and
// publishes the counts to the orders-by-status prometheus gauge
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statusCountsHandler, orderMetrics, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with seconds. An empty schedule falls
// back to DefaultOrderMetricsSchedule (every 30 seconds).
//
// # Error Handling
//
// A failed run is logged and the previous gauge values are kept until the next run.
// An invalid schedule is reported by StartAll.
package jobs
