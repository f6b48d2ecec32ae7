// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic batch operations of the marketplace backend.
//
// # Available Jobs
//
// 1. ReplicationSyncJob - copies orders and clients into the secondary
// document store; inserts are idempotent so reruns are safe
// 2. CompanyStatsJob - recomputes each company's derived counters
// (deliveries, failed deliveries, total sales) from completed orders
// 3. DealerRouteJob - recomputes each dealer's most-frequent route from
// the estimated routes of their completed orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(syncHandler, statsHandler, routesHandler, schedules, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Each job takes a six-field cron expression (seconds included) so the
// schedules can be tuned per deployment. The batches only overwrite derived
// fields or perform idempotent inserts, so they may run concurrently with
// live dispatch traffic.
//
// # Error Handling
//
// - All jobs log failures and keep their schedule; a failed run is retried
// on the next tick
// - Failed job starts will stop any already running jobs
package jobs
