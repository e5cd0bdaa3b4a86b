// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. OrderReleaseJob - Runs every three seconds to release dormant orders
// whose scheduled time has arrived (or that are waiting for processing
// capacity) into the delivery pipeline.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseDueOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The release job uses the cron expression "*/3 * * * * *" which means it
// runs every three seconds. This keeps scheduled orders from waiting
// noticeably past their release time while avoiding a constant scan load
// on the order table.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick. Orders that
// cannot be admitted because the pipeline is at capacity are left dormant
// and picked up by a later sweep.
package jobs
