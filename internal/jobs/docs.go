// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. StaleItemsSweepJob - Periodically finds pending items no merchant has
// claimed within the configured age and logs them for escalation.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(staleItemsHandler, schedule, staleAfter, logger)
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
// Schedules use six-field cron expressions (with a seconds field). The sweep
// defaults to once a minute; it only reads, so a missed run costs nothing.
//
// # Error Handling
//
// The sweep logs query failures and keeps running; it never mutates orders,
// so there is no partial work to undo.
package jobs
