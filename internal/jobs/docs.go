// Package jobs provides scheduled background tasks for the rail allocation system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to advance orders along the transit lifecycle.
//
// # Available Jobs
//
// 1. TransitDepartureJob - Runs every minute to move placed orders into transit once their trip has departed
// 2. TransitArrivalJob - Runs every minute to mark in-transit orders delivered once their trip has arrived
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceDepartedHandler, advanceArrivedHandler, logger)
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
// Both jobs use the standard five-field cron expression "* * * * *" and run
// every minute. Trip departure and arrival times are minute-grained, so a
// tighter sweep would only rescan the same rows.
//
// # Error Handling
//
// A sweep that finds no eligible orders is a normal outcome and is not logged.
// Handler failures are logged and retried on the next tick; a failed job start
// stops any already running jobs.
package jobs
