// Package jobs provides scheduled background tasks for the coffee shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. BrewingJob - Runs every second to take the next queued order and prepare it
// 2. ServingJob - Runs every second to hand over every prepared drink at the counter
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(brewNextOrderHandler, servePreparedOrdersHandler, logger)
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
// Both jobs use the cron expression "* * * * * *" which means they run every second.
// This frequency keeps the queue and the counter moving without manual barista input.
//
// # Error Handling
//
// - Brewing job ignores the expected empty queue error
// - Serving job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
