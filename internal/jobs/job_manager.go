package jobs

import (
	"fmt"
	"log/slog"

	"coffeeshop/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	brewingJob *BrewingJob
	servingJob *ServingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	brewNextOrderHandler commands.BrewNextOrderCommandHandler,
	servePreparedOrdersHandler commands.ServePreparedOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		brewingJob: NewBrewingJob(brewNextOrderHandler, logger),
		servingJob: NewServingJob(servePreparedOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.brewingJob.Start(); err != nil {
		return fmt.Errorf("failed to start brewing job: %w", err)
	}

	if err := jm.servingJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.brewingJob.Stop()
		return fmt.Errorf("failed to start serving job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.servingJob.Stop()
	jm.brewingJob.Stop()
}
