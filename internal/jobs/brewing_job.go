package jobs

import (
	"context"
	"errors"
	"log/slog"

	"coffeeshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BrewingJob manages the scheduled brewing of queued orders.
// Runs every second to take the next order off the queue and prepare it.
type BrewingJob struct {
	handler commands.BrewNextOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBrewingJob creates a new job for brewing queued orders.
// Uses BrewNextOrderCommandHandler to process one order per tick.
func NewBrewingJob(handler commands.BrewNextOrderCommandHandler, logger *slog.Logger) *BrewingJob {
	return &BrewingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "brewing_job"),
	}
}

// Start begins the brewing job to run every second.
func (j *BrewingJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewBrewNextOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue is an expected business scenario
			if !errors.Is(err, commands.ErrNoOrderFound) {
				j.logger.ErrorContext(ctx, "Brewing job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Brewing job started (running every second)")
	return nil
}

// Stop stops the brewing job.
func (j *BrewingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Brewing job stopped")
}
