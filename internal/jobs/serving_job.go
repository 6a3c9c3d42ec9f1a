package jobs

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ServingJob manages the scheduled serving of prepared orders.
// Runs every second to hand over every drink waiting at the counter.
type ServingJob struct {
	handler commands.ServePreparedOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewServingJob creates a new job for serving prepared orders.
// Uses ServePreparedOrdersCommandHandler to clear the counter every second.
func NewServingJob(handler commands.ServePreparedOrdersCommandHandler, logger *slog.Logger) *ServingJob {
	return &ServingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "serving_job"),
	}
}

// Start begins the serving job to run every second.
func (j *ServingJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewServePreparedOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Serving job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Serving job started (running every second)")
	return nil
}

// Stop stops the serving job.
func (j *ServingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Serving job stopped")
}
