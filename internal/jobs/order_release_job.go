package jobs

import (
	"context"
	"log/slog"

	"foodorders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderReleaseJob manages the scheduled release of dormant orders.
// Runs every three seconds to hand due orders over to the dispatcher.
type OrderReleaseJob struct {
	handler *commands.ReleaseDueOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderReleaseJob creates a new job for releasing dormant orders.
// Uses ReleaseDueOrdersCommandHandler to sweep the order table every
// three seconds.
func NewOrderReleaseJob(handler *commands.ReleaseDueOrdersCommandHandler, logger *slog.Logger) *OrderReleaseJob {
	return &OrderReleaseJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_release_job"),
	}
}

// Start begins the order release job to run every three seconds.
func (j *OrderReleaseJob) Start() error {
	_, err := j.cron.AddFunc("*/3 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReleaseDueOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order release job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order release job started (running every 3 seconds)")
	return nil
}

// Stop stops the order release job.
func (j *OrderReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order release job stopped")
}
