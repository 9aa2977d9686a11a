package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"constructmart/internal/core/application/usecases/queries"
)

// StaleItemsSweepJob periodically looks for pending items no merchant has
// claimed within the configured age and logs them for escalation. The sweep
// never mutates orders; unassigned items stay claimable indefinitely.
type StaleItemsSweepJob struct {
	handler   queries.GetStaleItemsQueryHandler
	schedule  string
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleItemsSweepJob creates the sweep with a cron schedule (with seconds
// field) and the age after which an unclaimed item counts as stale.
func NewStaleItemsSweepJob(
	handler queries.GetStaleItemsQueryHandler,
	schedule string,
	olderThan time.Duration,
	logger *slog.Logger,
) *StaleItemsSweepJob {
	return &StaleItemsSweepJob{
		handler:   handler,
		schedule:  schedule,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_items_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *StaleItemsSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale items sweep started",
		"schedule", j.schedule, "older_than", j.olderThan.String())
	return nil
}

// Stop stops the sweep.
func (j *StaleItemsSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale items sweep stopped")
}

func (j *StaleItemsSweepJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetStaleItemsQuery(j.olderThan)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale items sweep misconfigured", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale items sweep failed", "error", err)
		return
	}

	for _, item := range stale {
		j.logger.WarnContext(ctx, "Order item unclaimed past threshold",
			"item_id", item.ItemID,
			"order_id", item.OrderID,
			"order_number", item.OrderNumber,
			"product_name", item.ProductName,
			"city", item.City,
			"order_age", time.Since(item.OrderCreatedAt).Round(time.Second).String(),
		)
	}
}
