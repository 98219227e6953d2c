package jobs

import (
	"context"
	"log/slog"
	"time"

	"fishmarket/internal/core/application/usecases/queries"
	"fishmarket/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob watches the pending backlog. An order stuck in pending means
// no one has confirmed it; past the threshold that is an operational problem,
// so the job logs each stale order for the team's alerting to pick up.
type StaleOrderJob struct {
	handler   queries.GetAllOrdersQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderJob creates the backlog watcher. threshold is how long an
// order may sit in pending before it is reported.
func NewStaleOrderJob(
	handler queries.GetAllOrdersQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_order_job"),
	}
}

// Start begins the job, scanning the pending backlog every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		j.scan(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}

func (j *StaleOrderJob) scan(ctx context.Context) {
	query, err := queries.NewGetAllOrdersQuery(order.Pending.String())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order job failed to build query", "error", err)
		return
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order job failed", "error", err)
		return
	}

	cutoff := time.Now().UTC().Add(-j.threshold)
	stale := 0
	for _, o := range orders {
		if o.CreatedAt.Before(cutoff) {
			stale++
			j.logger.WarnContext(ctx, "Order pending past threshold",
				"order_id", o.ID.String(),
				"created_at", o.CreatedAt,
				"age", time.Since(o.CreatedAt).Round(time.Second).String(),
			)
		}
	}

	if stale > 0 {
		j.logger.WarnContext(ctx, "Pending backlog contains stale orders",
			"stale", stale, "pending_total", len(orders))
	}
}
