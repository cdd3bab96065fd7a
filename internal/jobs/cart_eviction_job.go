package jobs

import (
	"context"
	"log/slog"
	"time"

	"dinebot/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// CartEvictionJob manages the scheduled cleanup of abandoned carts.
// Runs every minute to drop carts whose sessions have been idle longer than
// the configured threshold, keeping the cart store from growing without
// bound when conversations are simply abandoned.
type CartEvictionJob struct {
	carts   ports.CartStore
	idleFor time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCartEvictionJob creates a new job for evicting idle carts.
// idleFor is how long a session must stay untouched before its cart is
// removed.
func NewCartEvictionJob(carts ports.CartStore, idleFor time.Duration, logger *slog.Logger) *CartEvictionJob {
	return &CartEvictionJob{
		carts:   carts,
		idleFor: idleFor,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cart_eviction_job"),
	}
}

// Start begins the cart eviction job to run at the top of every minute.
func (j *CartEvictionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if evicted := j.carts.EvictIdle(j.idleFor); evicted > 0 {
			j.logger.InfoContext(ctx, "Evicted idle carts", "count", evicted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart eviction job started (running every minute)",
		"idle_for", j.idleFor)
	return nil
}

// Stop stops the cart eviction job.
func (j *CartEvictionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart eviction job stopped")
}
