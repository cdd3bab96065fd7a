package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"dinebot/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cartEvictionJob *CartEvictionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(carts ports.CartStore, cartIdleFor time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		cartEvictionJob: NewCartEvictionJob(carts, cartIdleFor, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cartEvictionJob.Start(); err != nil {
		return fmt.Errorf("failed to start cart eviction job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cartEvictionJob.Stop()
}
