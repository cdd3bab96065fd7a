// Package jobs provides scheduled background tasks for the ordering backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the webhook flow itself cannot do.
//
// # Available Jobs
//
// 1. CartEvictionJob - Runs every minute to drop carts whose sessions have gone idle
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the cart store and idle threshold
//	jobManager := jobs.NewJobManager(cartStore, cartTTL, logger)
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
// The eviction job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Conversations are minutes long, so a finer sweep would buy
// nothing.
//
// # Error Handling
//
// Eviction cannot fail in a way the job could act on; the job only reports
// how many carts each sweep removed.
package jobs
