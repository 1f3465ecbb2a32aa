// Package jobs provides scheduled background tasks for the evaluation system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the evaluation service.
//
// # Available Jobs
//
// 1. PendingAwardsJob - Runs every minute and logs the number of awards still
// awaiting an evaluation decision
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(countPendingHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The pending awards job only reads state; any failure is logged and the next
// run retries from scratch.
package jobs
