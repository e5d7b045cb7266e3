// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the dispatch service.
//
// # Available Jobs
//
// AssignmentJob runs dispatch passes on a configurable schedule, matching
// every pending order against the active partners with free capacity.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(runAssignmentHandler, "*/30 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The assignment job ignores the expected empty-backlog and no-partner
// outcomes; every other error is logged. A run that fails leaves its orders
// pending, so the next tick retries them.
package jobs
