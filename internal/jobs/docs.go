// Package jobs provides scheduled background tasks for the courier platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. TrackingDriftAuditJob - Periodically audits parcels whose stored status
// disagrees with the newest entry in their tracking history. Status changes
// and history entries are written in one transaction, so any drift points at
// data written outside the application.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(driftHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The audit job only reports; it never repairs rows. Drifted parcels are
// logged at warn level for an operator to investigate.
package jobs
