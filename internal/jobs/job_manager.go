package jobs

import (
	"fmt"
	"log/slog"

	"fasttrack/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	trackingDriftAuditJob *TrackingDriftAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	driftHandler queries.GetTrackingDriftQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		trackingDriftAuditJob: NewTrackingDriftAuditJob(driftHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.trackingDriftAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start tracking drift audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingDriftAuditJob.Stop()
}
