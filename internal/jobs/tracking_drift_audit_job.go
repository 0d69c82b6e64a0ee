package jobs

import (
	"context"
	"log/slog"

	"fasttrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// TrackingDriftAuditJob periodically checks that every parcel's status matches
// the newest entry in its tracking history. The two are written in one
// transaction, so any mismatch means the data was touched outside the
// application and someone should look at it.
type TrackingDriftAuditJob struct {
	handler queries.GetTrackingDriftQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTrackingDriftAuditJob creates the audit job. It runs every five minutes.
func NewTrackingDriftAuditJob(handler queries.GetTrackingDriftQueryHandler, logger *slog.Logger) *TrackingDriftAuditJob {
	return &TrackingDriftAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "tracking_drift_audit_job"),
	}
}

// Start schedules the audit to run every five minutes.
func (j *TrackingDriftAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		drifted, err := j.handler.Handle(ctx, queries.NewGetTrackingDriftQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Tracking drift audit failed", "error", err)
			return
		}

		if len(drifted) == 0 {
			return
		}

		j.logger.WarnContext(ctx, "Tracking drift detected", "count", len(drifted))
		for _, row := range drifted {
			j.logger.WarnContext(ctx, "Parcel status disagrees with tracking history",
				"parcel_id", row.ParcelID.String(),
				"tracking_id", row.TrackingID,
				"parcel_status", row.ParcelStatus,
				"latest_status", row.LatestStatus,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking drift audit job started (running every five minutes)")
	return nil
}

// Stop stops the audit job.
func (j *TrackingDriftAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking drift audit job stopped")
}
