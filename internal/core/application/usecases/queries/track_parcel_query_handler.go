package queries

import (
	"context"
	"database/sql"
	"errors"

	"fasttrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackParcelQueryHandler serves the public tracking endpoint with direct
// SQL for optimal read performance.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for public tracking lookups.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the lookup. Unknown tracking IDs yield ObjectNotFound.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	var response TrackParcelQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			status,
			recipient_name,
			created_at,
			updated_at
		FROM parcels
		WHERE tracking_id = ?
	`, query.TrackingID().String()).Row()

	err := row.Scan(
		&response.TrackingID,
		&response.Status,
		&response.RecipientName,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError("trackingId", query.TrackingID())
		}
		return TrackParcelQueryResponse{}, err
	}

	return response, nil
}
