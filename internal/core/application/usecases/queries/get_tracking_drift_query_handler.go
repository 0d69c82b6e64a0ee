package queries

import (
	"context"

	"fasttrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingDriftQueryHandler runs the consistency audit between parcels
// and their tracking history.
type GetTrackingDriftQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingDriftQueryHandler creates a handler for the drift audit.
func NewGetTrackingDriftQueryHandler(db *gorm.DB) GetTrackingDriftQueryHandler {
	return GetTrackingDriftQueryHandler{db: db}
}

// Handle returns every parcel whose status differs from its newest tracking
// entry. Parcels without history count as drifted: creation always writes
// the initial entry.
func (h GetTrackingDriftQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingDriftQuery,
) ([]GetTrackingDriftQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drifted := make([]GetTrackingDriftQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_id,
			p.status,
			COALESCE(latest.status, '') AS latest_status
		FROM parcels p
		LEFT JOIN LATERAL (
			SELECT status
			FROM tracking_updates
			WHERE parcel_id = p.id
			ORDER BY seq DESC
			LIMIT 1
		) latest ON true
		WHERE latest.status IS DISTINCT FROM p.status
		ORDER BY p.created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetTrackingDriftQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.TrackingID,
			&response.ParcelStatus,
			&response.LatestStatus,
		)
		if err != nil {
			return nil, err
		}

		if response.ParcelID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		drifted = append(drifted, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drifted, nil
}
