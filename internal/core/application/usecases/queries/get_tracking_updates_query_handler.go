package queries

import (
	"context"
	"database/sql"
	"errors"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingUpdatesQueryHandler serves parcel history listings.
type GetTrackingUpdatesQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingUpdatesQueryHandler creates a handler for history queries.
func NewGetTrackingUpdatesQueryHandler(db *gorm.DB) GetTrackingUpdatesQueryHandler {
	return GetTrackingUpdatesQueryHandler{db: db}
}

// Handle checks ownership, then returns the history oldest entry first.
func (h GetTrackingUpdatesQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingUpdatesQuery,
) ([]GetTrackingUpdatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var senderID uuid.UUID
	row := h.db.WithContext(ctx).Raw(
		`SELECT sender_id FROM parcels WHERE id = ?`,
		query.ParcelID().String(),
	).Row()
	if err := row.Scan(&senderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("parcelId", query.ParcelID())
		}
		return nil, err
	}

	if query.RequesterRole() != account.RoleAdmin {
		owner, err := kernel.UUIDFromBytes(senderID[:])
		if err != nil {
			return nil, err
		}
		if !owner.IsEqual(query.RequesterID()) {
			return nil, errs.NewForbiddenError("parcel history is only visible to its sender")
		}
	}

	updates := make([]GetTrackingUpdatesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			location,
			notes,
			created_at
		FROM tracking_updates
		WHERE parcel_id = ?
		ORDER BY seq
	`, query.ParcelID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetTrackingUpdatesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Status,
			&response.Location,
			&response.Notes,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		updates = append(updates, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return updates, nil
}
