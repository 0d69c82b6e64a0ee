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

// GetPickupRequestParcelsQueryHandler lists the parcels linked to a request,
// in attachment order.
type GetPickupRequestParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetPickupRequestParcelsQueryHandler creates a handler for attached
// parcel listings.
func NewGetPickupRequestParcelsQueryHandler(db *gorm.DB) GetPickupRequestParcelsQueryHandler {
	return GetPickupRequestParcelsQueryHandler{db: db}
}

// Handle checks ownership, then returns the linked parcels.
func (h GetPickupRequestParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetPickupRequestParcelsQuery,
) ([]ListParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var merchantID uuid.UUID
	row := h.db.WithContext(ctx).Raw(
		`SELECT merchant_id FROM pickup_requests WHERE id = ?`,
		query.RequestID().String(),
	).Row()
	if err := row.Scan(&merchantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("pickupRequestId", query.RequestID())
		}
		return nil, err
	}

	if query.RequesterRole() != account.RoleAdmin {
		owner, err := kernel.UUIDFromBytes(merchantID[:])
		if err != nil {
			return nil, err
		}
		if !owner.IsEqual(query.RequesterID()) {
			return nil, errs.NewForbiddenError("pickup request is only visible to its merchant")
		}
	}

	parcels := make([]ListParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_id,
			p.sender_id,
			p.recipient_name,
			p.recipient_phone,
			p.delivery_address,
			p.package_description,
			p.weight_kg,
			p.dimensions,
			p.status,
			p.status_notes,
			p.created_at,
			p.updated_at
		FROM pickup_request_parcels prp
		JOIN parcels p ON p.id = prp.parcel_id
		WHERE prp.pickup_request_id = ?
		ORDER BY prp.position
	`, query.RequestID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response ListParcelsQueryResponse
		var id, senderID uuid.UUID

		err = rows.Scan(
			&id,
			&response.TrackingID,
			&senderID,
			&response.RecipientName,
			&response.RecipientPhone,
			&response.DeliveryAddress,
			&response.PackageDescription,
			&response.WeightKg,
			&response.Dimensions,
			&response.Status,
			&response.StatusNotes,
			&response.CreatedAt,
			&response.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
			return nil, err
		}

		parcels = append(parcels, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
