package queries

import (
	"context"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/core/domain/model/pickup"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAvailableParcelsQueryHandler backs the pickup request creation form:
// it lists parcels free to join a new request.
type ListAvailableParcelsQueryHandler struct {
	db *gorm.DB
}

// NewListAvailableParcelsQueryHandler creates a handler for availability
// listings.
func NewListAvailableParcelsQueryHandler(db *gorm.DB) ListAvailableParcelsQueryHandler {
	return ListAvailableParcelsQueryHandler{db: db}
}

// Handle returns the merchant's pending parcels outside any open request.
func (h ListAvailableParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableParcelsQuery,
) ([]ListParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		FROM parcels p
		WHERE p.sender_id = ?
		  AND p.status = ?
		  AND NOT EXISTS (
			SELECT 1
			FROM pickup_request_parcels prp
			JOIN pickup_requests pr ON pr.id = prp.pickup_request_id
			WHERE prp.parcel_id = p.id
			  AND pr.status IN (?, ?)
		  )
		ORDER BY p.created_at DESC
	`,
		query.MerchantID().String(),
		parcel.StatusPending.String(),
		pickup.StatusPending.String(),
		pickup.StatusApproved.String(),
	).Rows()
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
