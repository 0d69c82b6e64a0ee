package queries

import (
	"context"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListParcelsQueryHandler serves the parcel dashboard listing.
type ListParcelsQueryHandler struct {
	db *gorm.DB
}

// NewListParcelsQueryHandler creates a handler for parcel listings.
func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

// Handle executes the listing, newest parcels first.
func (h ListParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListParcelsQuery,
) ([]ListParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			tracking_id,
			sender_id,
			recipient_name,
			recipient_phone,
			delivery_address,
			package_description,
			weight_kg,
			dimensions,
			status,
			status_notes,
			created_at,
			updated_at
		FROM parcels
		WHERE 1=1
	`
	args := make([]any, 0, 4)

	if query.RequesterRole() != account.RoleAdmin {
		sql += " AND sender_id = ?"
		args = append(args, query.RequesterID().String())
	}
	if query.StatusFilter() != "" {
		sql += " AND status = ?"
		args = append(args, query.StatusFilter())
	}
	if query.Search() != "" {
		sql += " AND (tracking_id ILIKE ? OR recipient_name ILIKE ?)"
		pattern := "%" + query.Search() + "%"
		args = append(args, pattern, pattern)
	}
	sql += " ORDER BY created_at DESC"

	parcels := make([]ListParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
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
