package queries

import (
	"context"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/pickup"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPickupRequestsQueryHandler serves pickup request listings, including
// the admin approval inbox.
type ListPickupRequestsQueryHandler struct {
	db *gorm.DB
}

// NewListPickupRequestsQueryHandler creates a handler for request listings.
func NewListPickupRequestsQueryHandler(db *gorm.DB) ListPickupRequestsQueryHandler {
	return ListPickupRequestsQueryHandler{db: db}
}

// Handle executes the listing, newest requests first.
func (h ListPickupRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListPickupRequestsQuery,
) ([]ListPickupRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			pr.id,
			pr.merchant_id,
			pr.pickup_address,
			pr.pickup_date,
			pr.time_slot,
			pr.special_instructions,
			pr.status,
			pr.courier_id,
			pr.admin_notes,
			(SELECT COUNT(*) FROM pickup_request_parcels prp WHERE prp.pickup_request_id = pr.id) AS package_count,
			pr.created_at,
			pr.updated_at
		FROM pickup_requests pr
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.RequesterRole() != account.RoleAdmin {
		sql += " AND pr.merchant_id = ?"
		args = append(args, query.RequesterID().String())
	}
	if query.PendingOnly() {
		sql += " AND pr.status = ?"
		args = append(args, pickup.StatusPending.String())
	}
	sql += " ORDER BY pr.created_at DESC"

	requests := make([]ListPickupRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		response, scanErr := scanPickupRequestRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		requests = append(requests, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// scanPickupRequestRow maps one pickup request row, shared with the detail
// query which selects the identical column list.
func scanPickupRequestRow(scan func(dest ...any) error) (ListPickupRequestsQueryResponse, error) {
	var response ListPickupRequestsQueryResponse
	var id, merchantID uuid.UUID
	var courierID uuid.NullUUID

	err := scan(
		&id,
		&merchantID,
		&response.PickupAddress,
		&response.PickupDate,
		&response.TimeSlot,
		&response.SpecialInstructions,
		&response.Status,
		&courierID,
		&response.AdminNotes,
		&response.PackageCount,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		return ListPickupRequestsQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ListPickupRequestsQueryResponse{}, err
	}
	if response.MerchantID, err = kernel.UUIDFromBytes(merchantID[:]); err != nil {
		return ListPickupRequestsQueryResponse{}, err
	}
	if courierID.Valid {
		assigned, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if idErr != nil {
			return ListPickupRequestsQueryResponse{}, idErr
		}
		response.CourierID = &assigned
	}

	return response, nil
}
