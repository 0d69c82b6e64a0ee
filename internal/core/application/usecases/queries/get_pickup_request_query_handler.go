package queries

import (
	"context"
	"database/sql"
	"errors"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPickupRequestQueryHandler serves the pickup request detail view.
type GetPickupRequestQueryHandler struct {
	db *gorm.DB
}

// NewGetPickupRequestQueryHandler creates a handler for request details.
func NewGetPickupRequestQueryHandler(db *gorm.DB) GetPickupRequestQueryHandler {
	return GetPickupRequestQueryHandler{db: db}
}

// Handle fetches the request and enforces ownership for merchants.
func (h GetPickupRequestQueryHandler) Handle(
	ctx context.Context,
	query GetPickupRequestQuery,
) (ListPickupRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListPickupRequestsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE pr.id = ?
	`, query.RequestID().String()).Row()

	response, err := scanPickupRequestRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ListPickupRequestsQueryResponse{}, errs.NewObjectNotFoundError("pickupRequestId", query.RequestID())
		}
		return ListPickupRequestsQueryResponse{}, err
	}

	if query.RequesterRole() != account.RoleAdmin && !response.MerchantID.IsEqual(query.RequesterID()) {
		return ListPickupRequestsQueryResponse{}, errs.NewForbiddenError(
			"pickup request is only visible to its merchant",
		)
	}

	return response, nil
}
