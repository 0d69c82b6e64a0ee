package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelQueryHandler serves the parcel detail view.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for parcel detail reads.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle fetches the parcel, enforcing merchant ownership.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (ListParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListParcelsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.ParcelID().String()).Row()

	var response ListParcelsQueryResponse
	var id, senderID uuid.UUID

	err := row.Scan(
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
		if errors.Is(err, sql.ErrNoRows) {
			return ListParcelsQueryResponse{}, errs.NewObjectNotFoundError("parcel", query.ParcelID().String())
		}
		return ListParcelsQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ListParcelsQueryResponse{}, err
	}
	if response.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
		return ListParcelsQueryResponse{}, err
	}

	if query.RequesterRole() != account.RoleAdmin && !response.SenderID.IsEqual(query.RequesterID()) {
		return ListParcelsQueryResponse{}, errs.NewForbiddenError(
			fmt.Sprintf("parcel %s does not belong to user %s", query.ParcelID(), query.RequesterID()),
		)
	}

	return response, nil
}
