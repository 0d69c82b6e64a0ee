package queries

import (
	"context"

	"fasttrack/internal/core/domain/model/courier"
	"fasttrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCouriersQueryHandler serves the admin courier listing.
type ListCouriersQueryHandler struct {
	db *gorm.DB
}

// NewListCouriersQueryHandler creates a handler for courier listings.
func NewListCouriersQueryHandler(db *gorm.DB) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{db: db}
}

// Handle executes the listing sorted by name.
func (h ListCouriersQueryHandler) Handle(
	ctx context.Context,
	query ListCouriersQuery,
) ([]ListCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			phone,
			vehicle_type,
			vehicle_number,
			coverage_area,
			status,
			created_at
		FROM couriers
	`
	args := make([]any, 0, 1)

	if query.ActiveOnly() {
		sql += " WHERE status = ?"
		args = append(args, courier.StatusActive.String())
	}
	sql += " ORDER BY name"

	couriers := make([]ListCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response ListCouriersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Phone,
			&response.VehicleType,
			&response.VehicleNumber,
			&response.CoverageArea,
			&response.Status,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		couriers = append(couriers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
