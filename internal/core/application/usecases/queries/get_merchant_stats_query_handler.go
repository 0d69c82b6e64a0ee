package queries

import (
	"context"

	"fasttrack/internal/core/domain/model/pickup"

	"gorm.io/gorm"
)

// GetMerchantStatsQueryHandler computes the merchant dashboard counters.
type GetMerchantStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantStatsQueryHandler creates a handler for merchant stats.
func NewGetMerchantStatsQueryHandler(db *gorm.DB) GetMerchantStatsQueryHandler {
	return GetMerchantStatsQueryHandler{db: db}
}

// Handle aggregates the merchant's counters.
func (h GetMerchantStatsQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantStatsQuery,
) (GetMerchantStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMerchantStatsQueryResponse{}, err
	}

	response := GetMerchantStatsQueryResponse{
		ParcelsByStatus: make(map[string]int),
	}

	byStatus, err := countParcelsByStatus(ctx, h.db, query.MerchantID().String())
	if err != nil {
		return GetMerchantStatsQueryResponse{}, err
	}
	response.ParcelsByStatus = byStatus
	for _, count := range byStatus {
		response.TotalParcels += count
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM pickup_requests WHERE merchant_id = ? AND status IN (?, ?)`,
		query.MerchantID().String(),
		pickup.StatusPending.String(),
		pickup.StatusApproved.String(),
	).Row()
	if err = row.Scan(&response.OpenPickupRequests); err != nil {
		return GetMerchantStatsQueryResponse{}, err
	}

	return response, nil
}
