package queries

import (
	"context"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/courier"
	"fasttrack/internal/core/domain/model/pickup"

	"gorm.io/gorm"
)

// GetPlatformStatsQueryHandler computes the admin dashboard counters.
type GetPlatformStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetPlatformStatsQueryHandler creates a handler for platform stats.
func NewGetPlatformStatsQueryHandler(db *gorm.DB) GetPlatformStatsQueryHandler {
	return GetPlatformStatsQueryHandler{db: db}
}

// Handle aggregates the counters in a handful of grouped counts.
func (h GetPlatformStatsQueryHandler) Handle(
	ctx context.Context,
	query GetPlatformStatsQuery,
) (GetPlatformStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}

	response := GetPlatformStatsQueryResponse{
		ParcelsByStatus: make(map[string]int),
	}

	byStatus, err := countParcelsByStatus(ctx, h.db, "")
	if err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}
	response.ParcelsByStatus = byStatus
	for _, count := range byStatus {
		response.TotalParcels += count
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM users WHERE role = ?`,
		account.RoleMerchant.String(),
	).Row()
	if err = row.Scan(&response.TotalMerchants); err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM couriers WHERE status = ?`,
		courier.StatusActive.String(),
	).Row()
	if err = row.Scan(&response.ActiveCouriers); err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM pickup_requests WHERE status = ?`,
		pickup.StatusPending.String(),
	).Row()
	if err = row.Scan(&response.PendingPickupRequests); err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}

	return response, nil
}

// countParcelsByStatus groups parcel counts by status, optionally scoped to
// one sender. An empty senderID means platform wide.
func countParcelsByStatus(ctx context.Context, db *gorm.DB, senderID string) (map[string]int, error) {
	sql := `SELECT status, COUNT(*) FROM parcels`
	args := make([]any, 0, 1)
	if senderID != "" {
		sql += ` WHERE sender_id = ?`
		args = append(args, senderID)
	}
	sql += ` GROUP BY status`

	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
