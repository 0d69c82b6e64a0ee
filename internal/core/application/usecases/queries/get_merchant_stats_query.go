package queries

import (
	"errors"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrGetMerchantStatsQueryIsNotConstructed = errors.New(
	"GetMerchantStatsQuery must be created via NewGetMerchantStatsQuery constructor",
)

// GetMerchantStatsQuery aggregates one merchant's parcel and pickup counters.
type GetMerchantStatsQuery struct {
	merchantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMerchantStatsQuery creates a merchant stats query.
func NewGetMerchantStatsQuery(merchantID kernel.UUID) (GetMerchantStatsQuery, error) {
	if err := merchantID.Validate(); err != nil {
		return GetMerchantStatsQuery{}, err
	}

	return GetMerchantStatsQuery{
		merchantID: merchantID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMerchantStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantStatsQueryIsNotConstructed)
}

// MerchantID returns the merchant being summarized.
func (q GetMerchantStatsQuery) MerchantID() kernel.UUID { return q.merchantID }

// GetMerchantStatsQueryResponse is the merchant dashboard read model.
type GetMerchantStatsQueryResponse struct {
	TotalParcels       int
	ParcelsByStatus    map[string]int
	OpenPickupRequests int
}
