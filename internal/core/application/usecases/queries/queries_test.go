package queries_test

import (
	"testing"

	"fasttrack/internal/core/application/usecases/queries"
	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackParcelQuery(t *testing.T) {
	t.Run("valid tracking id", func(t *testing.T) {
		query, err := queries.NewTrackParcelQuery(kernel.NewTrackingID())
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
	})

	t.Run("zero tracking id", func(t *testing.T) {
		_, err := queries.NewTrackParcelQuery(kernel.TrackingID{})
		require.Error(t, err)
	})

	t.Run("not constructed", func(t *testing.T) {
		query := queries.TrackParcelQuery{}
		assert.ErrorIs(t, query.Validate(), queries.ErrTrackParcelQueryIsNotConstructed)
	})
}

func TestNewListParcelsQuery(t *testing.T) {
	t.Run("valid filters", func(t *testing.T) {
		query, err := queries.NewListParcelsQuery(kernel.NewUUID(), account.RoleMerchant, "pending", "FT")
		require.NoError(t, err)
		assert.Equal(t, "pending", query.StatusFilter())
		assert.Equal(t, "FT", query.Search())
	})

	t.Run("empty filters are allowed", func(t *testing.T) {
		_, err := queries.NewListParcelsQuery(kernel.NewUUID(), account.RoleAdmin, "", "")
		require.NoError(t, err)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		_, err := queries.NewListParcelsQuery(kernel.NewUUID(), account.RoleAdmin, "lost", "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := queries.NewListParcelsQuery(kernel.NewUUID(), account.RoleUnknown, "", "")
		require.Error(t, err)
	})
}

func TestNewGetParcelQuery(t *testing.T) {
	query, err := queries.NewGetParcelQuery(kernel.NewUUID(), kernel.NewUUID(), account.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetParcelQuery(kernel.UUID{}, kernel.NewUUID(), account.RoleMerchant)
	require.Error(t, err)

	empty := queries.GetParcelQuery{}
	assert.ErrorIs(t, empty.Validate(), queries.ErrGetParcelQueryIsNotConstructed)
}

func TestNewGetAccountQuery(t *testing.T) {
	query, err := queries.NewGetAccountQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetAccountQuery(kernel.UUID{})
	require.Error(t, err)

	empty := queries.GetAccountQuery{}
	assert.ErrorIs(t, empty.Validate(), queries.ErrGetAccountQueryIsNotConstructed)
}

func TestNewGetTrackingUpdatesQuery(t *testing.T) {
	_, err := queries.NewGetTrackingUpdatesQuery(kernel.NewUUID(), kernel.NewUUID(), account.RoleMerchant)
	require.NoError(t, err)

	_, err = queries.NewGetTrackingUpdatesQuery(kernel.UUID{}, kernel.NewUUID(), account.RoleMerchant)
	require.Error(t, err)
}

func TestNewListPickupRequestsQuery(t *testing.T) {
	query, err := queries.NewListPickupRequestsQuery(kernel.NewUUID(), account.RoleAdmin, true)
	require.NoError(t, err)
	assert.True(t, query.PendingOnly())

	_, err = queries.NewListPickupRequestsQuery(kernel.UUID{}, account.RoleAdmin, false)
	require.Error(t, err)
}

func TestNewListCouriersQuery(t *testing.T) {
	query := queries.NewListCouriersQuery(true)
	require.NoError(t, query.Validate())
	assert.True(t, query.ActiveOnly())

	empty := queries.ListCouriersQuery{}
	assert.ErrorIs(t, empty.Validate(), queries.ErrListCouriersQueryIsNotConstructed)
}

func TestNewStatsQueries(t *testing.T) {
	require.NoError(t, queries.NewGetPlatformStatsQuery().Validate())

	_, err := queries.NewGetMerchantStatsQuery(kernel.UUID{})
	require.Error(t, err)

	query, err := queries.NewGetMerchantStatsQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetTrackingDriftQuery(t *testing.T) {
	require.NoError(t, queries.NewGetTrackingDriftQuery().Validate())
}
