package commands_test

import (
	"testing"
	"time"

	"fasttrack/internal/core/domain/model/courier"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/core/domain/model/pickup"

	"github.com/stretchr/testify/require"
)

func pendingParcel(t *testing.T, senderID kernel.UUID) *parcel.Parcel {
	t.Helper()

	recipient, err := parcel.NewRecipient("Jamal Uddin", "+8801712345678", "12 Gulshan Ave, Dhaka")
	require.NoError(t, err)

	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewTrackingID(), senderID,
		recipient, parcel.PackageInfo{}, time.Now())
	require.NoError(t, err)
	return p
}

func pendingRequest(t *testing.T, merchantID kernel.UUID, parcelIDs ...kernel.UUID) *pickup.Request {
	t.Helper()

	now := time.Now()
	r, err := pickup.NewRequest(kernel.NewUUID(), merchantID, "Shop 4, Banani Market",
		now.AddDate(0, 0, 2), "09:00-12:00", "", parcelIDs, now)
	require.NoError(t, err)
	return r
}

func activeCourier(t *testing.T) *courier.Courier {
	t.Helper()

	c, err := courier.NewCourier(kernel.NewUUID(), "Rafiq Islam", "+8801811223344",
		courier.NewVehicle("motorbike", "DHK-1234", "Gulshan"), time.Now())
	require.NoError(t, err)
	return c
}
