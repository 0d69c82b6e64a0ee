package courier_test

import (
	"testing"
	"time"

	"fasttrack/internal/core/domain/model/courier"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCourier(t *testing.T) *courier.Courier {
	t.Helper()

	c, err := courier.NewCourier(
		kernel.NewUUID(),
		"Rafiq Islam",
		"+8801811223344",
		courier.NewVehicle("motorbike", "DHK-1234", "Gulshan, Banani"),
		time.Now(),
	)
	require.NoError(t, err)
	return c
}

func TestNewCourier(t *testing.T) {
	t.Run("starts active", func(t *testing.T) {
		c := newTestCourier(t)

		assert.Equal(t, courier.StatusActive, c.Status())
		assert.True(t, c.IsActive())
		assert.Equal(t, "motorbike", c.Vehicle().Type())
	})

	t.Run("requires name and phone", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "", "+880", courier.Vehicle{}, time.Now())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = courier.NewCourier(kernel.NewUUID(), "Rafiq", "", courier.Vehicle{}, time.Now())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires a valid id", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.UUID{}, "Rafiq", "+880", courier.Vehicle{}, time.Now())
		assert.Error(t, err)
	})
}

func TestCourier_Validate(t *testing.T) {
	t.Run("constructed courier is valid", func(t *testing.T) {
		assert.NoError(t, newTestCourier(t).Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		var c courier.Courier
		assert.Equal(t, courier.ErrCourierIsNotConstructed, c.Validate())
	})

	t.Run("nil courier fails", func(t *testing.T) {
		var c *courier.Courier
		assert.Equal(t, courier.ErrCourierIsNotConstructed, c.Validate())
	})
}

func TestCourier_ActivateDeactivate(t *testing.T) {
	c := newTestCourier(t)

	c.Deactivate(time.Now())
	assert.False(t, c.IsActive())
	assert.Equal(t, courier.StatusInactive, c.Status())

	c.Activate(time.Now())
	assert.True(t, c.IsActive())
}

func TestRestoreCourier(t *testing.T) {
	t.Run("round trip preserves state", func(t *testing.T) {
		original := newTestCourier(t)
		original.Deactivate(time.Now())

		restored, err := courier.RestoreCourier(
			original.ID(),
			original.Name(),
			original.Phone(),
			original.Vehicle(),
			original.Status(),
			original.CreatedAt(),
			original.UpdatedAt(),
		)
		require.NoError(t, err)
		assert.True(t, restored.ID().IsEqual(original.ID()))
		assert.Equal(t, courier.StatusInactive, restored.Status())
		assert.Equal(t, "DHK-1234", restored.Vehicle().Number())
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		original := newTestCourier(t)
		_, err := courier.RestoreCourier(original.ID(), original.Name(), original.Phone(),
			original.Vehicle(), courier.StatusUnknown, original.CreatedAt(), original.UpdatedAt())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_ParseAndString(t *testing.T) {
	parsed, err := courier.ParseStatus("inactive")
	require.NoError(t, err)
	assert.Equal(t, courier.StatusInactive, parsed)

	_, err = courier.ParseStatus("retired")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Equal(t, "active", courier.StatusActive.String())
	assert.Equal(t, "unknown", courier.Status(7).String())
}
