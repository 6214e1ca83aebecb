//go:build unit

package reservation_test

import (
	"testing"

	"storefront-engine/internal/domain/reservation"
	"storefront-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuests(t *testing.T) {
	testCases := []struct {
		name  string
		value int
		errIs error
	}{
		{name: "minimum", value: 1},
		{name: "maximum", value: 12},
		{name: "zero", value: 0, errIs: reservation.ErrInvalidGuestCount},
		{name: "negative", value: -3, errIs: reservation.ErrInvalidGuestCount},
		{name: "above maximum", value: 13, errIs: reservation.ErrInvalidGuestCount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := reservation.NewGuests(tc.value)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, g.Value())
		})
	}
}

func TestReservation(t *testing.T) {
	t.Run("new reservation is pending", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, "Ada Lovelace", actual.Name())
		assert.Equal(t, 2, actual.Guests())
		assert.True(t, actual.IsActive())
	})

	t.Run("zero value guests are rejected", func(t *testing.T) {
		_, err := reservation.NewReservation("RES-1", reservation.NewContact("a", "b", "c"), reservation.NewSlot("2025-03-01", "19:00"), reservation.Guests{})
		assert.ErrorIs(t, err, reservation.ErrInvalidGuestCount)
	})

	t.Run("transitions", func(t *testing.T) {
		testCases := []struct {
			name     string
			steps    func(*reservation.Reservation) bool
			applied  bool
			expected reservation.Status
		}{
			{
				name:     "pending confirms",
				steps:    func(r *reservation.Reservation) bool { return r.Confirm() },
				applied:  true,
				expected: reservation.StatusConfirmed,
			},
			{
				name: "confirm twice is a no-op",
				steps: func(r *reservation.Reservation) bool {
					r.Confirm()
					return r.Confirm()
				},
				applied:  false,
				expected: reservation.StatusConfirmed,
			},
			{
				name:     "pending cancels",
				steps:    func(r *reservation.Reservation) bool { return r.Cancel() },
				applied:  true,
				expected: reservation.StatusCancelled,
			},
			{
				name: "confirmed cancels",
				steps: func(r *reservation.Reservation) bool {
					r.Confirm()
					return r.Cancel()
				},
				applied:  true,
				expected: reservation.StatusCancelled,
			},
			{
				name: "cancelled never confirms",
				steps: func(r *reservation.Reservation) bool {
					r.Cancel()
					return r.Confirm()
				},
				applied:  false,
				expected: reservation.StatusCancelled,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				r, err := builder.NewReservationBuilder().BuildDomain()
				require.NoError(t, err)

				assert.Equal(t, tc.applied, tc.steps(r))
				assert.Equal(t, tc.expected, r.Status())
			})
		}
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		r, err := reservation.ReconstructReservation("RES-9", reservation.NewContact("a", "", ""), reservation.NewSlot("", ""), 4, reservation.StatusCompleted)
		require.NoError(t, err)

		assert.False(t, r.Cancel())
		assert.Equal(t, reservation.StatusCompleted, r.Status())
	})

	t.Run("reconstruct validates persisted values", func(t *testing.T) {
		_, err := reservation.ReconstructReservation("RES-1", reservation.Contact{}, reservation.Slot{}, 40, reservation.StatusPending)
		assert.ErrorIs(t, err, reservation.ErrInvalidGuestCount)

		_, err = reservation.ReconstructReservation("RES-1", reservation.Contact{}, reservation.Slot{}, 2, "lost")
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}
