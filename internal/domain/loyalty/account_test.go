//go:build unit

package loyalty_test

import (
	"math"
	"testing"

	"storefront-engine/internal/domain/loyalty"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	points := []int{0, 199, 200, 499, 500, 999, 1000}
	expected := []loyalty.Tier{
		loyalty.TierBronze, loyalty.TierBronze,
		loyalty.TierSilver, loyalty.TierSilver,
		loyalty.TierGold, loyalty.TierGold,
		loyalty.TierPlatinum,
	}

	actual := make([]loyalty.Tier, len(points))
	for i, p := range points {
		actual[i] = loyalty.TierFor(p)
	}
	assert.Equal(t, expected, actual)

	t.Run("discount follows tier", func(t *testing.T) {
		assert.Equal(t, 5, loyalty.TierBronze.DiscountPercent())
		assert.Equal(t, 10, loyalty.TierSilver.DiscountPercent())
		assert.Equal(t, 15, loyalty.TierGold.DiscountPercent())
		assert.Equal(t, 20, loyalty.TierPlatinum.DiscountPercent())
	})

	t.Run("next tier", func(t *testing.T) {
		next, ok := loyalty.TierGold.Next()
		require.True(t, ok)
		assert.Equal(t, loyalty.TierPlatinum, next)

		_, ok = loyalty.TierPlatinum.Next()
		assert.False(t, ok)
	})
}

func TestAccount(t *testing.T) {
	t.Run("negative balance clamps to zero", func(t *testing.T) {
		assert.Equal(t, 0, loyalty.NewAccount(-40).Points())
	})

	t.Run("add rejects negative amounts", func(t *testing.T) {
		acc := loyalty.NewAccount(10)
		require.ErrorIs(t, acc.Add(-1), loyalty.ErrInvalidPointAmount)
		assert.Equal(t, 10, acc.Points())
	})

	t.Run("add rejects amounts that would overflow", func(t *testing.T) {
		acc := loyalty.NewAccount(10)
		require.ErrorIs(t, acc.Add(math.MaxInt), loyalty.ErrPointsOverflow)
		assert.Equal(t, 10, acc.Points())

		require.NoError(t, acc.Add(math.MaxInt-10))
		assert.Equal(t, math.MaxInt, acc.Points())
		assert.Equal(t, loyalty.TierPlatinum, acc.Tier())
	})

	t.Run("redeem", func(t *testing.T) {
		testCases := []struct {
			name     string
			balance  int
			amount   int
			errIs    error
			expected int
		}{
			{name: "exact balance", balance: 100, amount: 100, expected: 0},
			{name: "partial", balance: 250, amount: 50, expected: 200},
			{name: "more than balance", balance: 40, amount: 50, errIs: loyalty.ErrInsufficientPoints, expected: 40},
			{name: "zero amount", balance: 40, amount: 0, errIs: loyalty.ErrInvalidRedemption, expected: 40},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				acc := loyalty.NewAccount(tc.balance)
				err := acc.Redeem(tc.amount)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
				assert.Equal(t, tc.expected, acc.Points())
			})
		}
	})

	t.Run("points to next tier", func(t *testing.T) {
		next, missing, ok := loyalty.NewAccount(450).PointsToNextTier()
		require.True(t, ok)
		assert.Equal(t, loyalty.TierGold, next)
		assert.Equal(t, 50, missing)

		_, _, ok = loyalty.NewAccount(1500).PointsToNextTier()
		assert.False(t, ok)
	})
}

func TestPointsEarned(t *testing.T) {
	assert.Equal(t, 529, loyalty.PointsEarned(decimal.RequireFromString("52.97"), 10))
	assert.Equal(t, 0, loyalty.PointsEarned(decimal.RequireFromString("0.09"), 10))
	assert.Equal(t, 0, loyalty.PointsEarned(decimal.RequireFromString("10"), 0))
	assert.Equal(t, 0, loyalty.PointsEarned(decimal.RequireFromString("-3"), 10))

	t.Run("awards beyond int range are capped", func(t *testing.T) {
		huge := decimal.NewFromInt(math.MaxInt64).Mul(decimal.NewFromInt(1000))
		assert.Equal(t, math.MaxInt, loyalty.PointsEarned(huge, 10))
	})
}

func TestApplyDiscount(t *testing.T) {
	got := loyalty.ApplyDiscount(decimal.RequireFromString("52.97"), 10)
	assert.True(t, decimal.RequireFromString("47.67").Equal(got), "got %s", got)

	unchanged := loyalty.ApplyDiscount(decimal.RequireFromString("5.00"), 0)
	assert.True(t, decimal.RequireFromString("5").Equal(unchanged))
}
