//go:build unit

package order_test

import (
	"testing"
	"time"

	"storefront-engine/internal/domain/cart"
	"storefront-engine/internal/domain/order"
	"storefront-engine/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	placedAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	espresso := builder.NewProductBuilder().BuildDomain()
	latte := builder.NewProductBuilder().WithID(3).WithName("Signature Latte").WithPrice("14.99").BuildDomain()

	l1, err := cart.NewLine(espresso, 2)
	require.NoError(t, err)
	l2, err := cart.NewLine(latte, 1)
	require.NoError(t, err)

	t.Run("freezes total and ready estimate", func(t *testing.T) {
		o, err := order.NewOrder("ORD-1", []cart.Line{l1, l2}, placedAt, order.DefaultReadyWindow)
		require.NoError(t, err)

		assert.True(t, decimal.RequireFromString("52.97").Equal(o.Total()), "got %s", o.Total())
		assert.Equal(t, order.StatusPlaced, o.Status())
		assert.Equal(t, placedAt.Add(15*time.Minute), o.EstimatedReadyAt())
		assert.Equal(t, 3, o.TotalItems())
	})

	t.Run("input slice changes do not leak into the order", func(t *testing.T) {
		lines := []cart.Line{l1}
		o, err := order.NewOrder("ORD-2", lines, placedAt, order.DefaultReadyWindow)
		require.NoError(t, err)

		lines[0] = l2
		got := o.Lines()
		got[0] = l2

		assert.Equal(t, espresso.ID, o.Lines()[0].Product().ID)
	})

	t.Run("rejects empty orders", func(t *testing.T) {
		_, err := order.NewOrder("ORD-3", nil, placedAt, order.DefaultReadyWindow)
		assert.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := order.NewOrder("", []cart.Line{l1}, placedAt, order.DefaultReadyWindow)
		assert.ErrorIs(t, err, order.ErrEmptyOrderID)
	})
}

func TestOrder_Advance(t *testing.T) {
	line, err := cart.NewLine(builder.NewProductBuilder().BuildDomain(), 1)
	require.NoError(t, err)

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder("ORD-1", []cart.Line{line}, time.Now(), order.DefaultReadyWindow)
		require.NoError(t, err)
		return o
	}

	testCases := []struct {
		name     string
		setup    func(*order.Order)
		from, to order.Status
		applied  bool
		expected order.Status
	}{
		{
			name: "placed to preparing", from: order.StatusPlaced, to: order.StatusPreparing,
			applied: true, expected: order.StatusPreparing,
		},
		{
			name:  "preparing to ready",
			setup: func(o *order.Order) { o.Advance(order.StatusPlaced, order.StatusPreparing) },
			from:  order.StatusPreparing, to: order.StatusReady,
			applied: true, expected: order.StatusReady,
		},
		{
			name: "stale precondition is ignored", from: order.StatusPreparing, to: order.StatusReady,
			applied: false, expected: order.StatusPlaced,
		},
		{
			name: "never regresses",
			setup: func(o *order.Order) {
				o.Advance(order.StatusPlaced, order.StatusPreparing)
			},
			from: order.StatusPreparing, to: order.StatusPlaced,
			applied: false, expected: order.StatusPreparing,
		},
		{
			name: "completed is terminal",
			setup: func(o *order.Order) {
				o.Advance(order.StatusPlaced, order.StatusCompleted)
			},
			from: order.StatusCompleted, to: order.StatusReady,
			applied: false, expected: order.StatusCompleted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := newOrder(t)
			if tc.setup != nil {
				tc.setup(o)
			}
			assert.Equal(t, tc.applied, o.Advance(tc.from, tc.to))
			assert.Equal(t, tc.expected, o.Status())
		})
	}
}
