package usecase

import (
	"log/slog"

	"storefront-engine/internal/domain/loyalty"
	"storefront-engine/internal/domain/order"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=checkout.go -destination=../../tests/mock/usecase/mock_checkout.go -package=usecasemock

type Quote struct {
	Subtotal        decimal.Decimal
	DiscountPercent int
	DiscountedTotal decimal.Decimal
	PointsToEarn    int
	TotalItems      int
}

type CheckoutResult struct {
	Order        *order.Order
	PointsEarned int
}

// CheckoutUseCase composes the cart and loyalty engines; neither engine knows
// about the other.
type CheckoutUseCase interface {
	Quote() Quote
	// Checkout returns false when the cart was empty.
	Checkout() (*CheckoutResult, bool)
}

type checkoutUseCaseImpl struct {
	cart          CartUseCase
	loyalty       LoyaltyUseCase
	pointsPerUnit int
	logger        *slog.Logger
}

func NewCheckoutUseCase(cart CartUseCase, loyalty LoyaltyUseCase, pointsPerUnit int, logger *slog.Logger) CheckoutUseCase {
	return &checkoutUseCaseImpl{
		cart:          cart,
		loyalty:       loyalty,
		pointsPerUnit: pointsPerUnit,
		logger:        logger,
	}
}

func (uc *checkoutUseCaseImpl) Quote() Quote {
	subtotal := uc.cart.TotalPrice()
	discount := uc.loyalty.DiscountPercent()

	return Quote{
		Subtotal:        subtotal,
		DiscountPercent: discount,
		DiscountedTotal: loyalty.ApplyDiscount(subtotal, discount),
		PointsToEarn:    loyalty.PointsEarned(subtotal, uc.pointsPerUnit),
		TotalItems:      uc.cart.TotalItems(),
	}
}

// Checkout earns points on the frozen order total, so cart changes racing
// with the call cannot change the award.
func (uc *checkoutUseCaseImpl) Checkout() (*CheckoutResult, bool) {
	o, ok := uc.cart.PlaceOrder()
	if !ok {
		return nil, false
	}

	earned := loyalty.PointsEarned(o.Total(), uc.pointsPerUnit)
	if earned > 0 {
		if err := uc.loyalty.AddPoints(earned); err != nil {
			uc.logger.Error("Failed to award points",
				slog.String("order_id", o.ID()),
				slog.Int("points", earned),
				slog.String("error", err.Error()),
			)
			earned = 0
		}
	}
	if earned < 0 {
		earned = 0
	}

	uc.logger.Info("Checkout completed",
		slog.String("order_id", o.ID()),
		slog.String("total", o.Total().StringFixed(2)),
		slog.Int("points_earned", earned),
	)
	return &CheckoutResult{Order: o, PointsEarned: earned}, true
}
