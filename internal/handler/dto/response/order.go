package response

import (
	"time"

	"storefront-engine/internal/domain/order"
	"storefront-engine/internal/usecase"
)

type OrderResponse struct {
	ID             string             `json:"id"`
	Items          []CartLineResponse `json:"items"`
	TotalItems     int                `json:"totalItems"`
	Total          string             `json:"total"`
	Status         string             `json:"status"`
	Date           time.Time          `json:"date"`
	EstimatedReady time.Time          `json:"estimatedReady"`
}

type QuoteResponse struct {
	Subtotal        string `json:"subtotal"`
	DiscountPercent int    `json:"discountPercent"`
	DiscountedTotal string `json:"discountedTotal"`
	PointsToEarn    int    `json:"pointsToEarn"`
	TotalItems      int    `json:"totalItems"`
}

type CheckoutResponse struct {
	Order        *OrderResponse `json:"order"`
	PointsEarned int            `json:"pointsEarned"`
}

func FromOrder(o *order.Order) *OrderResponse {
	return &OrderResponse{
		ID:             o.ID(),
		Items:          FromCartLines(o.Lines()),
		TotalItems:     o.TotalItems(),
		Total:          money(o.Total()),
		Status:         o.Status().String(),
		Date:           o.PlacedAt(),
		EstimatedReady: o.EstimatedReadyAt(),
	}
}

func FromOrders(orders []*order.Order) []*OrderResponse {
	res := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		res[i] = FromOrder(o)
	}
	return res
}

func FromQuote(q usecase.Quote) *QuoteResponse {
	return &QuoteResponse{
		Subtotal:        money(q.Subtotal),
		DiscountPercent: q.DiscountPercent,
		DiscountedTotal: money(q.DiscountedTotal),
		PointsToEarn:    q.PointsToEarn,
		TotalItems:      q.TotalItems,
	}
}

func FromCheckout(r *usecase.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Order:        FromOrder(r.Order),
		PointsEarned: r.PointsEarned,
	}
}
