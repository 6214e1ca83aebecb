package response

import (
	"storefront-engine/internal/domain/cart"
	"storefront-engine/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}

type CartLineResponse struct {
	ProductResponse
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalPrice string             `json:"totalPrice"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func FromProduct(p catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       money(p.Price),
		Image:       p.Image,
	}
}

func FromProducts(products []catalog.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = FromProduct(p)
	}
	return res
}

func FromCartLines(lines []cart.Line) []CartLineResponse {
	res := make([]CartLineResponse, len(lines))
	for i, l := range lines {
		res[i] = CartLineResponse{
			ProductResponse: FromProduct(l.Product()),
			Quantity:        l.Quantity(),
			Subtotal:        money(l.Subtotal()),
		}
	}
	return res
}

func FromCart(lines []cart.Line, totalItems int, totalPrice decimal.Decimal) *CartResponse {
	return &CartResponse{
		Items:      FromCartLines(lines),
		TotalItems: totalItems,
		TotalPrice: money(totalPrice),
	}
}
